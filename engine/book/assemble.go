package book

import (
	"github.com/npillmayer/cords"
	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/occurrence"
)

type assembler struct {
	sink      Sink
	opts      Options
	apparatus map[corpus.WordID]string
	markup    *cords.Builder
	doc       *Document
}

func (a *assembler) emit(markup string) {
	if markup != "" {
		a.markup.Append(fragment(markup))
	}
}

func (a *assembler) blank(number int) {
	a.emit(a.sink.BlankPage())
	a.doc.Pages = append(a.doc.Pages, PageRecord{Number: number, Kind: BlankPage, TextIndex: -1})
}

func (a *assembler) page(text int, title string, number int, occs []occurrence.Occurrence) {
	a.emit(a.sink.StartPage(title, number))
	a.emit(a.sink.RunningText(occs, a.apparatus))
	a.emit(a.sink.StartGlossList())
	rows, entries := FilterAndSort(occs, number, a.opts)
	for _, row := range rows {
		lemma := ""
		if row.Gloss != nil {
			lemma = NormalizeLemma(row.Gloss.Lemma)
		}
		a.emit(a.sink.GlossEntry(row, lemma))
	}
	a.emit(a.sink.EndPage())
	a.doc.Index = append(a.doc.Index, entries...)
	a.doc.Pages = append(a.doc.Pages, PageRecord{
		Number:    number,
		Kind:      TextPage,
		TextIndex: text,
		Title:     title,
		Words:     len(occs),
		GlossRows: len(rows),
	})
}

// Assemble renders a book from a corpus and its occurrences, as computed by
// occurrence.Process, using a sink for the output format.
//
// Pages are numbered starting with the corpus' start page. If the start page
// is even, a blank page is inserted first, as texts start on odd pages.
// Hidden texts are skipped. After the last page of a text, one or two blank
// pages are inserted, such that the next text starts on an odd page again.
// The first page of a text gets an empty title, subsequent pages are titled
// with the text's name.
//
// Pages skipped because of a page plan asking for more words than are left
// are reported in the document's Skipped list.
func Assemble(c *corpus.Corpus, texts [][]occurrence.Occurrence, sink Sink, opts Options) (*Document, error) {
	if c == nil || sink == nil {
		return nil, core.Error(core.EINVALID, "assembling a book requires a corpus and a sink")
	}
	if len(texts) != len(c.Texts) {
		return nil, core.Error(core.EINVALID, "corpus has %d texts, but occurrences are given for %d",
			len(c.Texts), len(texts))
	}
	a := &assembler{
		sink:      sink,
		opts:      opts,
		apparatus: c.Apparatus(),
		markup:    cords.NewBuilder(),
		doc:       &Document{},
	}
	number := c.StartPage
	a.emit(sink.StartDocument(c.Title, number))
	if number%2 == 0 {
		a.blank(number)
		number++
	}
	for i, t := range c.Texts {
		if !t.Display {
			tracer().Debugf("text %q is hidden", t.Name)
			continue
		}
		if len(t.PagePlan) == 0 {
			tracer().Infof("text %q has no page plan, no pages produced", t.Name)
		}
		pages, skipped := Paginate(texts[i], t.PagePlan)
		for _, s := range skipped {
			s.Text, s.TextIndex = t.Name, i
			tracer().Errorf("page skipped: %s", s)
			a.doc.Skipped = append(a.doc.Skipped, s)
		}
		for _, p := range pages {
			title := t.Name
			if p.PlanIndex == 0 {
				title = ""
			}
			a.page(i, title, number, p.Occurrences)
			number++
		}
		if number%2 != 0 {
			a.blank(number)
			number++
		}
		a.blank(number)
		number++
	}
	if len(a.doc.Index) > 0 {
		SortIndex(a.doc.Index)
		a.emit(sink.Index(a.doc.Index))
	}
	a.emit(sink.EndDocument())
	a.doc.content = a.markup.Cord()
	tracer().Infof("assembled %q: %d pages, %d arrowed words, %d pages skipped",
		c.Title, len(a.doc.Pages), len(a.doc.Index), len(a.doc.Skipped))
	return a.doc, nil
}

// Build processes a corpus and assembles it into a book.
func Build(c *corpus.Corpus, sink Sink, opts Options) (*Document, error) {
	texts, err := occurrence.Process(c)
	if err != nil {
		return nil, err
	}
	return Assemble(c, texts, sink, opts)
}
