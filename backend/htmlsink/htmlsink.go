/*
Package htmlsink renders glossed books as a single HTML page, intended for
proof-reading in a browser.

Pages of the book are rendered as consecutive blocks. Each block holds the
running text, the apparatus criticus entries for the page and the gloss list.
Styling is done by a built-in stylesheet, which clients may extend by a
stylesheet of their own.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlsink

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/glosser/backend/prose"
	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/book"
	"github.com/npillmayer/glosser/engine/occurrence"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'glosser.backend'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.backend")
}

const builtinCSS = `
BODY { font-family: "IFAO-Grec Unicode", "New Athena Unicode", helvetica, arial;
	width: 800px; margin: 20px auto; line-height: 1.5; }
.Page { border-top: 2px solid black; position: relative; }
.BlankPage { border-top: 2px dotted gray; height: 40px; }
.PageTitle { margin-bottom: 20px; }
.WorkTitle { margin-bottom: 20px; text-align: center; }
.SectionTitle { margin: 10px 0px; text-align: center; }
.Section { margin-top: 0px; position: absolute; left: -50px; font-weight: bold; }
.SubSection { margin-top: 20px; position: absolute; left: -50px; }
.VerseLine { display: flex; position: relative; left: 60px; }
.VerseSpeaker { width: 60px; }
.VerseText { width: 360px; }
.AppCritDiv { margin: 20px 0px; font-size: smaller; }
.gloss-table { border-top: 2px solid red; margin: 20px 0px; }
.arrowedHere .listheadword { font-weight: bold; }
.alreadyArrowed { color: gray; }
.InlineSpeaker { font-weight: bold; }
.ParaIndented { text-indent: 50px; }
.IndexEntry { display: flex; justify-content: space-between; }
`

// Sink is a book.Sink producing HTML.
type Sink struct {
	stylesheet string
}

var _ book.Sink = (*Sink)(nil)

// New creates an HTML sink. If extraCSS is not empty, it is parsed and
// appended to the built-in stylesheet.
func New(extraCSS string) (*Sink, error) {
	s := &Sink{stylesheet: builtinCSS}
	if strings.TrimSpace(extraCSS) == "" {
		return s, nil
	}
	sheet, err := parser.Parse(extraCSS)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse stylesheet")
	}
	tracer().Debugf("user stylesheet has %d rules", len(sheet.Rules))
	s.stylesheet += sheet.String() + "\n"
	return s, nil
}

func esc(s string) string {
	return html.EscapeString(s)
}

// StartDocument is part of interface book.Sink.
func (s *Sink) StartDocument(title string, startPage int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="grc">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>%s</style>
</head>
<body data-start-page="%d">
`, esc(title), s.stylesheet, startPage)
}

// EndDocument is part of interface book.Sink.
func (s *Sink) EndDocument() string {
	return "\n</body>\n</html>\n"
}

// StartPage is part of interface book.Sink.
func (s *Sink) StartPage(title string, page int) string {
	return fmt.Sprintf("\n<div class='Page' data-page='%d'>\n<div class='PageTitle'>%s - Page %d</div>\n",
		page, esc(title), page)
}

// EndPage is part of interface book.Sink. It closes the gloss list and the page.
func (s *Sink) EndPage() string {
	return "\n</div><!--gloss table end-->\n</div><!--page end-->\n"
}

// StartGlossList is part of interface book.Sink.
func (s *Sink) StartGlossList() string {
	return "<div class='gloss-table'>\n"
}

// BlankPage is part of interface book.Sink.
func (s *Sink) BlankPage() string {
	return "\n<div class='BlankPage'></div>\n"
}

// GlossEntry is part of interface book.Sink. Words without a gloss are
// listed with their text instead of a lemma.
func (s *Sink) GlossEntry(occ occurrence.Occurrence, lemma string) string {
	var gid, pos, def string
	if occ.Gloss != nil {
		gid, pos, def = occ.Gloss.ID.String(), occ.Gloss.POS, occ.Gloss.Definition
	} else {
		lemma = occ.Word.Text
	}
	class := "listword"
	switch occ.State {
	case occurrence.Arrowed:
		class += " arrowedHere"
	case occurrence.Invisible:
		class += " alreadyArrowed"
	}
	return fmt.Sprintf(`<div id="word%s" lemmaid="%s" class="%s">
	<span class="listheadword">%s</span>. <span class="listpos">(%s)</span>
	<span class="listdef">%s</span> <span class="listfrequency">(%d of %d)</span>
</div>
`, occ.Word.ID, gid, class, esc(lemma), esc(pos), esc(def), occ.RunningCount, occ.TotalCount)
}

// Index is part of interface book.Sink.
func (s *Sink) Index(entries []book.IndexEntry) string {
	var b strings.Builder
	b.WriteString("\n<div class='Index'>\n<div class='PageTitle'>Index of Arrowed Words</div>\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "<div class='IndexEntry'><span class='IndexLemma'>%s</span><span class='IndexPage'>%d</span></div>\n",
			esc(e.Lemma), e.Page)
	}
	b.WriteString("</div>\n")
	return b.String()
}

// ---------------------------------------------------------------------------

// textSetter accumulates the running text of a page.
type textSetter struct {
	b         strings.Builder
	spacer    prose.Spacer
	inVerse   bool
	speaker   string
	line      strings.Builder
	lineLabel string
	paraOpen  bool
	notes     []string
}

func (ts *textSetter) completeVerseLine() {
	fmt.Fprintf(&ts.b, "<div class='VerseLine'><div class='VerseSpeaker'>%s</div><div class='VerseText'>%s</div><div class='VerseLineNumber'>%s</div></div>\n",
		esc(ts.speaker), ts.line.String(), esc(ts.lineLabel))
	ts.speaker = ""
	ts.line.Reset()
}

func (ts *textSetter) openPara(class string) {
	if ts.paraOpen {
		ts.b.WriteString("\n</div>\n")
	}
	ts.paraOpen = true
	fmt.Fprintf(&ts.b, "\n<div class='%s'>\n", class)
	ts.spacer.Reset()
}

func (ts *textSetter) word(w *corpus.Word) {
	span := fmt.Sprintf("<span id='word%s' class='textword'>%s%s</span>",
		w.ID, ts.spacer.Next(w.Text), esc(w.Text))
	if ts.inVerse {
		ts.line.WriteString(span)
	} else {
		ts.b.WriteString(span)
	}
}

// RunningText is part of interface book.Sink.
func (s *Sink) RunningText(occs []occurrence.Occurrence, apparatus map[corpus.WordID]string) string {
	ts := &textSetter{}
	for _, o := range occs {
		w := o.Word
		if note, ok := apparatus[w.ID]; ok {
			ts.notes = append(ts.notes, note)
		}
		switch w.Kind {
		case corpus.KindWord, corpus.KindPunctuation:
			ts.word(w)
		case corpus.KindVerseLine:
			if ts.inVerse {
				ts.completeVerseLine()
			}
			ts.inVerse = true
			_, ts.lineLabel = prose.VerseLineNumber(w.Text)
			ts.spacer.Reset()
		case corpus.KindWorkTitle:
			fmt.Fprintf(&ts.b, "<div class='WorkTitle'>%s</div>\n", esc(w.Text))
		case corpus.KindSectionTitle:
			fmt.Fprintf(&ts.b, "<div class='SectionTitle'>%s</div>\n", esc(w.Text))
		case corpus.KindParaWithIndent:
			ts.openPara("ParaIndented")
		case corpus.KindParaNoIndent:
			ts.openPara("ParaNotIndented")
		case corpus.KindSection:
			if label, major := prose.SectionLabel(w.Text); major {
				fmt.Fprintf(&ts.b, "<div class='Section'>%s</div>\n", esc(label))
			} else {
				fmt.Fprintf(&ts.b, "<div class='SubSection'>%s</div>\n", esc(label))
			}
			ts.spacer.Reset()
		case corpus.KindSpeaker:
			fmt.Fprintf(&ts.b, "<span class='Speaker'>%s</span> ", esc(w.Text))
		case corpus.KindInlineSpeaker, corpus.KindInlineVerseSpeaker:
			if ts.inVerse {
				ts.speaker = w.Text
			} else {
				fmt.Fprintf(&ts.b, " <span class='InlineSpeaker'>%s</span> ", esc(w.Text))
			}
		case corpus.KindDesc, corpus.KindPageBreak, corpus.KindInvalidType, corpus.KindUnset:
			// not part of the running text
		default:
			tracer().Errorf("html: unknown word kind %v", w.Kind)
		}
	}
	if ts.inVerse {
		ts.completeVerseLine()
	}
	if ts.paraOpen {
		ts.b.WriteString("\n</div>\n")
	}
	if len(ts.notes) > 0 {
		ts.b.WriteString("<div class='AppCritDiv'>\n")
		for _, note := range ts.notes {
			fmt.Fprintf(&ts.b, "<div class='appcrit'>%s</div>\n", esc(note))
		}
		ts.b.WriteString("</div>\n")
	}
	return ts.b.String()
}
