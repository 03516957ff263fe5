/*
Package typstsink renders glossed books as Typst markup, ready to be
typeset into a printable PDF with the Typst compiler.

The generated document defines a handful of helper functions in its preamble
(gloss tables, verse tables, an index table) and then sets every page of
the book explicitly, ending each with a page break. Page numbers are
synchronized with the book's page numbering.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package typstsink

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/npillmayer/glosser/backend/prose"
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/book"
	"github.com/npillmayer/glosser/engine/occurrence"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.backend'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.backend")
}

// Layout holds the typographic parameters of a Typst book.
type Layout struct {
	Font       string // main font family
	FontPath   string // resolved font file, if any; informational
	PageWidth  string // Typst length, e.g. "6.125in"
	PageHeight string
	FontSize   string
	EvenHeader string // running header on even pages
}

// DefaultLayout is the layout used for zero-valued fields of a Layout.
var DefaultLayout = Layout{
	Font:       "IFAO-Grec Unicode",
	PageWidth:  "6.125in",
	PageHeight: "9.25in",
	FontSize:   "10pt",
	EvenHeader: "LGI - UPPER LEVEL GREEK",
}

// Sink is a book.Sink producing Typst markup.
type Sink struct {
	layout Layout
}

var _ book.Sink = (*Sink)(nil)

// New creates a Typst sink. Empty fields of layout are taken from DefaultLayout.
func New(layout Layout) *Sink {
	if layout.Font == "" {
		layout.Font = DefaultLayout.Font
	}
	if layout.PageWidth == "" {
		layout.PageWidth = DefaultLayout.PageWidth
	}
	if layout.PageHeight == "" {
		layout.PageHeight = DefaultLayout.PageHeight
	}
	if layout.FontSize == "" {
		layout.FontSize = DefaultLayout.FontSize
	}
	if layout.EvenHeader == "" {
		layout.EvenHeader = DefaultLayout.EvenHeader
	}
	return &Sink{layout: layout}
}

// Escape escapes text for use in Typst content blocks. The inline tags
// <b>, <i> and <sup> are translated to their Typst equivalents.
func Escape(s string) string {
	return escaper.Replace(s)
}

var escaper = chainedReplacer{
	{`"`, `\"`},
	{`$`, `\$`},
	{`#`, `\#`},
	{`]`, `\u{005D}`},
	{`[`, `\u{005B}`},
	{`<b>`, `#strong[`},
	{`</b>`, `]`},
	{`</i>`, `")`},
	{`<i>`, `#fakeitalic("`},
	{`<sup>`, `#super[`},
	{`</sup>`, `]`},
	{`>`, `\>`},
	{`<`, `\<`},
	{`=`, `\u{003D}`},
}

// chainedReplacer applies replacements one after the other; later
// replacements see the output of earlier ones.
type chainedReplacer [][2]string

func (r chainedReplacer) Replace(s string) string {
	for _, pair := range r {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}

// StartDocument is part of interface book.Sink.
func (s *Sink) StartDocument(title string, startPage int) string {
	var fontNote string
	if s.layout.FontPath != "" {
		tracer().Infof("typst: font %q resolved to %s", s.layout.Font, s.layout.FontPath)
		fontNote = fmt.Sprintf("// compile with: typst compile --font-path %s\n", filepath.Dir(s.layout.FontPath))
	}
	return fontNote + fmt.Sprintf(`#import "@preview/marge:0.1.0": sidenote
#import "@preview/cuti:0.2.1": fake-italic
#set document(title: "%s")
#set page(width: %s, height: %s, margin: (inside: 0.75in, outside: 0.75in, top: 0.75in, bottom: 0.75in))
#set text(font: "%s", size: %s, lang: "grc")
#counter(page).update(%d)

#let fakeitalic(body) = fake-italic(body)
#let glosshang(body) = box(width: 100%%, par(hanging-indent: 1em, body))
#let glossdef(body) = box(width: 100%%, par(hanging-indent: 1em, body))
#let glosstable(..entries) = table(
  columns: (0.5em, 40%%, 55%%),
  stroke: none,
  inset: (x: 2pt, y: 1pt),
  ..entries
)
#let placegloss(body) = place(bottom, float: true, clearance: 1em, body)
#let versetable(..lines) = table(
  columns: (3em, 1fr, 2em),
  stroke: none,
  inset: 1pt,
  ..lines
)
#let indextable(..entries) = table(
  columns: (1fr, 1fr),
  stroke: none,
  ..entries
)
`, Escape(title), s.layout.PageWidth, s.layout.PageHeight, s.layout.Font, s.layout.FontSize, startPage)
}

// EndDocument is part of interface book.Sink.
func (s *Sink) EndDocument() string {
	return "\n"
}

// StartPage is part of interface book.Sink.
func (s *Sink) StartPage(title string, page int) string {
	header := ""
	if page%2 == 0 {
		header = Escape(s.layout.EvenHeader)
	} else if title != "" {
		header = Escape(title)
	}
	return fmt.Sprintf(`
#set page(header: context [
  #set align(center)
  #set text(size: 8pt)
  %s
])
`, header)
}

// EndPage is part of interface book.Sink. It closes the gloss table and the
// float placing it.
func (s *Sink) EndPage() string {
	return ")\n]\n#pagebreak()\n"
}

// StartGlossList is part of interface book.Sink.
func (s *Sink) StartGlossList() string {
	return "\n#placegloss()[#glosstable(\n"
}

// BlankPage is part of interface book.Sink.
func (s *Sink) BlankPage() string {
	return "\n#set page(header: none)\n#box()\n#pagebreak()\n"
}

// GlossEntry is part of interface book.Sink. Occurrences already arrowed on
// an earlier page, or without a gloss, are not listed.
func (s *Sink) GlossEntry(occ occurrence.Occurrence, lemma string) string {
	if occ.Gloss == nil || occ.State == occurrence.Invisible {
		return ""
	}
	arrow := ""
	if occ.State == occurrence.Arrowed {
		arrow = "#strong[→]"
	}
	return fmt.Sprintf("[%s],\n[#glosshang[%s]],\n[#glossdef[%s]],\n\n",
		arrow, Escape(lemma), Escape(occ.Gloss.Definition))
}

// Index is part of interface book.Sink.
func (s *Sink) Index(entries []book.IndexEntry) string {
	var b strings.Builder
	b.WriteString("\n#set page(header: none)\n#align(center)[#strong[Index of Arrowed Words]]\n#indextable(\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s #box(width: 1fr, repeat[.])],[#box(width: 1fr, repeat[.]) %d],\n",
			Escape(e.Lemma), e.Page)
	}
	b.WriteString(")\n")
	return b.String()
}

// ---------------------------------------------------------------------------

type textSetter struct {
	b       strings.Builder
	spacer  prose.Spacer
	inVerse bool
	speaker string
	line    strings.Builder
	number  string
	notes   []string
}

func (ts *textSetter) completeVerseLine() {
	if ts.line.Len() == 0 && ts.speaker == "" {
		return
	}
	fmt.Fprintf(&ts.b, "[%s],\n[%s],\n[%s],\n\n", Escape(ts.speaker), ts.line.String(), Escape(ts.number))
	ts.speaker = ""
	ts.line.Reset()
}

func (ts *textSetter) openVerse() {
	if !ts.inVerse {
		ts.b.WriteString("#versetable(\n")
		ts.inVerse = true
	}
}

func (ts *textSetter) closeVerse() {
	if ts.inVerse {
		ts.completeVerseLine()
		ts.b.WriteString(")\n")
		ts.inVerse = false
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
			word := ts.spacer.Next(w.Text) + Escape(w.Text)
			if ts.inVerse {
				ts.line.WriteString(word)
			} else {
				ts.b.WriteString(word)
			}
		case corpus.KindVerseLine:
			if ts.inVerse {
				ts.completeVerseLine()
			}
			ts.openVerse()
			_, ts.number = prose.VerseLineNumber(w.Text)
			ts.spacer.Reset()
		case corpus.KindParaWithIndent:
			ts.closeVerse()
			ts.b.WriteString("\n\n#h(2em)\n")
			ts.spacer.Reset()
		case corpus.KindParaNoIndent:
			ts.closeVerse()
			ts.b.WriteString("\n\n")
			ts.spacer.Reset()
		case corpus.KindSection:
			if label, major := prose.SectionLabel(w.Text); major {
				fmt.Fprintf(&ts.b, "#sidenote(side: left, padding: 1em)[#strong[%s]]", Escape(label))
			} else {
				fmt.Fprintf(&ts.b, "#sidenote(side: left, padding: 1em)[%s]", Escape(label))
			}
		case corpus.KindSectionTitle:
			ts.closeVerse()
			fmt.Fprintf(&ts.b, "\\ #align(center)[%s] \\ ", Escape(w.Text))
			ts.spacer.Reset()
		case corpus.KindWorkTitle:
			ts.closeVerse()
			fmt.Fprintf(&ts.b, "\n#align(center)[%s]\n\\\n\\\n", Escape(w.Text))
			ts.spacer.Reset()
		case corpus.KindSpeaker:
			if ts.inVerse {
				// a speaker line interrupts the verse table
				ts.closeVerse()
				fmt.Fprintf(&ts.b, "#align(center)[%s]\n", Escape(w.Text))
				ts.openVerse()
			} else {
				fmt.Fprintf(&ts.b, "#align(center)[%s]\n", Escape(w.Text))
			}
			ts.spacer.Reset()
		case corpus.KindInlineSpeaker, corpus.KindInlineVerseSpeaker:
			if ts.inVerse {
				ts.speaker = w.Text
			} else {
				fmt.Fprintf(&ts.b, " #strong[%s] ", Escape(w.Text))
				ts.spacer.Reset()
			}
		case corpus.KindDesc, corpus.KindPageBreak, corpus.KindInvalidType, corpus.KindUnset:
			// not part of the running text
		default:
			tracer().Errorf("typst: unknown word kind %v", w.Kind)
		}
	}
	ts.closeVerse()
	for _, note := range ts.notes {
		fmt.Fprintf(&ts.b, "\n#footnote(numbering: \"*\")[%s]", Escape(note))
	}
	return ts.b.String()
}
