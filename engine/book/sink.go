package book

import (
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/occurrence"
)

// Sink produces the markup of a book in a given output format.
// The assembler calls a sink's methods in document order and concatenates
// the returned fragments:
//
//	StartDocument
//	  { StartPage  RunningText  StartGlossList  { GlossEntry }  EndPage
//	  | BlankPage }
//	  [ Index ]
//	EndDocument
//
// GlossEntry receives the normalized lemma of the occurrence's gloss, or ""
// if the occurrence has no gloss.
type Sink interface {
	StartDocument(title string, startPage int) string
	EndDocument() string
	StartPage(title string, page int) string
	EndPage() string
	RunningText(occs []occurrence.Occurrence, apparatus map[corpus.WordID]string) string
	StartGlossList() string
	GlossEntry(occ occurrence.Occurrence, lemma string) string
	Index(entries []IndexEntry) string
	BlankPage() string
}
