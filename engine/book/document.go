package book

import (
	"io"

	"github.com/npillmayer/cords"
)

// PageKind distinguishes text pages from blank pages.
type PageKind uint8

const (
	TextPage PageKind = iota
	BlankPage
)

func (k PageKind) String() string {
	if k == BlankPage {
		return "blank"
	}
	return "text"
}

// PageRecord logs a page of the assembled book.
type PageRecord struct {
	Number    int
	Kind      PageKind
	TextIndex int    // index of the text in the corpus, -1 for blank pages
	Title     string // running head as passed to the sink
	Words     int    // number of occurrences on the page
	GlossRows int    // number of rows in the page's gloss list
}

// Document is an assembled book: its markup, a log of its pages, the index of
// arrowed words and the pages left out due to page plans not matching the
// texts.
type Document struct {
	content cords.Cord
	Pages   []PageRecord
	Index   []IndexEntry
	Skipped []SkippedPage
}

// String returns the complete markup of the document.
func (doc *Document) String() string {
	if doc.content.IsVoid() {
		return ""
	}
	return doc.content.String()
}

// Len returns the length of the document's markup in bytes.
func (doc *Document) Len() uint64 {
	return doc.content.Len()
}

// WriteTo writes the document's markup to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

// Overflowed is true if pages of a page plan had to be skipped.
func (doc *Document) Overflowed() bool {
	return len(doc.Skipped) > 0
}

// TextPages returns the records of all pages showing text, in page order.
func (doc *Document) TextPages() []PageRecord {
	var pages []PageRecord
	for _, p := range doc.Pages {
		if p.Kind == TextPage {
			pages = append(pages, p)
		}
	}
	return pages
}

// ---------------------------------------------------------------------------

// fragment is the cord leaf for a piece of markup returned by a sink.
type fragment string

// Weight of a fragment is its length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

// Split splits a fragment at byte position i.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return f[:i], f[i:]
}

// Substring returns the bytes of the fragment between i and j.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f[i:j])
}

var _ cords.Leaf = fragment("")
