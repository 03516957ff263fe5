/*
Package book assembles a glossed reading book from processed occurrences.

Texts are cut into pages following their page plans. Every page shows the
running text followed by a list of glosses for the words on the page; which
glosses are listed, and in which order, is controlled by Options. Pages are
numbered for two-sided printing: each text starts on an odd (right-hand) page
and is followed by at least one blank page. Words arrowed on a page are
collected for an index of arrowed words at the back of the book.

The markup of the book is produced by a Sink, one implementation per output
format. Package book is agnostic of output formats and never interprets the
markup returned by a sink.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package book

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.book'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.book")
}
