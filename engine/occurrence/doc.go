/*
Package occurrence computes the arrowed state of every word occurrence of a
corpus.

A gloss is taught ("arrowed") at exactly one occurrence in the whole book.
Occurrences of the gloss before that point are shown as usual (Visible), the
arrowed occurrence is highlighted (Arrowed), and later occurrences do not
repeat the gloss any more (Invisible). As the arrow position of a gloss is
defined relative to the reading order of the complete book, the processor
walks all texts, including hidden ones, in a single forward pass.

Process refuses to operate on a corpus which does not pass corpus.Verify.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package occurrence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.occurrence'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.occurrence")
}
