/*
Package corpus defines the data model of a glossed reading book and verifies
its referential integrity.

A corpus is an ordered sequence of texts. Each text is an ordered sequence of
words, and words of kind Word may reference a gloss, i.e. a dictionary entry
consisting of a lemma and a definition. A gloss is introduced to the reader
exactly once: an arrow assignment pins a gloss to the single word occurrence
where it is taught ("arrowed").

Corpora are loaded once per run and never mutated afterwards. Before anything
is computed from a corpus, clients call Verify, which checks the invariants
tying words, glosses and arrows together and fails on the first violation.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corpus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.corpus")
}
