/*
Package xmlcorpus reads and writes corpora stored as XML files.

A corpus on disk consists of a sequence description, which names the gloss
files and the text files of the book in reading order and lists the arrowed
words, plus the files it names. File names in the sequence description are
relative to the directory of the sequence description.

A sequence description looks like this:

	<sequence_description>
	  <sequence_id>1</sequence_id>
	  <name>Reader</name>
	  <start_page>1</start_page>
	  <gloss_names>glosses.xml</gloss_names>
	  <texts>
	    <text>iliad-1.xml</text>
	    <text display="false">notes.xml</text>
	  </texts>
	  <arrowed_words>
	    <arrow gloss_uuid="…" word_uuid="…"/>
	  </arrowed_words>
	</sequence_description>

Text files hold the words of a text, keyed by id, with their kind and an
optional gloss reference, the apparatus criticus and the page plan. Gloss
files hold the gloss entries.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xmlcorpus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.input'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.input")
}
