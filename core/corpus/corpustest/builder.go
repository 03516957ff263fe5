/*
Package corpustest provides a compact builder for corpora, to be used in tests.

Texts are given as token lists. A token is one of

	λόγος         an unglossed word
	λόγος:logos   a word glossed with the gloss with lemma "logos"
	.  ,  ;  ·    punctuation
	¶             a paragraph (ParaWithIndent)
	§3.1          a section marker
	|12           a verse line marker

Ids are derived deterministically from names, so that test expectations may
refer to them.
*/
package corpustest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/glosser/core/corpus"
)

var namespace = uuid.MustParse("5c7b7e54-1a35-4d77-9a0e-7d2f1a0c2b11")

// GlossID returns the id of the gloss with a given lemma.
func GlossID(lemma string) corpus.GlossID {
	return uuid.NewSHA1(namespace, []byte("gloss:"+lemma))
}

// WordID returns the id of the i-th token of a text.
func WordID(text string, i int) corpus.WordID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("word:%s:%d", text, i)))
}

// Builder assembles a corpus step by step.
type Builder struct {
	c *corpus.Corpus
}

// New starts a corpus with a title and start page 1.
func New(title string) *Builder {
	return &Builder{c: &corpus.Corpus{Title: title, StartPage: 1}}
}

// StartPage sets the corpus' start page.
func (b *Builder) StartPage(n int) *Builder {
	b.c.StartPage = n
	return b
}

// Glosses adds active glosses. Sort keys equal the lemmas.
func (b *Builder) Glosses(lemmas ...string) *Builder {
	for _, l := range lemmas {
		b.addGloss(l, 1)
	}
	return b
}

// RetiredGloss adds a gloss with status 0.
func (b *Builder) RetiredGloss(lemma string) *Builder {
	b.addGloss(lemma, 0)
	return b
}

func (b *Builder) addGloss(lemma string, status int) {
	b.c.Glosses = append(b.c.Glosses, &corpus.Gloss{
		ID:         GlossID(lemma),
		Lemma:      lemma,
		SortKey:    lemma,
		Definition: "def. of " + lemma,
		POS:        "noun",
		Status:     status,
	})
}

// Text appends a displayed text.
func (b *Builder) Text(name string, tokens ...string) *Builder {
	t := &corpus.Text{
		ID:        len(b.c.Texts) + 1,
		Name:      name,
		Display:   true,
		Apparatus: make(map[corpus.WordID]string),
	}
	for i, tok := range tokens {
		t.Words = append(t.Words, makeWord(WordID(name, i), tok))
	}
	b.c.Texts = append(b.c.Texts, t)
	return b
}

// Hidden marks the last text as not displayed.
func (b *Builder) Hidden() *Builder {
	b.last().Display = false
	return b
}

// Plan sets the page plan of the last text.
func (b *Builder) Plan(sizes ...int) *Builder {
	b.last().PagePlan = sizes
	return b
}

// Note adds an apparatus criticus entry for token i of the last text.
func (b *Builder) Note(i int, entry string) *Builder {
	t := b.last()
	t.Apparatus[t.Words[i].ID] = entry
	return b
}

// Arrow arrows token i of a text with the given gloss.
func (b *Builder) Arrow(text string, i int, lemma string) *Builder {
	b.c.Arrows = append(b.c.Arrows, corpus.Arrow{Word: WordID(text, i), Gloss: GlossID(lemma)})
	return b
}

// Corpus returns the corpus built so far.
func (b *Builder) Corpus() *corpus.Corpus {
	return b.c
}

func (b *Builder) last() *corpus.Text {
	if len(b.c.Texts) == 0 {
		panic("corpustest: no text defined")
	}
	return b.c.Texts[len(b.c.Texts)-1]
}

func makeWord(id corpus.WordID, tok string) corpus.Word {
	w := corpus.Word{ID: id, Kind: corpus.KindWord, Text: tok}
	switch {
	case tok == "." || tok == "," || tok == ";" || tok == "·":
		w.Kind = corpus.KindPunctuation
	case tok == "¶":
		w.Kind = corpus.KindParaWithIndent
		w.Text = ""
	case strings.HasPrefix(tok, "§"):
		w.Kind = corpus.KindSection
		w.Text = "[section]" + strings.TrimPrefix(tok, "§")
	case strings.HasPrefix(tok, "|"):
		w.Kind = corpus.KindVerseLine
		w.Text = "[line]" + strings.TrimPrefix(tok, "|")
	default:
		if word, lemma, ok := strings.Cut(tok, ":"); ok {
			w.Text = word
			w.Gloss = uuid.NullUUID{UUID: GlossID(lemma), Valid: true}
		}
	}
	return w
}
