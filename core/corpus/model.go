package corpus

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// WordID identifies a word occurrence. Word ids are unique across a corpus.
type WordID = uuid.UUID

// GlossID identifies a gloss.
type GlossID = uuid.UUID

// Gloss is a dictionary entry: a lemma together with its definition.
// A gloss with status 0 is retired and must not be referenced.
type Gloss struct {
	ID         GlossID
	Parent     uuid.NullUUID // declared by the database, currently unchecked
	Lemma      string
	SortKey    string // ordering key for alphabetized lists
	Definition string
	POS        string // part of speech
	Unit       int    // textbook unit the gloss is taught in
	Note       string
	Updated    string
	UpdatedBy  string
	Status     int
}

// Usable is true if g has not been retired.
func (g *Gloss) Usable() bool {
	return g != nil && g.Status != 0
}

// FoldedSortKey returns the case-folded sort key of g.
func (g *Gloss) FoldedSortKey() string {
	return Fold(g.SortKey)
}

// Fold returns the case-folded form of s, used wherever glosses are
// ordered or searched by their sort key.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Word is a single token of a text.
type Word struct {
	ID    WordID
	Gloss uuid.NullUUID // only set for words of kind KindWord
	Kind  WordKind
	Text  string
}

// IsGlossed is true if w references a gloss.
func (w *Word) IsGlossed() bool {
	return w.Gloss.Valid
}

// Arrow pins a gloss to the one word occurrence where it is taught.
type Arrow struct {
	Word  WordID
	Gloss GlossID
}

// Text is an ordered sequence of words, e.g. a chapter of a classical work.
type Text struct {
	ID        int
	Name      string
	Words     []Word
	Apparatus map[WordID]string // apparatus criticus entries, keyed by word
	Display   bool              // hidden texts still count for the arrow order
	PagePlan  []int             // words per page; the last entry takes the rest
}

// ParsePagePlan parses a comma separated list of page sizes, as found in
// corpus files. Fields which are not non-negative integers are skipped.
func ParsePagePlan(s string) []int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var plan []int
	for _, field := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(field)); err == nil && n >= 0 {
			plan = append(plan, n)
		}
	}
	return plan
}

// FormatPagePlan is the inverse of ParsePagePlan.
func FormatPagePlan(plan []int) string {
	fields := make([]string, len(plan))
	for i, n := range plan {
		fields[i] = strconv.Itoa(n)
	}
	return strings.Join(fields, ",")
}

// Corpus is the complete input of a book: its texts in reading order, the
// glosses referenced by them, and the arrow assignments.
type Corpus struct {
	Title     string
	StartPage int
	Texts     []*Text
	Glosses   []*Gloss
	Arrows    []Arrow
}

// GlossTable returns a map from gloss ids to glosses.
// If a gloss id occurs more than once, the last gloss wins.
func (c *Corpus) GlossTable() map[GlossID]*Gloss {
	table := make(map[GlossID]*Gloss, len(c.Glosses))
	for _, g := range c.Glosses {
		table[g.ID] = g
	}
	return table
}

// ArrowTable returns a map from arrowed word ids to the gloss taught there.
func (c *Corpus) ArrowTable() map[WordID]GlossID {
	table := make(map[WordID]GlossID, len(c.Arrows))
	for _, a := range c.Arrows {
		table[a.Word] = a.Gloss
	}
	return table
}

// Apparatus merges the apparatus criticus entries of all texts.
func (c *Corpus) Apparatus() map[WordID]string {
	app := make(map[WordID]string)
	for _, t := range c.Texts {
		for id, entry := range t.Apparatus {
			app[id] = entry
		}
	}
	return app
}

// WordCount returns the number of words in all texts, hidden ones included.
func (c *Corpus) WordCount() int {
	n := 0
	for _, t := range c.Texts {
		n += len(t.Words)
	}
	return n
}
