package occurrence

import (
	"fmt"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
)

// ArrowedState tells how a gloss is presented at one of its occurrences.
type ArrowedState uint8

const (
	Visible   ArrowedState = iota // not yet taught, or never arrowed
	Arrowed                       // taught here
	Invisible                     // taught earlier
)

func (s ArrowedState) String() string {
	switch s {
	case Visible:
		return "visible"
	case Arrowed:
		return "arrowed"
	case Invisible:
		return "invisible"
	}
	return fmt.Sprintf("ArrowedState(%d)", uint8(s))
}

// Occurrence is a word of the corpus together with its gloss status.
// Gloss is nil for words without a gloss; their counts are 0 and their state
// is Visible.
type Occurrence struct {
	Word         *corpus.Word
	Gloss        *corpus.Gloss
	Position     int // zero-based position in the reading order of the corpus
	RunningCount int // 1 for the first occurrence of a gloss, 2 for the second, …
	TotalCount   int // number of occurrences of the gloss in the corpus
	State        ArrowedState
}

func (o Occurrence) String() string {
	if o.Gloss == nil {
		return fmt.Sprintf("#%d %q", o.Position, o.Word.Text)
	}
	return fmt.Sprintf("#%d %q→%s (%d of %d, %s)", o.Position, o.Word.Text,
		o.Gloss.Lemma, o.RunningCount, o.TotalCount, o.State)
}

// tally is the running aggregate for one gloss.
type tally struct {
	count    int
	arrowAt  int
	arrowSet bool
}

// fold carries the accumulator of the forward pass. It is created fresh
// for every call of Process.
type fold struct {
	glosses  map[corpus.GlossID]*corpus.Gloss
	arrows   map[corpus.WordID]corpus.GlossID
	tallies  map[corpus.GlossID]*tally
	position int
}

func (f *fold) next(w *corpus.Word) Occurrence {
	occ := Occurrence{Word: w, Position: f.position}
	f.position++
	if !w.IsGlossed() {
		return occ
	}
	g := f.glosses[w.Gloss.UUID]
	if g == nil {
		return occ
	}
	occ.Gloss = g
	agid, isArrowTarget := f.arrows[w.ID]
	isArrow := isArrowTarget && agid == g.ID
	t := f.tallies[g.ID]
	if t == nil {
		t = &tally{}
		f.tallies[g.ID] = t
	}
	switch {
	case t.arrowSet && t.arrowAt < occ.Position:
		occ.State = Invisible
	case isArrow:
		occ.State = Arrowed
	default:
		occ.State = Visible
	}
	t.count++
	if isArrow && !t.arrowSet {
		t.arrowAt, t.arrowSet = occ.Position, true
	}
	occ.RunningCount = t.count
	return occ
}

// Process computes the occurrences of all words of a corpus, one slice per
// text, in corpus order. Hidden texts are included, as their words take part
// in the reading order.
//
// The corpus is verified first; if verification fails, its error is returned
// unchanged. A corpus without texts or glosses results in an EMISSING error.
func Process(c *corpus.Corpus) ([][]Occurrence, error) {
	if c == nil || len(c.Texts) == 0 || len(c.Glosses) == 0 {
		return nil, core.Error(core.EMISSING, "corpus has no texts or no glosses")
	}
	if err := corpus.Verify(c); err != nil {
		return nil, err
	}
	f := &fold{
		glosses: c.GlossTable(),
		arrows:  c.ArrowTable(),
		tallies: make(map[corpus.GlossID]*tally),
	}
	result := make([][]Occurrence, len(c.Texts))
	for i, t := range c.Texts {
		occs := make([]Occurrence, len(t.Words))
		for j := range t.Words {
			occs[j] = f.next(&t.Words[j])
		}
		result[i] = occs
	}
	for _, occs := range result {
		for j := range occs {
			if g := occs[j].Gloss; g != nil {
				occs[j].TotalCount = f.tallies[g.ID].count
			}
		}
	}
	tracer().Debugf("processed %d words of %d texts, %d glosses in use",
		f.position, len(c.Texts), len(f.tallies))
	return result, nil
}

// Stats summarizes a set of occurrences.
type Stats struct {
	Words     int // all occurrences, regardless of kind
	Glossed   int
	Arrowed   int
	Invisible int
}

// Summarize counts occurrences by gloss status.
func Summarize(texts [][]Occurrence) Stats {
	var s Stats
	for _, occs := range texts {
		for _, o := range occs {
			s.Words++
			if o.Gloss == nil {
				continue
			}
			s.Glossed++
			switch o.State {
			case Arrowed:
				s.Arrowed++
			case Invisible:
				s.Invisible++
			}
		}
	}
	return s
}
