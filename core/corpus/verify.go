package corpus

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/glosser/core"
)

// Violation denotes the kind of integrity violation found by Verify.
type Violation int

// Integrity violations, in the order Verify checks for them.
const (
	NoViolation           Violation = iota
	ArrowedWordTwice                // a word is target of more than one arrow
	ArrowedGlossTwice               // a gloss is arrowed more than once
	DuplicateWordID                 // a word id occurs more than once in the corpus
	NonWordGlossed                  // a gloss is attached to punctuation or markup
	GlossMissingOrRetired           // a word references an unknown or retired gloss
	NonWordArrowed                  // an arrow targets punctuation or markup
	ArrowedWordUnglossed            // an arrow targets a word without gloss
	ArrowedGlossMismatch            // arrow and arrowed word disagree about the gloss
	ArrowedGlossNotFound            // an arrow references an unknown gloss
	ArrowedGlossRetired             // an arrow references a retired gloss
	ArrowCountMismatch              // an arrow targets a word not found in any text
	GlossParentInvalid              // reserved; parent glosses are not checked yet
)

var violationNames = [...]string{
	"no violation",
	"word arrowed twice",
	"gloss arrowed twice",
	"duplicate word id",
	"non-word is glossed",
	"referenced gloss missing or retired",
	"non-word is arrowed",
	"arrowed word has no gloss",
	"arrowed word's gloss does not match arrow",
	"arrowed gloss not found",
	"arrowed gloss is retired",
	"arrowed words not found in texts",
	"gloss parent missing or retired",
}

func (v Violation) String() string {
	if v < 0 || int(v) >= len(violationNames) {
		return fmt.Sprintf("Violation(%d)", int(v))
	}
	return violationNames[v]
}

// Sentinel errors for use with errors.Is, one per kind of violation.
var (
	ErrArrowedWordTwice      = errors.New(ArrowedWordTwice.String())
	ErrArrowedGlossTwice     = errors.New(ArrowedGlossTwice.String())
	ErrDuplicateWordID       = errors.New(DuplicateWordID.String())
	ErrNonWordGlossed        = errors.New(NonWordGlossed.String())
	ErrGlossMissingOrRetired = errors.New(GlossMissingOrRetired.String())
	ErrNonWordArrowed        = errors.New(NonWordArrowed.String())
	ErrArrowedWordUnglossed  = errors.New(ArrowedWordUnglossed.String())
	ErrArrowedGlossMismatch  = errors.New(ArrowedGlossMismatch.String())
	ErrArrowedGlossNotFound  = errors.New(ArrowedGlossNotFound.String())
	ErrArrowedGlossRetired   = errors.New(ArrowedGlossRetired.String())
	ErrArrowCountMismatch    = errors.New(ArrowCountMismatch.String())
	ErrGlossParentInvalid    = errors.New(GlossParentInvalid.String())
)

var sentinels = map[Violation]error{
	ArrowedWordTwice:      ErrArrowedWordTwice,
	ArrowedGlossTwice:     ErrArrowedGlossTwice,
	DuplicateWordID:       ErrDuplicateWordID,
	NonWordGlossed:        ErrNonWordGlossed,
	GlossMissingOrRetired: ErrGlossMissingOrRetired,
	NonWordArrowed:        ErrNonWordArrowed,
	ArrowedWordUnglossed:  ErrArrowedWordUnglossed,
	ArrowedGlossMismatch:  ErrArrowedGlossMismatch,
	ArrowedGlossNotFound:  ErrArrowedGlossNotFound,
	ArrowedGlossRetired:   ErrArrowedGlossRetired,
	ArrowCountMismatch:    ErrArrowCountMismatch,
	GlossParentInvalid:    ErrGlossParentInvalid,
}

// VerificationError reports the first integrity violation found in a corpus.
// Word and Gloss name the offending ids, if applicable.
type VerificationError struct {
	Kind   Violation
	Text   string // name of the text containing the offending word
	Word   uuid.NullUUID
	Gloss  uuid.NullUUID
	Detail string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("corpus invalid: %s: %s", e.Kind, e.Detail)
}

// Is makes VerificationErrors match the sentinel error of their kind.
func (e *VerificationError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// ErrorCode is EINVALID for all verification errors.
func (e *VerificationError) ErrorCode() int {
	return core.EINVALID
}

// UserMessage returns the violation's description including offending ids.
func (e *VerificationError) UserMessage() string {
	return e.Kind.String() + ": " + e.Detail
}

var _ core.AppError = (*VerificationError)(nil)

func violation(kind Violation, format string, v ...interface{}) *VerificationError {
	return &VerificationError{Kind: kind, Detail: fmt.Sprintf(format, v...)}
}

func (e *VerificationError) forWord(id WordID) *VerificationError {
	e.Word = uuid.NullUUID{UUID: id, Valid: true}
	return e
}

func (e *VerificationError) forGloss(id GlossID) *VerificationError {
	e.Gloss = uuid.NullUUID{UUID: id, Valid: true}
	return e
}

func (e *VerificationError) inText(name string) *VerificationError {
	e.Text = name
	return e
}

// Verify checks the referential integrity of a corpus:
//
//   - no word and no gloss is arrowed twice
//   - word ids are unique across all texts
//   - gloss references occur on words of kind KindWord only and resolve to
//     glosses which are not retired
//   - every arrow targets a glossed word of kind KindWord, whose gloss is the
//     arrow's gloss, which in turn exists and is not retired
//   - every arrow's target word exists
//
// Verify returns the first violation found as a *VerificationError, or nil.
// Parent references of glosses are not checked.
func Verify(c *Corpus) error {
	if err := verify(c); err != nil {
		tracer().Errorf("%s", err.Error())
		return err
	}
	tracer().Debugf("corpus %q verified: %d texts, %d glosses, %d arrows",
		c.Title, len(c.Texts), len(c.Glosses), len(c.Arrows))
	return nil
}

func verify(c *Corpus) *VerificationError {
	arrows := make(map[WordID]GlossID, len(c.Arrows))
	arrowedGlosses := make(map[GlossID]struct{}, len(c.Arrows))
	for _, a := range c.Arrows {
		if _, dup := arrows[a.Word]; dup {
			return violation(ArrowedWordTwice, "word %s", a.Word).forWord(a.Word)
		}
		arrows[a.Word] = a.Gloss
		if _, dup := arrowedGlosses[a.Gloss]; dup {
			return violation(ArrowedGlossTwice, "gloss %s", a.Gloss).forGloss(a.Gloss)
		}
		arrowedGlosses[a.Gloss] = struct{}{}
	}
	glosses := c.GlossTable()
	seen := make(map[WordID]struct{}, c.WordCount())
	found := 0
	for _, t := range c.Texts {
		for i := range t.Words {
			w := &t.Words[i]
			if err := verifyWord(w, seen, glosses); err != nil {
				return err.inText(t.Name)
			}
			ag, isArrowed := arrows[w.ID]
			if !isArrowed {
				continue
			}
			found++
			if err := verifyArrowTarget(w, ag, glosses); err != nil {
				return err.inText(t.Name)
			}
		}
	}
	if found != len(arrows) {
		return violation(ArrowCountMismatch, "%d arrows declared, %d arrowed words found in texts",
			len(arrows), found)
	}
	return nil
}

func verifyWord(w *Word, seen map[WordID]struct{}, glosses map[GlossID]*Gloss) *VerificationError {
	if _, dup := seen[w.ID]; dup {
		return violation(DuplicateWordID, "word %s", w.ID).forWord(w.ID)
	}
	seen[w.ID] = struct{}{}
	if !w.IsGlossed() {
		return nil
	}
	gid := w.Gloss.UUID
	if w.Kind != KindWord {
		return violation(NonWordGlossed, "word %s of kind %s references gloss %s",
			w.ID, w.Kind, gid).forWord(w.ID).forGloss(gid)
	}
	if g, ok := glosses[gid]; !ok {
		return violation(GlossMissingOrRetired, "gloss %s referenced by word %s does not exist",
			gid, w.ID).forWord(w.ID).forGloss(gid)
	} else if !g.Usable() {
		return violation(GlossMissingOrRetired, "gloss %s referenced by word %s has status 0",
			gid, w.ID).forWord(w.ID).forGloss(gid)
	}
	return nil
}

func verifyArrowTarget(w *Word, gid GlossID, glosses map[GlossID]*Gloss) *VerificationError {
	if w.Kind != KindWord {
		return violation(NonWordArrowed, "word %s of kind %s", w.ID, w.Kind).forWord(w.ID)
	}
	if !w.IsGlossed() {
		return violation(ArrowedWordUnglossed, "word %s (%q)", w.ID, w.Text).forWord(w.ID).forGloss(gid)
	}
	if w.Gloss.UUID != gid {
		return violation(ArrowedGlossMismatch, "word %q: text has %s, arrow has %s",
			w.Text, describeGloss(glosses, w.Gloss.UUID), describeGloss(glosses, gid)).
			forWord(w.ID).forGloss(gid)
	}
	g, ok := glosses[gid]
	if !ok {
		return violation(ArrowedGlossNotFound, "gloss %s", gid).forWord(w.ID).forGloss(gid)
	}
	if !g.Usable() {
		return violation(ArrowedGlossRetired, "gloss %s (%s)", gid, g.Lemma).forWord(w.ID).forGloss(gid)
	}
	return nil
}

func describeGloss(glosses map[GlossID]*Gloss, id GlossID) string {
	if g, ok := glosses[id]; ok {
		return fmt.Sprintf("%s [%s, status %d]", g.Lemma, id, g.Status)
	}
	return fmt.Sprintf("[%s, unknown]", id)
}
