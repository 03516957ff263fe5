package corpus_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
	ct "github.com/npillmayer/glosser/core/corpus/corpustest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeArrowed() *ct.Builder {
	return ct.New("Test").
		Glosses("A", "B", "C").
		Text("t1", "alpha:A", "beta:B", "gamma:C").
		Arrow("t1", 0, "A").Arrow("t1", 1, "B").Arrow("t1", 2, "C")
}

func violationOf(t *testing.T, err error) *corpus.VerificationError {
	t.Helper()
	require.Error(t, err)
	var verr *corpus.VerificationError
	require.True(t, errors.As(err, &verr), "expected verification error, got %v", err)
	return verr
}

func TestVerifyValidCorpus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	assert.NoError(t, corpus.Verify(threeArrowed().Corpus()))
}

func TestVerifyArrowedWordTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := threeArrowed().Arrow("t1", 0, "B").Corpus()
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowedWordTwice, verr.Kind)
	assert.True(t, verr.Word.Valid)
	assert.Equal(t, ct.WordID("t1", 0), verr.Word.UUID)
	assert.Contains(t, verr.Error(), ct.WordID("t1", 0).String())
	assert.True(t, errors.Is(verr, corpus.ErrArrowedWordTwice))
	assert.Equal(t, core.EINVALID, core.Code(verr))
}

func TestVerifyArrowedGlossTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").
		Text("t1", "alpha:A", "alpha:A").
		Arrow("t1", 0, "A").Arrow("t1", 1, "A").Corpus()
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowedGlossTwice, verr.Kind)
	assert.Equal(t, ct.GlossID("A"), verr.Gloss.UUID)
}

func TestVerifyDuplicateWordID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").
		Text("t1", "alpha:A").
		Text("t1", "beta").Corpus() // same text name produces the same word ids
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.DuplicateWordID, verr.Kind)
	assert.Equal(t, "t1", verr.Text)
}

func TestVerifyWordGlossReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").Text("t1", "alpha:A", "beta:B").Corpus()
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.GlossMissingOrRetired, verr.Kind)
	assert.Equal(t, ct.GlossID("B"), verr.Gloss.UUID)
	//
	c = ct.New("Test").RetiredGloss("A").Text("t1", "alpha:A").Corpus()
	verr = violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.GlossMissingOrRetired, verr.Kind)
	assert.Contains(t, verr.Detail, "status 0")
	//
	c = ct.New("Test").Glosses("A").Text("t1", "alpha:A").Corpus()
	c.Texts[0].Words[0].Kind = corpus.KindSpeaker
	verr = violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.NonWordGlossed, verr.Kind)
}

func TestVerifyArrowTargets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").Text("t1", "alpha:A", ".").Arrow("t1", 1, "A").Corpus()
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.NonWordArrowed, verr.Kind)
	//
	c = ct.New("Test").Glosses("A").Text("t1", "alpha:A", "beta").Arrow("t1", 1, "A").Corpus()
	verr = violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowedWordUnglossed, verr.Kind)
	assert.Equal(t, ct.WordID("t1", 1), verr.Word.UUID)
	//
	c = ct.New("Test").Glosses("A", "B").Text("t1", "alpha:A", "beta:B").Arrow("t1", 1, "A").Corpus()
	verr = violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowedGlossMismatch, verr.Kind)
	assert.Contains(t, verr.Detail, "beta")
	assert.True(t, errors.Is(verr, corpus.ErrArrowedGlossMismatch))
}

func TestVerifyArrowCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := threeArrowed().Corpus()
	c.Arrows = append(c.Arrows, corpus.Arrow{Word: ct.WordID("nowhere", 0), Gloss: ct.GlossID("D")})
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowCountMismatch, verr.Kind)
	assert.Contains(t, verr.Detail, "4 arrows declared, 3")
}

func TestVerifyFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	// duplicate word ids and a missing gloss, but arrows are checked first
	c := ct.New("Test").Glosses("A").
		Text("t1", "alpha:A", "beta:X").
		Text("t1", "alpha:A").
		Arrow("t1", 0, "A").Arrow("t1", 0, "A").Corpus()
	verr := violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.ArrowedWordTwice, verr.Kind)
	//
	c.Arrows = c.Arrows[:1]
	verr = violationOf(t, corpus.Verify(c))
	assert.Equal(t, corpus.GlossMissingOrRetired, verr.Kind)
}

func TestVerifyHiddenTextsAreChecked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.corpus")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").
		Text("t1", "alpha:A").Hidden().
		Text("t2", "alpha:A").
		Arrow("t1", 0, "A").Corpus()
	assert.NoError(t, corpus.Verify(c))
}
