package corpus

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWordKindNames(t *testing.T) {
	k, err := ParseWordKind("VerseLine")
	assert.NoError(t, err)
	assert.Equal(t, KindVerseLine, k)
	assert.Equal(t, 5, k.Code())
	k, err = ParseWordKind("inlineversespeaker")
	assert.NoError(t, err)
	assert.Equal(t, KindInlineVerseSpeaker, k)
	assert.Equal(t, 14, k.Code())
	k, err = ParseWordKind("4")
	assert.NoError(t, err)
	assert.Equal(t, KindSection, k)
	_, err = ParseWordKind("Unset")
	assert.Error(t, err)
	_, err = ParseWordKind("3")
	assert.Error(t, err)
	//
	var zero WordKind
	assert.False(t, zero.IsValid())
	assert.True(t, KindInvalidType.IsValid())
	assert.Equal(t, "WordKind(99)", WordKind(99).String())
}

func TestWordKindText(t *testing.T) {
	b, err := KindPunctuation.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Punctuation", string(b))
	var k WordKind
	assert.NoError(t, k.UnmarshalText([]byte("Desc")))
	assert.Equal(t, KindDesc, k)
	_, err = KindUnset.MarshalText()
	assert.Error(t, err)
}

func TestPagePlan(t *testing.T) {
	assert.Equal(t, []int{12, 30, 7}, ParsePagePlan("12, 30,x,7"))
	assert.Nil(t, ParsePagePlan("  "))
	assert.Equal(t, []int{0, 4}, ParsePagePlan("0,-1,4"))
	assert.Equal(t, "12,30,7", FormatPagePlan([]int{12, 30, 7}))
}

func TestFoldedSortKey(t *testing.T) {
	g := &Gloss{SortKey: "Λόγος", Status: 1}
	assert.Equal(t, Fold("λόγος"), g.FoldedSortKey())
	assert.True(t, g.Usable())
	var nothing *Gloss
	assert.False(t, nothing.Usable())
}

func TestCorpusTables(t *testing.T) {
	g := &Gloss{ID: uuid.New(), Status: 1}
	w1, w2 := uuid.New(), uuid.New()
	c := &Corpus{
		Glosses: []*Gloss{g},
		Arrows:  []Arrow{{Word: w1, Gloss: g.ID}},
		Texts: []*Text{
			{Words: []Word{{ID: w1}}, Apparatus: map[WordID]string{w1: "om. A"}},
			{Words: []Word{{ID: w2}}, Apparatus: map[WordID]string{w2: "add. B"}},
		},
	}
	assert.Same(t, g, c.GlossTable()[g.ID])
	assert.Equal(t, g.ID, c.ArrowTable()[w1])
	assert.Len(t, c.Apparatus(), 2)
	assert.Equal(t, 2, c.WordCount())
}
