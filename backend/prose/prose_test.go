package prose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func set(words ...string) string {
	var sp Spacer
	var b strings.Builder
	for _, w := range words {
		b.WriteString(sp.Next(w))
		b.WriteString(w)
	}
	return b.String()
}

func TestSpacing(t *testing.T) {
	assert.Equal(t, "ἄνδρα μοι ἔννεπε, Μοῦσα.", set("ἄνδρα", "μοι", "ἔννεπε", ",", "Μοῦσα", "."))
	assert.Equal(t, "λέγει (τί;) οὐδέν", set("λέγει", "(", "τί", ";", ")", "οὐδέν"))
	assert.Equal(t, "a [b] <c>", set("a", "[", "b", "]", "<", "c", ">"))
	var sp Spacer
	assert.Equal(t, "", sp.Next("a"))
	assert.Equal(t, " ", sp.Next("b"))
	sp.Reset()
	assert.Equal(t, "", sp.Next("c"))
}

func TestVerseLineNumber(t *testing.T) {
	n, label := VerseLineNumber("[line]10")
	assert.Equal(t, "10", n)
	assert.Equal(t, "10", label)
	n, label = VerseLineNumber("[line]11")
	assert.Equal(t, "11", n)
	assert.Equal(t, "", label)
	_, label = VerseLineNumber("[line]12a")
	assert.Equal(t, "12a", label)
}

func TestSectionLabel(t *testing.T) {
	l, major := SectionLabel("[section]3.1")
	assert.Equal(t, "3", l)
	assert.True(t, major)
	l, major = SectionLabel("[section]3.4")
	assert.Equal(t, "4", l)
	assert.False(t, major)
	l, major = SectionLabel("[section]Prologue")
	assert.Equal(t, "Prologue", l)
	assert.True(t, major)
}
