package corpus

import (
	"fmt"
	"strings"
)

// WordKind classifies a word of a text. Only words of kind KindWord are
// lexical words which may carry a gloss; all other kinds are punctuation or
// structural markers (paragraphs, sections, verse lines, speakers).
//
// The zero value is KindUnset, which is not a valid kind of any word.
type WordKind uint8

// Word kinds. The set is closed.
const (
	KindUnset WordKind = iota
	KindWord
	KindPunctuation
	KindSpeaker
	KindSection
	KindVerseLine
	KindParaWithIndent
	KindWorkTitle
	KindSectionTitle
	KindInlineSpeaker
	KindParaNoIndent
	KindPageBreak // not used by current corpora
	KindDesc
	KindInvalidType
	KindInlineVerseSpeaker
	kindCount
)

var kindNames = [kindCount]string{
	"Unset", "Word", "Punctuation", "Speaker", "Section", "VerseLine",
	"ParaWithIndent", "WorkTitle", "SectionTitle", "InlineSpeaker",
	"ParaNoIndent", "PageBreak", "Desc", "InvalidType", "InlineVerseSpeaker",
}

// Numeric type codes as stored by the vocabulary database the corpora are
// exported from. Code 3 has never been assigned.
var kindCodes = [kindCount]int{
	-1, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
}

func (k WordKind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("WordKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Code returns the numeric type code of k, or -1 for KindUnset and
// out-of-range values.
func (k WordKind) Code() int {
	if k >= kindCount {
		return -1
	}
	return kindCodes[k]
}

// IsValid is true for every kind except KindUnset and out-of-range values.
// KindInvalidType is a valid kind: it is the database's marker for untyped
// tokens.
func (k WordKind) IsValid() bool {
	return k > KindUnset && k < kindCount
}

// ParseWordKind maps a kind name (as found in corpus files) or a numeric type
// code to a WordKind. Names are matched case-insensitively.
func ParseWordKind(s string) (WordKind, error) {
	s = strings.TrimSpace(s)
	for k := KindWord; k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], s) {
			return k, nil
		}
	}
	for k := KindWord; k < kindCount; k++ {
		if fmt.Sprint(kindCodes[k]) == s {
			return k, nil
		}
	}
	return KindUnset, fmt.Errorf("unknown word kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k WordKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal word kind %v", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *WordKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseWordKind(string(b))
	return
}
