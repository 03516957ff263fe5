/*
Package prose holds helpers shared by render sinks for setting running text:
spacing between words and punctuation, verse line numbering and section
labels.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prose

import (
	"regexp"
	"strconv"
	"strings"
)

// Tokens which attach to the preceding word without a space.
var closing = map[string]bool{
	".": true, ",": true, ";": true, ">": true, "]": true, ")": true,
	"\u00b7": true, "\u0387": true, "\u037e": true, // middle dot, ano teleia, Greek question mark
	",\"": true, ".\"": true, ".\u201d": true, ".\u2019": true,
	"\u00b7\"": true, "\u0387\"": true,
}

// Spacer decides whether a space goes in front of the next word.
// The zero value is at the start of a paragraph, i.e. no space is set in
// front of the first word.
type Spacer struct {
	mid bool
}

// Next returns the separator to put in front of word, and advances the
// spacer.
func (sp *Spacer) Next(word string) string {
	sep := " "
	if !sp.mid || closing[word] {
		sep = ""
	}
	sp.mid = !(word == "<" || word == "[" || word == "(")
	return sep
}

// Reset puts the spacer at the start of a paragraph.
func (sp *Spacer) Reset() {
	sp.mid = false
}

// VerseLineNumber strips the "[line]" marker of a verse line token. It
// returns the number to print in the margin, which is empty for lines not
// divisible by 5. Non-numeric line labels are always printed.
func VerseLineNumber(token string) (number string, label string) {
	number = strings.TrimSpace(strings.ReplaceAll(token, "[line]", ""))
	if n, err := strconv.Atoi(number); err == nil && n%5 != 0 {
		return number, ""
	}
	return number, number
}

var sectionPattern = regexp.MustCompile(`([0-9]+)[.]([0-9]+)`)

// SectionLabel interprets a section token of the form "[section]12.3".
// For the first subsection of a section, the section number is returned
// with major set; otherwise the subsection number is returned. Tokens not
// following the pattern are returned as-is as major labels.
func SectionLabel(token string) (label string, major bool) {
	input := strings.ReplaceAll(token, "[section]", "")
	m := sectionPattern.FindStringSubmatch(input)
	if m == nil {
		return input, true
	}
	if m[2] == "1" {
		return m[1], true
	}
	return m[2], false
}
