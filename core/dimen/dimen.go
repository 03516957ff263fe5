// Package dimen implements dimensions and units for page geometry.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/glosser/core"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Point is a point on a page, or the extent of a page.
type Point struct {
	X, Y Dimen
}

// Some common paper sizes
var (
	DINA4       = Point{210 * MM, 297 * MM}
	DINA5       = Point{148 * MM, 210 * MM}
	USLetter    = Point{216 * MM, 279 * MM}
	RoyalOctavo = Point{IN * 25 / 4, IN * 10}
	USTrade     = Point{IN * 6, IN * 9}
)

var papers = map[string]Point{
	"a4":           DINA4,
	"a5":           DINA5,
	"us-letter":    USLetter,
	"royal-octavo": RoyalOctavo,
	"us-trade":     USTrade,
}

// Paper returns the extent of a named paper size, e.g. "a5" or "us-trade".
func Paper(name string) (Point, bool) {
	p, ok := papers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Typst returns d as a Typst length. Typst points are big points.
func (d Dimen) Typst() string {
	return strconv.FormatFloat(d.Points(), 'f', -1, 64) + "pt"
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)\s*([a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension, e.g. "6.125in" or
// "10pt". Supported units are pt, bp, mm, cm, in and sp; a number without a
// unit is taken as scaled points.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if d == nil {
		return 0, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	var scale Dimen
	switch strings.ToLower(d[2]) {
	case "pt":
		scale = PT
	case "bp", "px":
		scale = BP
	case "mm":
		scale = MM
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp", "":
		scale = SP
	default:
		return 0, core.Error(core.EINVALID, "unknown unit in dimension %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	v := math.Round(n * float64(scale))
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, core.Error(core.EINVALID, "dimension out of range: %q", s)
	}
	return Dimen(v), nil
}
