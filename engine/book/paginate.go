package book

import (
	"fmt"

	"github.com/npillmayer/glosser/engine/occurrence"
)

// PlannedPage is a slice of a text's occurrences making up one page.
// PlanIndex is the position of the page's size within the page plan.
type PlannedPage struct {
	PlanIndex   int
	Occurrences []occurrence.Occurrence
}

// SkippedPage reports a page of a page plan which asked for more words than
// were left in the text. Such pages are left out of the book.
type SkippedPage struct {
	Text      string
	TextIndex int
	PlanIndex int
	Want      int
	Remaining int
}

func (s SkippedPage) String() string {
	return fmt.Sprintf("text %q, page #%d of plan: wants %d words, %d remaining",
		s.Text, s.PlanIndex+1, s.Want, s.Remaining)
}

// Paginate cuts occurrences into pages following a page plan. Each entry of
// the plan takes that many occurrences, except for the last one, which takes
// all remaining occurrences. A page other than the last which would need more
// occurrences than are left is skipped and reported; it does not consume any
// occurrences. Pages of negative size are skipped the same way. An empty plan
// results in no pages.
func Paginate(occs []occurrence.Occurrence, plan []int) ([]PlannedPage, []SkippedPage) {
	var pages []PlannedPage
	var skipped []SkippedPage
	at := 0
	for i, size := range plan {
		if i == len(plan)-1 {
			pages = append(pages, PlannedPage{PlanIndex: i, Occurrences: occs[at:]})
			break
		}
		if size < 0 || at+size > len(occs) {
			skipped = append(skipped, SkippedPage{PlanIndex: i, Want: size, Remaining: len(occs) - at})
			continue
		}
		pages = append(pages, PlannedPage{PlanIndex: i, Occurrences: occs[at : at+size]})
		at += size
	}
	return pages, skipped
}
