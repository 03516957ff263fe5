package book

import (
	"sort"

	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/occurrence"
	"golang.org/x/text/unicode/norm"
)

// Options control the gloss list of every page.
type Options struct {
	UniquePerPage bool // list each gloss at most once per page
	HideInvisible bool // do not list glosses taught on earlier pages
	Alphabetize   bool // order the list by sort key instead of text order
}

// IndexEntry is an entry of the index of arrowed words.
type IndexEntry struct {
	Lemma   string
	SortKey string
	Page    int
}

// SortIndex sorts index entries by case-folded sort key. Entries with equal
// keys keep their order.
func SortIndex(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return corpus.Fold(entries[i].SortKey) < corpus.Fold(entries[j].SortKey)
	})
}

// NormalizeLemma brings a lemma into Unicode normalization form C. Amongst
// other things, this replaces Greek vowels with oxia by their tonos
// equivalents, and the Greek question mark and ano teleia by semicolon and
// middle dot.
func NormalizeLemma(lemma string) string {
	return norm.NFC.String(lemma)
}

// FilterAndSort selects the rows of the gloss list for a page. Only
// occurrences of kind KindWord are eligible. Every arrowed occurrence
// results in an index entry for page, regardless of the options.
//
// With UniquePerPage, each gloss is listed once, at the position of its first
// occurrence on the page; if one of its occurrences is arrowed, the row shows
// the arrowed occurrence. Words without a gloss produce a row of their own
// unless HideInvisible is set.
//
// With Alphabetize, rows are sorted by case-folded sort key; rows without a
// gloss go last, in text order.
func FilterAndSort(occs []occurrence.Occurrence, page int, opts Options) ([]occurrence.Occurrence, []IndexEntry) {
	var rows []occurrence.Occurrence
	var entries []IndexEntry
	var slot map[corpus.GlossID]int
	if opts.UniquePerPage {
		slot = make(map[corpus.GlossID]int)
	}
	for _, o := range occs {
		if o.Word.Kind != corpus.KindWord {
			continue
		}
		if opts.HideInvisible && o.State == occurrence.Invisible {
			continue
		}
		if o.Gloss == nil {
			if !opts.HideInvisible {
				rows = append(rows, o)
			}
			continue
		}
		if o.State == occurrence.Arrowed {
			entries = append(entries, IndexEntry{
				Lemma:   NormalizeLemma(o.Gloss.Lemma),
				SortKey: o.Gloss.SortKey,
				Page:    page,
			})
		}
		if opts.UniquePerPage {
			if i, seen := slot[o.Gloss.ID]; seen {
				if o.State == occurrence.Arrowed {
					rows[i] = o
				}
				continue
			}
			slot[o.Gloss.ID] = len(rows)
		}
		rows = append(rows, o)
	}
	if opts.Alphabetize {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].Gloss, rows[j].Gloss
			if a == nil || b == nil {
				return a != nil
			}
			return a.FoldedSortKey() < b.FoldedSortKey()
		})
	}
	return rows, entries
}
