/*
Package lemmaindex provides an ordered index of glosses by sort key, used for
dictionary-style lookup and typeahead.

The index holds all glosses which are not retired, ordered by their
case-folded sort keys. Lookup returns a window of glosses around a key, much
like a printed dictionary opened at a given page; Complete returns sort keys
starting with a prefix.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lemmaindex

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glosser.lemmas'.
func tracer() tracing.Trace {
	return tracing.Select("glosser.lemmas")
}

// Index is a read-only ordered index of glosses.
type Index struct {
	tree     *treemap.Map    // folded sort key + NUL + id → entry
	ordered  []*corpus.Gloss // glosses in tree order
	prefixes *trie.Trie      // folded sort key → []*corpus.Gloss
}

// entry is a tree value: a gloss and its rank in the tree order.
type entry struct {
	gloss *corpus.Gloss
	rank  int
}

// treeKey makes glosses with identical sort keys distinct while keeping them
// ordered by sort key. NUL sorts before every other character, so a gloss
// with sort key "ab" precedes one with sort key "ab c".
func treeKey(g *corpus.Gloss) string {
	return g.FoldedSortKey() + "\x00" + g.ID.String()
}

// New creates an index from a set of glosses. Retired glosses are left out.
func New(glosses []*corpus.Gloss) *Index {
	ix := &Index{
		tree:     treemap.NewWithStringComparator(),
		prefixes: trie.New(),
	}
	for _, g := range glosses {
		if !g.Usable() {
			continue
		}
		ix.tree.Put(treeKey(g), &entry{gloss: g})
		key := g.FoldedSortKey()
		var same []*corpus.Gloss
		if node, ok := ix.prefixes.Find(key); ok {
			same = node.Meta().([]*corpus.Gloss)
		}
		ix.prefixes.Add(key, append(same, g))
	}
	ix.ordered = make([]*corpus.Gloss, 0, ix.tree.Size())
	it := ix.tree.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		e.rank = len(ix.ordered)
		ix.ordered = append(ix.ordered, e.gloss)
	}
	tracer().Debugf("lemma index holds %d glosses", ix.tree.Size())
	return ix
}

// Len returns the number of glosses in the index.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Lookup returns up to n-1 glosses sorting strictly before key, followed by
// up to n glosses sorting at or after key, in ascending order. The id of the
// first gloss at or after key is returned as the selected gloss; it is
// invalid if key sorts after all glosses. Keys are compared case-folded.
func (ix *Index) Lookup(key string, n int) ([]*corpus.Gloss, uuid.NullUUID) {
	var selected uuid.NullUUID
	if n <= 0 {
		return nil, selected
	}
	at := len(ix.ordered)
	if _, v := ix.tree.Ceiling(corpus.Fold(key)); v != nil {
		e := v.(*entry)
		at = e.rank
		selected = uuid.NullUUID{UUID: e.gloss.ID, Valid: true}
	}
	from, to := at-(n-1), at+n
	if from < 0 {
		from = 0
	}
	if to > len(ix.ordered) {
		to = len(ix.ordered)
	}
	result := make([]*corpus.Gloss, to-from)
	copy(result, ix.ordered[from:to])
	return result, selected
}

// Exact returns all glosses with a given sort key (compared case-folded),
// in no particular order.
func (ix *Index) Exact(sortKey string) []*corpus.Gloss {
	if node, ok := ix.prefixes.Find(corpus.Fold(sortKey)); ok {
		return node.Meta().([]*corpus.Gloss)
	}
	return nil
}

// Complete returns up to limit folded sort keys starting with prefix, in
// ascending order. If limit is 0 or less, all matching keys are returned.
func (ix *Index) Complete(prefix string, limit int) []string {
	prefix = corpus.Fold(prefix)
	if prefix == "" {
		return nil
	}
	keys := ix.prefixes.PrefixSearch(prefix)
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// Selected is a helper to find the position of the selected gloss in a
// lookup result. It returns -1 if there is no selection.
func Selected(glosses []*corpus.Gloss, id uuid.NullUUID) int {
	if !id.Valid {
		return -1
	}
	for i, g := range glosses {
		if g.ID == id.UUID {
			return i
		}
	}
	return -1
}

// Describe formats a gloss for one-line display.
func Describe(g *corpus.Gloss) string {
	var b strings.Builder
	b.WriteString(g.Lemma)
	if g.POS != "" {
		b.WriteString(" (" + g.POS + ")")
	}
	if g.Definition != "" {
		b.WriteString(": " + g.Definition)
	}
	return b.String()
}
