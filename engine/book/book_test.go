package book

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
	ct "github.com/npillmayer/glosser/core/corpus/corpustest"
	"github.com/npillmayer/glosser/engine/occurrence"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recorder is a sink producing a compact trace of the calls it receives.
type recorder struct {
	lemmas     []string
	index      []IndexEntry
	indexCalls int
}

func (r *recorder) StartDocument(title string, start int) string {
	return fmt.Sprintf("<%s@%d>", title, start)
}
func (r *recorder) EndDocument() string { return "</>" }
func (r *recorder) StartPage(title string, n int) string {
	return fmt.Sprintf("[%d:%s ", n, title)
}
func (r *recorder) EndPage() string { return "]" }
func (r *recorder) RunningText(occs []occurrence.Occurrence, app map[corpus.WordID]string) string {
	words := make([]string, len(occs))
	for i, o := range occs {
		words[i] = o.Word.Text
		if note, ok := app[o.Word.ID]; ok {
			words[i] += "*" + note
		}
	}
	return strings.Join(words, " ")
}
func (r *recorder) StartGlossList() string { return "|" }
func (r *recorder) GlossEntry(o occurrence.Occurrence, lemma string) string {
	if o.Gloss == nil {
		return "(-)"
	}
	r.lemmas = append(r.lemmas, lemma)
	return fmt.Sprintf("(%s)", lemma)
}
func (r *recorder) Index(entries []IndexEntry) string {
	r.indexCalls++
	r.index = entries
	return "{index}"
}
func (r *recorder) BlankPage() string { return "_" }

var _ Sink = &recorder{}

func process(t *testing.T, c *corpus.Corpus) [][]occurrence.Occurrence {
	t.Helper()
	texts, err := occurrence.Process(c)
	require.NoError(t, err)
	return texts
}

func sizes(pages []PlannedPage) []int {
	s := make([]int, len(pages))
	for i, p := range pages {
		s[i] = len(p.Occurrences)
	}
	return s
}

func numbers(records []PageRecord, kind PageKind) []int {
	var n []int
	for _, r := range records {
		if r.Kind == kind {
			n = append(n, r.Number)
		}
	}
	return n
}

// --- Pagination ------------------------------------------------------------

func TestPaginate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").Text("t1", "a:A", "b", "c", "d", "e", "f", "g").Corpus()
	occs := process(t, c)[0]
	pages, skipped := Paginate(occs, []int{2, 3, 1})
	assert.Empty(t, skipped)
	assert.Equal(t, []int{2, 3, 2}, sizes(pages))
	var joined []occurrence.Occurrence
	for _, p := range pages {
		joined = append(joined, p.Occurrences...)
	}
	assert.Equal(t, occs, joined)
	//
	pages, _ = Paginate(occs, []int{7})
	assert.Equal(t, []int{7}, sizes(pages))
	pages, _ = Paginate(occs, nil)
	assert.Empty(t, pages)
}

func TestPaginateOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").Text("t1", "a:A", "b", "c", "d", "e").Corpus()
	occs := process(t, c)[0]
	pages, skipped := Paginate(occs, []int{3, 10, 2})
	assert.Equal(t, []int{3, 2}, sizes(pages))
	assert.Equal(t, 0, pages[0].PlanIndex)
	assert.Equal(t, 2, pages[1].PlanIndex)
	require.Len(t, skipped, 1)
	assert.Equal(t, SkippedPage{PlanIndex: 1, Want: 10, Remaining: 2}, skipped[0])
}

func TestPaginateNegativeSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Test").Glosses("A").Text("t1", "a:A", "b", "c", "d", "e").Corpus()
	occs := process(t, c)[0]
	pages, skipped := Paginate(occs, []int{2, -1, 1})
	assert.Equal(t, []int{2, 3}, sizes(pages))
	require.Len(t, skipped, 1)
	assert.Equal(t, SkippedPage{PlanIndex: 1, Want: -1, Remaining: 3}, skipped[0])
}

// --- Gloss lists -----------------------------------------------------------

type GlossListSuite struct {
	suite.Suite
	occs []occurrence.Occurrence
}

func TestGlossLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	suite.Run(t, new(GlossListSuite))
}

// States of the fixture:
//
//	0 c:C arrowed   1 a:A visible   2 b:B visible   3 a:A arrowed
//	4 .             5 x (no gloss)  6 c:C invisible
func (s *GlossListSuite) SetupSuite() {
	c := ct.New("Test").Glosses("A", "B", "C").
		Text("t1", "c:C", "a:A", "b:B", "a:A", ".", "x", "c:C").
		Arrow("t1", 3, "A").Arrow("t1", 0, "C").Corpus()
	texts, err := occurrence.Process(c)
	s.Require().NoError(err)
	s.occs = texts[0]
}

func positions(rows []occurrence.Occurrence) []int {
	p := make([]int, len(rows))
	for i, r := range rows {
		p[i] = r.Position
	}
	return p
}

func (s *GlossListSuite) TestPlain() {
	rows, entries := FilterAndSort(s.occs, 7, Options{})
	s.Equal([]int{0, 1, 2, 3, 5, 6}, positions(rows))
	s.Equal([]IndexEntry{{"C", "C", 7}, {"A", "A", 7}}, entries)
}

func (s *GlossListSuite) TestUniquePerPage() {
	rows, entries := FilterAndSort(s.occs, 7, Options{UniquePerPage: true})
	s.Equal([]int{0, 3, 2, 5}, positions(rows))
	s.Equal(occurrence.Arrowed, rows[1].State)
	s.Len(entries, 2)
}

func (s *GlossListSuite) TestHideInvisible() {
	rows, entries := FilterAndSort(s.occs, 7, Options{HideInvisible: true})
	s.Equal([]int{0, 1, 2, 3}, positions(rows))
	s.Len(entries, 2)
}

func (s *GlossListSuite) TestAlphabetize() {
	rows, _ := FilterAndSort(s.occs, 7, Options{Alphabetize: true})
	s.Equal([]int{1, 3, 2, 0, 6, 5}, positions(rows), "rows without gloss go last")
	rows, _ = FilterAndSort(s.occs, 7, Options{Alphabetize: true, UniquePerPage: true, HideInvisible: true})
	s.Equal([]int{3, 2, 0}, positions(rows))
}

func (s *GlossListSuite) TestIndexEntriesIndependentOfOptions() {
	_, entries := FilterAndSort(s.occs, 3, Options{UniquePerPage: true, HideInvisible: true, Alphabetize: true})
	s.Equal([]IndexEntry{{"C", "C", 3}, {"A", "A", 3}}, entries)
}

// --- Assembly --------------------------------------------------------------

func TestAssembleParity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").StartPage(2).Glosses("A", "B").
		Text("t1", "a:A", "b", "c", "d", "e").Plan(2, 2).
		Text("t2", "a:A", "b:B").Hidden().Plan(1).
		Text("t3", "b:B", "x", "y").Plan(3).
		Arrow("t1", 0, "A").Arrow("t3", 0, "B").Corpus()
	rec := &recorder{}
	doc, err := Assemble(c, process(t, c), rec, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 7}, numbers(doc.Pages, TextPage))
	assert.Equal(t, []int{2, 5, 6, 8}, numbers(doc.Pages, BlankPage))
	for i, p := range doc.Pages {
		if p.Kind == TextPage && (i == 0 || doc.Pages[i-1].Kind == BlankPage) {
			assert.Equal(t, 1, p.Number%2, "text starting on even page %d", p.Number)
		}
	}
	text := doc.TextPages()
	assert.Equal(t, []string{"", "t1", ""}, []string{text[0].Title, text[1].Title, text[2].Title})
	assert.Equal(t, []int{0, 0, 2}, []int{text[0].TextIndex, text[1].TextIndex, text[2].TextIndex})
	assert.Equal(t, 3, text[1].Words)
	assert.False(t, doc.Overflowed())
	assert.Equal(t, "<Book@2>_[3: a b|(A)(-)][4:t1 c d e|(-)(-)(-)]__[7: b x y|(B)(-)(-)]_{index}</>", doc.String())
	assert.Equal(t, uint64(len(doc.String())), doc.Len())
}

func TestAssembleOddStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").StartPage(1).Glosses("A").
		Text("t1", "a:A", "b").Plan(1, 1).
		Text("t2", "c").Plan(1).Corpus()
	doc, err := Assemble(c, process(t, c), &recorder{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, numbers(doc.Pages, TextPage))
	assert.Equal(t, []int{3, 4, 6}, numbers(doc.Pages, BlankPage))
}

func TestAssembleReportsSkippedPages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").Glosses("A").
		Text("t1", "a:A", "b", "c", "d", "e").Plan(3, 10, 2).Corpus()
	doc, err := Assemble(c, process(t, c), &recorder{}, Options{})
	require.NoError(t, err)
	assert.True(t, doc.Overflowed())
	require.Len(t, doc.Skipped, 1)
	assert.Equal(t, "t1", doc.Skipped[0].Text)
	assert.Equal(t, 10, doc.Skipped[0].Want)
	assert.Equal(t, 2, doc.Skipped[0].Remaining)
	assert.Contains(t, doc.Skipped[0].String(), "page #2")
	// the skipped page does not consume a page number
	assert.Equal(t, []int{1, 2}, numbers(doc.Pages, TextPage))
	assert.Equal(t, []int{3, 4}, numbers(doc.Pages, BlankPage))
}

func TestAssembleIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").Glosses("gamma", "beta", "Alpha").
		Text("t1", "g:gamma", "b:beta").Plan(1, 1).
		Text("t2", "a:Alpha", "g:gamma").Plan(2).
		Arrow("t1", 0, "gamma").Arrow("t1", 1, "beta").Arrow("t2", 0, "Alpha").Corpus()
	rec := &recorder{}
	doc, err := Assemble(c, process(t, c), rec, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.indexCalls)
	assert.Equal(t, []IndexEntry{{"Alpha", "Alpha", 5}, {"beta", "beta", 2}, {"gamma", "gamma", 1}}, rec.index)
	assert.Equal(t, rec.index, doc.Index)
	//
	c.Arrows = nil
	rec = &recorder{}
	_, err = Assemble(c, process(t, c), rec, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.indexCalls)
}

func TestAssembleApparatusAndLemmas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").Glosses("\u03bb\u1f71\u03c9").
		Text("t1", "word:\u03bb\u1f71\u03c9", "x").Plan(2).Note(1, "om. B").Corpus()
	rec := &recorder{}
	doc, err := Assemble(c, process(t, c), rec, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"\u03bb\u03ac\u03c9"}, rec.lemmas, "lemmas are normalized")
	assert.Contains(t, doc.String(), "x*om. B")
	var b strings.Builder
	n, err := doc.WriteTo(&b)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(doc.String())), n)
}

func TestAssembleArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").Glosses("A").Text("t1", "a:A").Text("t2", "b").Corpus()
	texts := process(t, c)
	_, err := Assemble(c, texts[:1], &recorder{}, Options{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Assemble(c, texts, nil, Options{})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestBuildSurfacesVerificationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.book")
	defer teardown()
	//
	c := ct.New("Book").Glosses("A", "B").
		Text("t1", "a:A", "b:B").Plan(2).
		Arrow("t1", 0, "A").Arrow("t1", 0, "B").Corpus()
	_, err := Build(c, &recorder{}, Options{})
	assert.True(t, errors.Is(err, corpus.ErrArrowedWordTwice))
	//
	c.Arrows = c.Arrows[:1]
	doc, err := Build(c, &recorder{}, Options{UniquePerPage: true})
	require.NoError(t, err)
	assert.Len(t, doc.Index, 1)
}

func TestNormalizeLemma(t *testing.T) {
	assert.Equal(t, "\u03ac", NormalizeLemma("\u1f71"), "oxia to tonos")
	assert.Equal(t, "\u0389", NormalizeLemma("\u1fcb"))
	assert.Equal(t, ";", NormalizeLemma("\u037e"))
	assert.Equal(t, "\u00b7", NormalizeLemma("\u0387"))
	assert.Equal(t, "\u0308\u0301", NormalizeLemma("\u0344"))
	assert.Equal(t, "\u03bb\u03ac\u03c9", NormalizeLemma("\u03bb\u1f71\u03c9"))
}

func TestSortIndexIsStable(t *testing.T) {
	entries := []IndexEntry{{"b", "B", 3}, {"a2", "a", 9}, {"a1", "A", 4}}
	SortIndex(entries)
	assert.Equal(t, []string{"a2", "a1", "b"}, []string{entries[0].Lemma, entries[1].Lemma, entries[2].Lemma})
}
