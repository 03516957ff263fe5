package xmlcorpus

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/google/uuid"
	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
)

// Sequence describes how a corpus is distributed over files. It is returned
// by Load and is needed to Save a corpus again.
type Sequence struct {
	File       string // file name of the sequence description
	ID         int
	Glossaries []Glossary
	Texts      []string // text file names, parallel to the corpus' texts
}

// Glossary is the content of a gloss file.
type Glossary struct {
	File    string
	ID      int
	Name    string
	Glosses []*corpus.Gloss
}

var (
	xpRoot       = xpath.MustCompile("/*")
	xpGlossNames = xpath.MustCompile("gloss_names")
	xpTexts      = xpath.MustCompile("texts/text")
	xpArrows     = xpath.MustCompile("arrowed_words/arrow")
	xpWords      = xpath.MustCompile("words/word")
	xpAppCrits   = xpath.MustCompile("appcrits/appcrit")
	xpGlosses    = xpath.MustCompile("gloss")
)

// Load reads a sequence description and all the gloss and text files it
// names. Missing files result in EMISSING errors, malformed files in
// EINVALID errors. A sequence without texts or without glosses is
// reported as EMISSING.
//
// The corpus is not verified.
func Load(path string) (*corpus.Corpus, *Sequence, error) {
	root, err := parseFile("sequence", path)
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Dir(path)
	c := &corpus.Corpus{Title: childText(root, "name")}
	seq := &Sequence{File: filepath.Base(path)}
	if seq.ID, err = childInt(root, "sequence_id", path); err != nil {
		return nil, nil, err
	}
	if c.StartPage, err = childInt(root, "start_page", path); err != nil {
		return nil, nil, err
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpGlossNames) {
		name := strings.TrimSpace(n.InnerText())
		g, err := loadGlossary(dir, name)
		if err != nil {
			return nil, nil, err
		}
		seq.Glossaries = append(seq.Glossaries, *g)
		c.Glosses = append(c.Glosses, g.Glosses...)
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpTexts) {
		name := strings.TrimSpace(n.InnerText())
		t, err := loadText(dir, name)
		if err != nil {
			return nil, nil, err
		}
		t.Display = true
		if d := n.SelectAttr("display"); d != "" {
			if t.Display, err = strconv.ParseBool(d); err != nil {
				return nil, nil, malformed(err, path, "display flag of "+name)
			}
		}
		seq.Texts = append(seq.Texts, name)
		c.Texts = append(c.Texts, t)
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpArrows) {
		gid, err := uuid.Parse(n.SelectAttr("gloss_uuid"))
		if err != nil {
			return nil, nil, malformed(err, path, "arrow gloss_uuid")
		}
		wid, err := uuid.Parse(n.SelectAttr("word_uuid"))
		if err != nil {
			return nil, nil, malformed(err, path, "arrow word_uuid")
		}
		c.Arrows = append(c.Arrows, corpus.Arrow{Word: wid, Gloss: gid})
	}
	if len(c.Texts) == 0 || len(c.Glosses) == 0 {
		return nil, nil, core.Error(core.EMISSING, "sequence %s has no texts or no glosses", path)
	}
	tracer().Infof("loaded %q: %d texts, %d words, %d glosses, %d arrows",
		c.Title, len(c.Texts), c.WordCount(), len(c.Glosses), len(c.Arrows))
	return c, seq, nil
}

func loadGlossary(dir, name string) (*Glossary, error) {
	path := filepath.Join(dir, name)
	root, err := parseFile("gloss file", path)
	if err != nil {
		return nil, err
	}
	g := &Glossary{File: name, Name: root.SelectAttr("gloss_name")}
	if g.ID, err = attrInt(root, "gloss_id", path); err != nil {
		return nil, err
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpGlosses) {
		gloss := &corpus.Gloss{
			Lemma:      childText(n, "lemma"),
			SortKey:    childText(n, "sort_alpha"),
			Definition: childText(n, "gloss"),
			POS:        childText(n, "pos"),
			Note:       childText(n, "note"),
			Updated:    childText(n, "updated"),
			UpdatedBy:  childText(n, "updated_user"),
		}
		if gloss.ID, err = uuid.Parse(n.SelectAttr("uuid")); err != nil {
			return nil, malformed(err, path, "gloss uuid")
		}
		if gloss.Parent, err = optionalUUID(n.SelectAttr("parent_uuid")); err != nil {
			return nil, malformed(err, path, "parent_uuid of gloss "+gloss.ID.String())
		}
		if gloss.Unit, err = childInt(n, "unit", path); err != nil {
			return nil, err
		}
		if gloss.Status, err = childInt(n, "status", path); err != nil {
			return nil, err
		}
		g.Glosses = append(g.Glosses, gloss)
	}
	tracer().Debugf("gloss file %s: %d glosses", name, len(g.Glosses))
	return g, nil
}

func loadText(dir, name string) (*corpus.Text, error) {
	path := filepath.Join(dir, name)
	root, err := parseFile("text", path)
	if err != nil {
		return nil, err
	}
	t := &corpus.Text{
		Name:      root.SelectAttr("text_name"),
		Apparatus: make(map[corpus.WordID]string),
		PagePlan:  corpus.ParsePagePlan(childText(root, "words_per_page")),
	}
	if t.ID, err = attrInt(root, "text_id", path); err != nil {
		return nil, err
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpWords) {
		w := corpus.Word{Text: n.InnerText()}
		if w.ID, err = uuid.Parse(n.SelectAttr("uuid")); err != nil {
			return nil, malformed(err, path, "word uuid")
		}
		if w.Gloss, err = optionalUUID(n.SelectAttr("gloss_uuid")); err != nil {
			return nil, malformed(err, path, "gloss_uuid of word "+w.ID.String())
		}
		if w.Kind, err = corpus.ParseWordKind(n.SelectAttr("type")); err != nil {
			return nil, malformed(err, path, "type of word "+w.ID.String())
		}
		t.Words = append(t.Words, w)
	}
	for _, n := range xmlquery.QuerySelectorAll(root, xpAppCrits) {
		wid, err := uuid.Parse(n.SelectAttr("word_uuid"))
		if err != nil {
			return nil, malformed(err, path, "appcrit word_uuid")
		}
		t.Apparatus[wid] = n.InnerText()
	}
	tracer().Debugf("text file %s: %d words, plan of %d pages", name, len(t.Words), len(t.PagePlan))
	return t, nil
}

// --- Helpers ---------------------------------------------------------------

func parseFile(what, path string) (*xmlquery.Node, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.NotFound(what, path)
	} else if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read %s %s", what, path)
	}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, malformed(err, path, what)
	}
	root := xmlquery.QuerySelector(doc, xpRoot)
	if root == nil {
		return nil, core.Error(core.EINVALID, "%s %s has no root element", what, path)
	}
	return root, nil
}

func malformed(err error, path, what string) error {
	return core.WrapError(err, core.EINVALID, "malformed %s in %s", what, path)
}

func childText(n *xmlquery.Node, name string) string {
	if c := n.SelectElement(name); c != nil {
		return strings.TrimSpace(c.InnerText())
	}
	return ""
}

// childInt reads an integer child element. A missing or empty element is 0.
func childInt(n *xmlquery.Node, name, path string) (int, error) {
	return atoi(childText(n, name), name, path)
}

func attrInt(n *xmlquery.Node, name, path string) (int, error) {
	return atoi(strings.TrimSpace(n.SelectAttr(name)), name, path)
}

func atoi(s, name, path string) (int, error) {
	if s == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed(err, path, name)
	}
	return i, nil
}

func optionalUUID(s string) (uuid.NullUUID, error) {
	if s = strings.TrimSpace(s); s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}
