package xmlcorpus

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/corpus"
)

type xSequence struct {
	XMLName    xml.Name   `xml:"sequence_description"`
	SequenceID int        `xml:"sequence_id"`
	Name       string     `xml:"name"`
	StartPage  int        `xml:"start_page"`
	GlossNames []string   `xml:"gloss_names"`
	Texts      []xTextRef `xml:"texts>text"`
	Arrows     []xArrow   `xml:"arrowed_words>arrow"`
}

type xTextRef struct {
	Display bool   `xml:"display,attr"`
	File    string `xml:",chardata"`
}

type xArrow struct {
	Gloss string `xml:"gloss_uuid,attr"`
	Word  string `xml:"word_uuid,attr"`
}

type xText struct {
	XMLName      xml.Name   `xml:"text"`
	ID           int        `xml:"text_id,attr"`
	Name         string     `xml:"text_name,attr"`
	Words        []xWord    `xml:"words>word"`
	AppCrits     []xAppCrit `xml:"appcrits>appcrit,omitempty"`
	WordsPerPage string     `xml:"words_per_page"`
}

type xWord struct {
	ID    string `xml:"uuid,attr"`
	Gloss string `xml:"gloss_uuid,attr,omitempty"`
	Kind  string `xml:"type,attr"`
	Text  string `xml:",chardata"`
}

type xAppCrit struct {
	Word  string `xml:"word_uuid,attr"`
	Entry string `xml:",chardata"`
}

type xGlosses struct {
	XMLName xml.Name `xml:"glosses"`
	ID      int      `xml:"gloss_id,attr"`
	Name    string   `xml:"gloss_name,attr"`
	Glosses []xGloss `xml:"gloss"`
}

type xGloss struct {
	ID         string `xml:"uuid,attr"`
	Parent     string `xml:"parent_uuid,attr,omitempty"`
	Lemma      string `xml:"lemma"`
	SortKey    string `xml:"sort_alpha"`
	Definition string `xml:"gloss"`
	POS        string `xml:"pos"`
	Unit       int    `xml:"unit"`
	Note       string `xml:"note"`
	Updated    string `xml:"updated"`
	Status     int    `xml:"status"`
	UpdatedBy  string `xml:"updated_user"`
}

// Save writes a corpus to directory dir, distributed over files as described
// by seq. Files are named as in seq; existing files are overwritten.
func Save(dir string, c *corpus.Corpus, seq *Sequence) error {
	if c == nil || seq == nil {
		return core.Error(core.EINVALID, "saving a corpus requires a corpus and a sequence")
	}
	if len(seq.Texts) != len(c.Texts) {
		return core.Error(core.EINVALID, "sequence names %d text files, corpus has %d texts",
			len(seq.Texts), len(c.Texts))
	}
	xs := xSequence{SequenceID: seq.ID, Name: c.Title, StartPage: c.StartPage}
	for _, g := range seq.Glossaries {
		xs.GlossNames = append(xs.GlossNames, g.File)
		if err := writeXML(dir, g.File, glossesOf(g)); err != nil {
			return err
		}
	}
	for i, t := range c.Texts {
		xs.Texts = append(xs.Texts, xTextRef{Display: t.Display, File: seq.Texts[i]})
		if err := writeXML(dir, seq.Texts[i], textOf(t)); err != nil {
			return err
		}
	}
	for _, a := range c.Arrows {
		xs.Arrows = append(xs.Arrows, xArrow{Gloss: a.Gloss.String(), Word: a.Word.String()})
	}
	file := seq.File
	if file == "" {
		file = "sequence.xml"
	}
	if err := writeXML(dir, file, xs); err != nil {
		return err
	}
	tracer().Infof("saved %q to %s", c.Title, dir)
	return nil
}

func glossesOf(g Glossary) xGlosses {
	xg := xGlosses{ID: g.ID, Name: g.Name}
	for _, gl := range g.Glosses {
		x := xGloss{
			ID:         gl.ID.String(),
			Lemma:      gl.Lemma,
			SortKey:    gl.SortKey,
			Definition: gl.Definition,
			POS:        gl.POS,
			Unit:       gl.Unit,
			Note:       gl.Note,
			Updated:    gl.Updated,
			Status:     gl.Status,
			UpdatedBy:  gl.UpdatedBy,
		}
		if gl.Parent.Valid {
			x.Parent = gl.Parent.UUID.String()
		}
		xg.Glosses = append(xg.Glosses, x)
	}
	return xg
}

func textOf(t *corpus.Text) xText {
	xt := xText{ID: t.ID, Name: t.Name, WordsPerPage: corpus.FormatPagePlan(t.PagePlan)}
	for _, w := range t.Words {
		xw := xWord{ID: w.ID.String(), Kind: w.Kind.String(), Text: w.Text}
		if w.Gloss.Valid {
			xw.Gloss = w.Gloss.UUID.String()
		}
		xt.Words = append(xt.Words, xw)
		if entry, ok := t.Apparatus[w.ID]; ok {
			xt.AppCrits = append(xt.AppCrits, xAppCrit{Word: w.ID.String(), Entry: entry})
		}
	}
	return xt
}

func writeXML(dir, name string, v interface{}) error {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode %s", name)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create directory for %s", path)
	}
	data := append([]byte(xml.Header), out...)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write %s", path)
	}
	return nil
}
