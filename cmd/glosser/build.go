package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/glosser/backend/htmlsink"
	"github.com/npillmayer/glosser/backend/typstsink"
	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/config"
	"github.com/npillmayer/glosser/core/dimen"
	"github.com/npillmayer/glosser/core/locate/resources"
	"github.com/npillmayer/glosser/engine/book"
	"github.com/npillmayer/glosser/engine/occurrence"
	"github.com/npillmayer/glosser/input/xmlcorpus"
	"github.com/pterm/pterm"
)

// buildBook loads the corpus, assembles the book and writes it to the
// configured output file, or to stdout if none is configured. Warnings and
// the build report go to diag, never to stdout.
func buildBook(cfg *config.Config, stdout, diag io.Writer) error {
	c, _, err := xmlcorpus.Load(cfg.Book.Sequence)
	if err != nil {
		return err
	}
	texts, err := occurrence.Process(c)
	if err != nil {
		return err
	}
	warn := pterm.Warning.WithWriter(diag)
	sink, err := newSink(cfg, warn)
	if err != nil {
		return err
	}
	doc, err := book.Assemble(c, texts, sink, book.Options{
		UniquePerPage: cfg.Pages.Unique,
		HideInvisible: cfg.Pages.HideInvisible,
		Alphabetize:   cfg.Pages.Alphabetize,
	})
	if err != nil {
		return err
	}
	for _, s := range doc.Skipped {
		warn.Printfln("page skipped: %s", s)
	}
	if err := writeDocument(doc, cfg.Book.Output, stdout); err != nil {
		return err
	}
	if cfg.Book.Output != "" {
		report(doc, occurrence.Summarize(texts), cfg.Book.Output, diag)
	}
	if cfg.Pages.Strict && doc.Overflowed() {
		return core.Error(core.EINVALID, "%d pages skipped because the page plans ask for more words than the texts have",
			len(doc.Skipped))
	}
	return nil
}

func newSink(cfg *config.Config, warn *pterm.PrefixPrinter) (book.Sink, error) {
	switch cfg.Book.Format {
	case config.FormatHTML:
		var css []byte
		if cfg.HTML.Stylesheet != "" {
			var err error
			if css, err = os.ReadFile(cfg.HTML.Stylesheet); err != nil {
				return nil, core.WrapError(err, core.EMISSING, "cannot read stylesheet %s", cfg.HTML.Stylesheet)
			}
		}
		return htmlsink.New(string(css))
	case config.FormatTypst:
		layout := typstsink.Layout{
			Font:       cfg.Typst.Font,
			EvenHeader: cfg.Typst.EvenHeader,
		}
		var err error
		if layout.PageWidth, err = typstLength(cfg.Typst.PageWidth); err != nil {
			return nil, err
		}
		if layout.PageHeight, err = typstLength(cfg.Typst.PageHeight); err != nil {
			return nil, err
		}
		if layout.FontSize, err = typstLength(cfg.Typst.FontSize); err != nil {
			return nil, err
		}
		if paper, ok := dimen.Paper(cfg.Typst.Paper); ok {
			if layout.PageWidth == "" {
				layout.PageWidth = paper.X.Typst()
			}
			if layout.PageHeight == "" {
				layout.PageHeight = paper.Y.Typst()
			}
		}
		font := layout.Font
		if font == "" {
			font = typstsink.DefaultLayout.Font
		}
		if path, err := resources.ResolveFont(font, cfg.Typst.FontDirs...).Path(); err == nil {
			layout.FontPath = path
		} else {
			warn.Printfln("font %q not found, typst will fall back to a default font", font)
		}
		return typstsink.New(layout), nil
	}
	return nil, core.Error(core.EINVALID, "unknown output format %q", cfg.Book.Format)
}

// typstLength converts a configured length to Typst points, as Typst does
// not know every unit ParseDimen accepts. An empty length stays empty.
func typstLength(length string) (string, error) {
	if length == "" {
		return "", nil
	}
	d, err := dimen.ParseDimen(length)
	if err != nil {
		return "", err
	}
	return d.Typst(), nil
}

func writeDocument(doc *book.Document, output string, stdout io.Writer) error {
	if output == "" {
		_, err := doc.WriteTo(stdout)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create output directory for %s", output)
	}
	f, err := os.Create(output)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create output file %s", output)
	}
	if _, err = doc.WriteTo(f); err != nil {
		f.Close()
		return core.WrapError(err, core.EINVALID, "cannot write output file %s", output)
	}
	return f.Close()
}

func report(doc *book.Document, stats occurrence.Stats, output string, diag io.Writer) {
	blank := len(doc.Pages) - len(doc.TextPages())
	data := pterm.TableData{
		{"Pages", "Text pages", "Blank pages", "Skipped", "Words", "Glossed", "Arrowed", "Index entries"},
		{
			strconv.Itoa(len(doc.Pages)),
			strconv.Itoa(len(doc.TextPages())),
			strconv.Itoa(blank),
			strconv.Itoa(len(doc.Skipped)),
			strconv.Itoa(stats.Words),
			strconv.Itoa(stats.Glossed),
			strconv.Itoa(stats.Arrowed),
			strconv.Itoa(len(doc.Index)),
		},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(diag).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	pterm.Success.WithWriter(diag).Println(fmt.Sprintf("wrote %d bytes to %s", doc.Len(), output))
}
