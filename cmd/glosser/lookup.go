package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glosser/core/config"
	"github.com/npillmayer/glosser/core/corpus"
	"github.com/npillmayer/glosser/engine/lemmaindex"
	"github.com/npillmayer/glosser/input/xmlcorpus"
	"github.com/pterm/pterm"
)

// Number of glosses shown around a lookup key.
const lookupWindow = 7

// completer implements readline.AutoCompleter with the sort keys of a
// lemma index.
type completer struct {
	ix *lemmaindex.Index
}

var _ readline.AutoCompleter = completer{}

// Do returns the completions of the text left of the cursor, as suffixes.
func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	typed := strings.TrimLeft(string(line[:pos]), " ")
	prefix := corpus.Fold(typed)
	var suffixes [][]rune
	for _, key := range c.ix.Complete(typed, 50) {
		suffixes = append(suffixes, []rune(key[len(prefix):]))
	}
	return suffixes, len([]rune(typed))
}

func lookupLemmas(cfg *config.Config) error {
	c, _, err := xmlcorpus.Load(cfg.Book.Sequence)
	if err != nil {
		return err
	}
	ix := lemmaindex.New(c.Glosses)
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "lemma > ",
		AutoComplete: completer{ix: ix},
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Printfln("%d lemmas of %q loaded", ix.Len(), c.Title)
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		if line == "help" {
			help()
			continue
		}
		if err := showLookup(ix, line); err != nil {
			tracer().Errorf(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// lookupTable tabulates the glosses around key, marking the first gloss at
// or after key.
func lookupTable(ix *lemmaindex.Index, key string) pterm.TableData {
	glosses, selected := ix.Lookup(key, lookupWindow)
	at := lemmaindex.Selected(glosses, selected)
	data := pterm.TableData{{"", "Lemma", "POS", "Definition", "Unit"}}
	for i, g := range glosses {
		mark := ""
		if i == at {
			mark = "→"
		}
		data = append(data, []string{mark, g.Lemma, g.POS, g.Definition, strconv.Itoa(g.Unit)})
	}
	return data
}

func showLookup(ix *lemmaindex.Index, key string) error {
	for _, g := range ix.Exact(key) {
		pterm.Success.Println(lemmaindex.Describe(g))
	}
	data := lookupTable(ix, key)
	if len(data) == 1 {
		pterm.Warning.Println("no lemmas")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help() {
	pterm.Println("Type the beginning of a lemma's sort key and press <return> to see the")
	pterm.Println("lemmas around it; <tab> completes sort keys.")
	pterm.Println("  help    this message")
	pterm.Println("  quit    leave (or <ctrl>D)")
}
