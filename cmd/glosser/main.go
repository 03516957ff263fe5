/*
Command glosser builds glossed reading books from an XML corpus.

Usage:

	glosser -seq data/reader.xml -format typst -o reader.typ -unique -hide-invisible -alpha
	glosser -seq data/reader.xml -lookup

The first form verifies the corpus, computes arrowed states and assembles
the book in the requested output format. The second form opens an
interactive lookup of the corpus' lemmas, with tab completion.

Settings may be given in a YAML configuration file (flag -config); flags
override configuration settings.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/config"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glosser.book'
func tracer() tracing.Trace {
	return tracing.Select("glosser.book")
}

func main() {
	initDisplay()

	// command line flags
	cfgfile, lookup := defineFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(*cfgfile)
	if err == nil {
		err = applyFlags(cfg, flag.CommandLine)
	}
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}

	// set up logging
	if err := setupTracing(cfg); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracer().Infof("trace level is %s", cfg.Tracing.Level)

	if *lookup {
		err = lookupLemmas(cfg)
	} else {
		err = buildBook(cfg, os.Stdout, os.Stderr)
	}
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
}

func defineFlags(flags *flag.FlagSet) (cfgfile *string, lookup *bool) {
	cfgfile = flags.String("config", "", "YAML configuration file")
	flags.String("seq", "", "Sequence description of the corpus")
	flags.String("format", "", "Output format [html|typst]")
	flags.String("o", "", "Output file (default stdout)")
	flags.Bool("unique", false, "List every gloss only once per page")
	flags.Bool("hide-invisible", false, "Do not list glosses arrowed on earlier pages")
	flags.Bool("alpha", false, "Sort gloss lists alphabetically")
	flags.Bool("strict", false, "Fail if pages had to be skipped")
	flags.String("trace", "", "Trace level [Debug|Info|Error]")
	lookup = flags.Bool("lookup", false, "Interactive lemma lookup instead of building a book")
	return
}

// applyFlags copies the flags explicitly set on the command line to cfg.
func applyFlags(cfg *config.Config, flags *flag.FlagSet) error {
	flags.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		on := v == "true"
		switch f.Name {
		case "seq":
			cfg.Book.Sequence = v
		case "format":
			cfg.Book.Format = v
		case "o":
			cfg.Book.Output = v
		case "unique":
			cfg.Pages.Unique = on
		case "hide-invisible":
			cfg.Pages.HideInvisible = on
		case "alpha":
			cfg.Pages.Alphabetize = on
		case "strict":
			cfg.Pages.Strict = on
		case "trace":
			cfg.Tracing.Level = v
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Book.Sequence == "" {
		return core.Error(core.EINVALID, "no sequence description given; use flag -seq")
	}
	return nil
}

func setupTracing(cfg *config.Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for key, level := range cfg.TraceSettings() {
		conf[key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Error.Writer = os.Stderr
}
