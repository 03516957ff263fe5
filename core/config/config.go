/*
Package config loads the run configuration of the glosser tools from a YAML
file, with environment variable overrides.

A configuration file looks like this:

	book:
	  sequence: data/reader.xml
	  output: out/reader.typ
	  format: typst
	pages:
	  unique: true
	  hideInvisible: true
	  alphabetize: true
	typst:
	  font: IFAO-Grec Unicode
	  paper: us-trade
	  fontDirs: [ fonts ]
	  evenHeader: GREEK READER
	tracing:
	  level: Error
	  keys:
	    glosser.book: Info

Environment variables GLOSSER_SEQUENCE, GLOSSER_OUTPUT, GLOSSER_FORMAT and
GLOSSER_TRACE override the corresponding settings.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/glosser/core/dimen"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatHTML  = "html"
	FormatTypst = "typst"
)

// TraceKeys lists the tracing keys of the glosser packages.
var TraceKeys = []string{
	"glosser.corpus",
	"glosser.occurrence",
	"glosser.book",
	"glosser.lemmas",
	"glosser.backend",
	"glosser.input",
	"glosser.resources",
}

// Config is the top-level run configuration.
type Config struct {
	Book    BookConfig    `yaml:"book"`
	Pages   PagesConfig   `yaml:"pages"`
	HTML    HTMLConfig    `yaml:"html"`
	Typst   TypstConfig   `yaml:"typst"`
	Tracing TracingConfig `yaml:"tracing"`
}

// BookConfig names input, output and output format.
type BookConfig struct {
	Sequence string `yaml:"sequence"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
}

// PagesConfig controls the gloss lists on the pages of a book.
type PagesConfig struct {
	Unique        bool `yaml:"unique"`
	HideInvisible bool `yaml:"hideInvisible"`
	Alphabetize   bool `yaml:"alphabetize"`
	Strict        bool `yaml:"strict"` // skipped pages are errors
}

// HTMLConfig holds settings for HTML output.
type HTMLConfig struct {
	Stylesheet string `yaml:"stylesheet"` // path of a CSS file
}

// TypstConfig holds settings for Typst output.
type TypstConfig struct {
	Font       string   `yaml:"font"`
	FontDirs   []string `yaml:"fontDirs"`
	EvenHeader string   `yaml:"evenHeader"`
	Paper      string   `yaml:"paper"` // named paper size, e.g. "a5"
	PageWidth  string   `yaml:"pageWidth"`
	PageHeight string   `yaml:"pageHeight"`
	FontSize   string   `yaml:"fontSize"`
}

// TracingConfig sets trace levels: a default level and levels per key.
type TracingConfig struct {
	Level string            `yaml:"level"`
	Keys  map[string]string `yaml:"keys"`
}

// Load reads a YAML configuration file, if path is not empty, and applies
// environment overrides. Settings not present in the file keep their
// defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NotFound("configuration", path)
		} else if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot read configuration %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "malformed configuration %s", path)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Book:    BookConfig{Format: FormatHTML},
		Tracing: TracingConfig{Level: "Error"},
	}
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("GLOSSER_SEQUENCE"); ok {
		cfg.Book.Sequence = v
	}
	if v, ok := lookup("GLOSSER_OUTPUT"); ok {
		cfg.Book.Output = v
	}
	if v, ok := lookup("GLOSSER_FORMAT"); ok {
		cfg.Book.Format = v
	}
	if v, ok := lookup("GLOSSER_TRACE"); ok {
		cfg.Tracing.Level = v
	}
}

// Validate checks output format, page geometry and trace levels. Format names and levels
// are normalized in place.
func (cfg *Config) Validate() error {
	cfg.Book.Format = strings.ToLower(strings.TrimSpace(cfg.Book.Format))
	switch cfg.Book.Format {
	case FormatHTML, FormatTypst:
	default:
		return core.Error(core.EINVALID, "unknown output format %q", cfg.Book.Format)
	}
	if cfg.Typst.Paper != "" {
		if _, ok := dimen.Paper(cfg.Typst.Paper); !ok {
			return core.Error(core.EINVALID, "unknown paper size %q", cfg.Typst.Paper)
		}
	}
	for _, length := range []string{cfg.Typst.PageWidth, cfg.Typst.PageHeight, cfg.Typst.FontSize} {
		if length == "" {
			continue
		}
		if _, err := dimen.ParseDimen(length); err != nil {
			return err
		}
	}
	var err error
	if cfg.Tracing.Level, err = normalizeLevel(cfg.Tracing.Level); err != nil {
		return err
	}
	for key, level := range cfg.Tracing.Keys {
		if cfg.Tracing.Keys[key], err = normalizeLevel(level); err != nil {
			return err
		}
	}
	return nil
}

func normalizeLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "error":
		return "Error", nil
	case "info":
		return "Info", nil
	case "debug":
		return "Debug", nil
	}
	return "", core.Error(core.EINVALID, "unknown trace level %q", level)
}

// TraceSettings returns configuration entries for the tracing setup, one
// "trace.<key>" entry per tracing key. Keys without an explicit level get the
// default level.
func (cfg *Config) TraceSettings() map[string]string {
	keys := append([]string{}, TraceKeys...)
	for key := range cfg.Tracing.Keys {
		if !contains(TraceKeys, key) {
			keys = append(keys, key)
		}
	}
	settings := make(map[string]string, len(keys))
	for _, key := range keys {
		level := cfg.Tracing.Level
		if l, ok := cfg.Tracing.Keys[key]; ok {
			level = l
		}
		settings["trace."+key] = level
	}
	return settings
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
