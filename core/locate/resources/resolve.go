package resources

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glosser/core"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	return core.NotFound("font", name)
}

// NormalizeFontname reduces a font name or font file name to a canonical
// form: lowercase, without file extension, spaces, dashes or underscores.
func NormalizeFontname(name string) string {
	name = strings.ToLower(filepath.Base(name))
	switch ext := filepath.Ext(name); ext {
	case ".ttf", ".otf", ".ttc", ".woff", ".woff2":
		name = strings.TrimSuffix(name, ext)
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// --- Fonts -----------------------------------------------------------------

type pathPlusErr struct {
	path string
	err  error
}

// FontPromise is returned by ResolveFont; calling Path waits for the lookup
// to complete.
type FontPromise interface {
	Path() (string, error)
	PathContext(ctx context.Context) (string, error)
}

type fontLoader struct {
	await func(ctx context.Context) (string, error)
}

func (loader fontLoader) Path() (string, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) PathContext(ctx context.Context) (string, error) {
	return loader.await(ctx)
}

// ResolveFont locates the file of a font family. Directories in dirs are
// searched first, in order, for a font file whose normalized name starts with
// the normalized family name. Regular system and user font directories are
// searched afterwards.
func ResolveFont(name string, dirs ...string) FontPromise {
	ch := make(chan pathPlusErr, 1)
	go func(ch chan<- pathPlusErr) {
		defer close(ch)
		if fpath := searchDirs(name, dirs); fpath != "" {
			tracer().Debugf("found font %s in font directory: %s", name, fpath)
			ch <- pathPlusErr{path: fpath}
			return
		}
		fpath, err := findfont.Find(name) // try to find as system font
		if err == nil && fpath != "" {
			tracer().Debugf("%s is a system font", name)
			ch <- pathPlusErr{path: fpath}
			return
		}
		tracer().Infof("font %s not found", name)
		ch <- pathPlusErr{err: NotFound(name)}
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case r := <-ch:
				return r.path, r.err
			}
		},
	}
}

func searchDirs(name string, dirs []string) string {
	want := NormalizeFontname(name)
	if want == "" {
		return ""
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			tracer().Errorf("cannot read font directory %s: %v", dir, err)
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.HasPrefix(NormalizeFontname(e.Name()), want) {
				return filepath.Join(dir, e.Name())
			}
		}
	}
	return ""
}
