package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/glosser/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "ifaogrecunicode", NormalizeFontname("IFAO-Grec Unicode"))
	assert.Equal(t, "gentiumplusr", NormalizeFontname("/usr/share/fonts/GentiumPlus-R.ttf"))
	assert.Equal(t, "a.b", NormalizeFontname("A.B"))
}

func TestResolveFontInDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.resources")
	defer teardown()
	//
	dir := t.TempDir()
	fontfile := filepath.Join(dir, "IFAO-Grec-Unicode.ttf")
	require.NoError(t, os.WriteFile(fontfile, []byte("not really a font"), 0644))
	fpath, err := ResolveFont("IFAO-Grec Unicode", filepath.Join(dir, "missing"), dir).Path()
	require.NoError(t, err)
	assert.Equal(t, fontfile, fpath)
}

func TestResolveMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glosser.resources")
	defer teardown()
	//
	_, err := ResolveFont("No Such Font Family 4711", t.TempDir()).Path()
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	promise := ResolveFont("No Such Font Family 4711")
	_, err := promise.PathContext(ctx)
	// either the lookup or the cancellation wins
	assert.Error(t, err)
}
