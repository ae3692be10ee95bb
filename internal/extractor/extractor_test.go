package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/Zachacious/go-luadoc/internal/config"
	"github.com/Zachacious/go-luadoc/internal/docentry"
	"github.com/Zachacious/go-luadoc/internal/logging"
	"github.com/Zachacious/go-luadoc/internal/span"
)

// unpack writes the files of a txtar archive from testdata into a fresh
// directory and returns it.
func unpack(t *testing.T, name string) string {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, f := range ar.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	return dir
}

func newExtractor(t *testing.T, dir string) *Extractor {
	t.Helper()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	x, err := New(dir, cfg, logging.Discard())
	require.NoError(t, err)
	return x
}

func TestExtract(t *testing.T) {
	dir := unpack(t, "project.txtar")
	x := newExtractor(t, dir)

	assert.Equal(t, []string{
		"src/Players.lua",
		"src/Players/types.luau",
		"src/helpers.lua",
	}, x.Files())

	res, err := x.Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, x.Files(), res.Files)

	var got []string
	for _, e := range res.Entries {
		got = append(got, string(e.EntryKind())+" "+e.EntryName())
	}
	assert.Equal(t, []string{
		"class Players",
		"function kick",
		"type Options",
		"function clamp",
	}, got)

	kick := res.Entries[1].(*docentry.FunctionDocEntry)
	assert.Equal(t, docentry.FunctionMethod, kick.FunctionType)
	assert.Equal(t, "Players", kick.Within)
	require.Len(t, kick.Params, 2)
	assert.Equal(t, "reason", kick.Params[1].Name.Text())
	assert.Equal(t, "string?", kick.Params[1].LuaType.Text())
	assert.Equal(t, 13, kick.OutputSource.Line)
	assert.Equal(t, "src/Players.lua", kick.OutputSource.Path)

	options := res.Entries[2].(*docentry.TypeDocEntry)
	assert.Equal(t, []docentry.Field{
		{Name: "timeout", LuaType: "number", Desc: "seconds before an idle player is kicked"},
	}, options.Fields)

	clamp := res.Entries[3].(*docentry.FunctionDocEntry)
	assert.Equal(t, "Util", clamp.Within, "falls back to the configured scope")
	assert.Equal(t, docentry.FunctionStatic, clamp.FunctionType)

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, "expected a scope name", d.Message)
	assert.Equal(t, "src/helpers.lua:7:2", d.Span.String())
	assert.Equal(t, span.Position{Line: 7, Column: 2}, d.Position())
}

func TestExtract_Cancelled(t *testing.T) {
	x := newExtractor(t, unpack(t, "project.txtar"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := x.Extract(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Errors(t *testing.T) {
	cfg := config.Default()

	_, err := New(filepath.Join(t.TempDir(), "missing"), cfg, logging.Discard())
	assert.ErrorContains(t, err, "failed to open project")

	file := filepath.Join(t.TempDir(), "init.lua")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(file, cfg, logging.Discard())
	assert.ErrorContains(t, err, "is not a directory")
}

func TestMatchFiles(t *testing.T) {
	dir := unpack(t, "project.txtar")

	files, err := matchFiles(dir, []string{"**/*.lua"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Players.lua", "src/helpers.lua", "vendor/lib.lua"}, files)

	files, err = matchFiles(dir, []string{"src/*.lua", "**/*.luau"}, []string{"src/helpers.lua"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Players.lua", "src/Players/types.luau"}, files)
}

func TestExtractSource(t *testing.T) {
	within := "Mod"
	entries, diags := ExtractSource("mod.lua", `--- @class Mod
local Mod = {}

--- @param x number
--- @field y number
function Mod.f(x) end

--- Text only, nothing follows.
`, &within)

	require.Len(t, entries, 1)
	assert.Equal(t, "Mod", entries[0].EntryName())

	require.Len(t, diags, 2)
	assert.Equal(t, "this tag is unused by function doc entries", diags[0].Message)
	assert.Equal(t, 5, diags[0].Position().Line)
	assert.Equal(t, "unable to determine what kind of doc entry this is; add @class, @function, @method, @interface or @type", diags[1].Message)
	assert.Equal(t, 8, diags[1].Position().Line)
}

func TestExtractSource_WithinRejectsTrailingText(t *testing.T) {
	entries, diags := ExtractSource("a.lua", "--[=[\n\tDoes a thing.\n\t@within Foo\n\tmore text that continues\n]=]\nfunction bar() end\n", nil)

	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Equal(t, "unexpected text after the scope name", diags[0].Message)
	assert.Equal(t, "more text that continues", diags[0].Span.Text())
	assert.Equal(t, span.Position{Line: 4, Column: 2}, diags[0].Position())
}
