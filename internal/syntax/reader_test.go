package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDeclaration_Functions(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantOwner string
		method    bool
		local     bool
	}{
		{name: "static", text: "function Players.kick(player)", wantName: "Players.kick", wantOwner: "Players"},
		{name: "method", text: "function Players:kick(player)", wantName: "Players:kick", wantOwner: "Players", method: true},
		{name: "nested owner", text: "function A.b.c()", wantName: "A.b.c", wantOwner: "A.b"},
		{name: "global", text: "function helper()", wantName: "helper"},
		{name: "local", text: "local function helper()", wantName: "helper", local: true},
		{name: "local assignment", text: "local helper = function()", wantName: "helper", local: true},
		{name: "field assignment", text: "Players.kick = function(player)", wantName: "Players.kick", wantOwner: "Players"},
		{name: "leading blank lines", text: "\n\n  function Players.ban<T>(x: T)", wantName: "Players.ban", wantOwner: "Players"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := ReadDeclaration(tt.text, 7)
			require.True(t, ok)

			fn, ok := node.(*FunctionDeclaration)
			require.True(t, ok, "got %T", node)
			assert.Equal(t, tt.wantName, fn.DeclName())
			assert.Equal(t, tt.wantOwner, fn.Owner)
			assert.Equal(t, tt.method, fn.Method)
			assert.Equal(t, tt.local, fn.Local)
			assert.Equal(t, 7, fn.DeclLine())
		})
	}
}

func TestFunctionDeclaration_ShortName(t *testing.T) {
	assert.Equal(t, "kick", (&FunctionDeclaration{Name: "Players:kick", Owner: "Players"}).ShortName())
	assert.Equal(t, "helper", (&FunctionDeclaration{Name: "helper"}).ShortName())
}

func TestReadDeclaration_NotADeclaration(t *testing.T) {
	for _, text := range []string{
		"",
		"local x = 5",
		"return Players",
		"Players.count = 0",
		"Players:kick(p)",
		"export function",
		"type = 5",
		"export type Broken = {",
		"functional()",
	} {
		t.Run(text, func(t *testing.T) {
			_, ok := ReadDeclaration(text, 1)
			assert.False(t, ok)
		})
	}
}

func TestReadDeclaration_AliasType(t *testing.T) {
	node, ok := ReadDeclaration("export type Callback<T> = (T) -> () -- invoked later\nlocal x = 1", 3)
	require.True(t, ok)

	decl, ok := node.(*TypeDeclaration)
	require.True(t, ok, "got %T", node)
	assert.Equal(t, "Callback", decl.Name)
	assert.True(t, decl.Exported)
	assert.Equal(t, "(T) -> ()", decl.Value)
}

func TestReadDeclaration_TableType(t *testing.T) {
	text := `export type Point = {
	-- the x value
	x: number,
	--[[
		the y value,
		on two lines
	]]
	y: number, -- trailing comment is not y's
	label: string?;
	callback: (a: number, b: string) -> { ok: boolean },
	["weird key"]: boolean,
	read id: string,
}`

	node, ok := ReadDeclaration(text, 10)
	require.True(t, ok)

	decl, ok := node.(*TableTypeDeclaration)
	require.True(t, ok, "got %T", node)
	assert.Equal(t, "Point", decl.DeclName())
	assert.True(t, decl.Exported)
	assert.Equal(t, 10, decl.DeclLine())
	require.Len(t, decl.Fields, 6)

	x := decl.Fields[0]
	assert.Equal(t, []Token{{Kind: TokenIdentifier, Text: "x"}}, x.Key)
	assert.Equal(t, "number", x.Value)
	assert.Equal(t, []Trivia{
		{Kind: TriviaWhitespace, Text: "\t"},
		{Kind: TriviaSingleLineComment, Text: " the x value"},
		{Kind: TriviaWhitespace, Text: "\n\t"},
	}, x.LeadingTrivia)

	y := decl.Fields[1]
	assert.Equal(t, "number", y.Value)
	require.Len(t, y.LeadingTrivia, 3)
	assert.Equal(t, TriviaMultiLineComment, y.LeadingTrivia[1].Kind)
	assert.Equal(t, "\n\t\tthe y value,\n\t\ton two lines\n\t", y.LeadingTrivia[1].Text)

	label := decl.Fields[2]
	assert.Equal(t, "string?", label.Value)
	for _, tr := range label.LeadingTrivia {
		assert.Equal(t, TriviaWhitespace, tr.Kind, "trailing comment of y leaked into label")
	}

	assert.Equal(t, "(a: number, b: string) -> { ok: boolean }", decl.Fields[3].Value)

	weird := decl.Fields[4]
	assert.Equal(t, []Token{
		{Kind: TokenSymbol, Text: "["},
		{Kind: TokenString, Text: `"weird key"`},
		{Kind: TokenSymbol, Text: "]"},
	}, weird.Key)
	assert.Equal(t, "boolean", weird.Value)

	assert.Equal(t, "id", decl.Fields[5].Key[0].Text)
}

func TestReadDeclaration_GenericTableType(t *testing.T) {
	node, ok := ReadDeclaration("type Box<T> = { value: T }", 1)
	require.True(t, ok)

	decl := node.(*TableTypeDeclaration)
	assert.False(t, decl.Exported)
	require.Len(t, decl.Fields, 1)
	assert.Equal(t, "T", decl.Fields[0].Value)
	assert.Empty(t, decl.Fields[0].LeadingTrivia)
}
