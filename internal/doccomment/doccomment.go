// Package doccomment finds documentation comments in Lua source and binds
// each one to the declaration that follows it.
package doccomment

import (
	"github.com/Zachacious/go-luadoc/internal/span"
	"github.com/Zachacious/go-luadoc/internal/syntax"
	"github.com/Zachacious/go-luadoc/internal/tags"
)

// OutputSource is where an entry is shown as coming from.
type OutputSource struct {
	Line int    `json:"line" yaml:"line"`
	Path string `json:"path" yaml:"path"`
}

// DocComment is one discovered comment block. It is not modified after
// Find returns it.
type DocComment struct {
	// Body holds the comment text with its delimiters blanked out, so
	// spans into it report real file positions.
	Body *span.Source
	// OutputSource is the file and line shown for the entry.
	OutputSource OutputSource
	// Node is the declaration after the comment, nil when there is none
	// or it could not be read.
	Node syntax.Node
}

// Span covers the whole comment body.
func (c *DocComment) Span() span.Span {
	return c.Body.Whole()
}

// Parse splits the body into description and tags.
func (c *DocComment) Parse() (tags.Block, error) {
	return tags.ParseBlock(c.Span())
}
