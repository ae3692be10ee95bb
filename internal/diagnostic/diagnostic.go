// Package diagnostic holds the located error values produced while parsing
// tags and building doc entries.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/Zachacious/go-luadoc/internal/span"
)

// Diagnostic is a single message anchored to a span.
type Diagnostic struct {
	Span    span.Span
	Message string
}

// At creates a Diagnostic anchored at sp.
func At(sp span.Span, format string, args ...any) Diagnostic {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return Diagnostic{Span: sp, Message: msg}
}

// Position is the file position of the diagnostic's span.
func (d Diagnostic) Position() span.Position {
	return d.Span.Position()
}

func (d Diagnostic) Error() string {
	if !d.Span.IsValid() {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// Diagnostics is an ordered, non-empty batch of diagnostics. It is the
// error value returned by tag parsing and entry building.
type Diagnostics []Diagnostic

// New builds a batch. An empty batch is a programming error.
func New(diags ...Diagnostic) Diagnostics {
	if len(diags) == 0 {
		panic("diagnostic: empty Diagnostics batch")
	}
	return Diagnostics(diags)
}

func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	}
	lines := make([]string, 0, len(ds))
	for _, d := range ds {
		lines = append(lines, d.Error())
	}
	return fmt.Sprintf("%d problems:\n%s", len(ds), strings.Join(lines, "\n"))
}

// Reportable is implemented by errors that can describe themselves as
// diagnostics, such as the builders' missing-context errors.
type Reportable interface {
	error
	Diagnostics() Diagnostics
}

// Diagnostics lets a batch satisfy Reportable.
func (ds Diagnostics) Diagnostics() Diagnostics {
	return ds
}
