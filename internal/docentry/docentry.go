// Package docentry folds parsed tags into typed documentation entries.
//
// There is one builder per entry kind. Each builder walks the tag sequence
// once, applying the fold action its table lists for the tag's kind. Tags
// with no action are unused, and a single unused tag fails the whole build;
// every unused tag is reported together.
package docentry

import (
	"fmt"

	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/span"
	"github.com/Zachacious/go-luadoc/internal/tags"
)

// Kind is the kind of a doc entry.
type Kind string

const (
	KindFunction Kind = "function"
	KindType     Kind = "type"
	KindClass    Kind = "class"
)

// DocEntry is one of *FunctionDocEntry, *TypeDocEntry or *ClassDocEntry.
type DocEntry interface {
	EntryKind() Kind
	EntryName() string
	Comment() *doccomment.DocComment
	docEntry()
}

// ParseArguments is the input of one build call.
type ParseArguments struct {
	Name string
	Desc string
	// Within is the owning scope, nil when neither a @within tag nor the
	// caller supplied one.
	Within *string
	Tags   []tags.Tag
	Source *doccomment.DocComment
}

// MissingWithinError reports a function or type entry whose owning scope
// is unknown. It is returned instead of a partially built entry.
type MissingWithinError struct {
	Kind Kind
	Name string
	Span span.Span
}

func (e *MissingWithinError) Error() string {
	return fmt.Sprintf("%s doc entry %q has no @within tag and no scope could be inferred", e.Kind, e.Name)
}

// Diagnostics describes the error as a diagnostic anchored at the comment.
func (e *MissingWithinError) Diagnostics() diagnostic.Diagnostics {
	return diagnostic.New(diagnostic.At(e.Span, "%s doc entries need a @within tag", e.Kind))
}

func requireWithin(args ParseArguments, kind Kind) (string, error) {
	if args.Within != nil && *args.Within != "" {
		return *args.Within, nil
	}
	var sp span.Span
	if args.Source != nil {
		sp = args.Source.Span()
	}
	return "", &MissingWithinError{Kind: kind, Name: args.Name, Span: sp}
}

// foldTable maps tag kinds to the action that folds them into an entry.
type foldTable[E any] map[tags.Kind]func(entry *E, tag tags.Tag)

// fold applies table to every tag. Tags without an action are reported,
// one diagnostic each, in tag order.
func fold[E any](entry *E, kind Kind, table foldTable[E], list []tags.Tag) error {
	var unused []tags.Tag
	for _, tag := range list {
		action, ok := table[tag.Kind()]
		if !ok {
			unused = append(unused, tag)
			continue
		}
		action(entry, tag)
	}

	if len(unused) == 0 {
		return nil
	}
	diags := make([]diagnostic.Diagnostic, 0, len(unused))
	for _, tag := range unused {
		diags = append(diags, diagnostic.At(tag.Span(), "this tag is unused by %s doc entries", kind))
	}
	return diagnostic.New(diags...)
}
