package assembler

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/docentry"
	"github.com/Zachacious/go-luadoc/internal/model"
	"github.com/Zachacious/go-luadoc/internal/span"
)

// BuildDocument attaches every function and type entry to the class named
// by its within scope.
//
// The document is returned even when err is non-nil; it then holds every
// entry that could be placed. err is a diagnostic.Diagnostics naming the
// duplicate classes and the members whose class does not exist.
func BuildDocument(entries []docentry.DocEntry, logger *slog.Logger) (*model.Document, error) {
	doc := &model.Document{Classes: []*model.Class{}}
	byName := make(map[string]*model.Class)
	var diags diagnostic.Collector

	// Classes first, so members can refer to classes declared later.
	for _, entry := range entries {
		class, ok := entry.(*docentry.ClassDocEntry)
		if !ok {
			continue
		}
		if existing, dup := byName[class.Name]; dup {
			diags.Addf(commentSpan(class), "class %q is already defined at %s:%d",
				class.Name, existing.Source.Path, existing.Source.Line)
			continue
		}
		c := model.NewClass(class)
		byName[class.Name] = c
		doc.Classes = append(doc.Classes, c)
	}

	logger.Debug("Assembling document", "classes", len(doc.Classes), "entries", len(entries))
	for _, entry := range entries {
		addMember(byName, entry, &diags, logger)
	}

	slices.SortFunc(doc.Classes, func(a, b *model.Class) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, c := range doc.Classes {
		slices.SortStableFunc(c.Functions, func(a, b *docentry.FunctionDocEntry) int {
			return compareSource(a.OutputSource, b.OutputSource)
		})
		slices.SortStableFunc(c.Types, func(a, b *docentry.TypeDocEntry) int {
			return compareSource(a.OutputSource, b.OutputSource)
		})
	}

	diags.Sort()
	return doc, diags.Err()
}

// addMember places a single function or type entry under its class.
func addMember(byName map[string]*model.Class, entry docentry.DocEntry, diags *diagnostic.Collector, logger *slog.Logger) {
	switch e := entry.(type) {
	case *docentry.FunctionDocEntry:
		class, ok := byName[e.Within]
		if !ok {
			diags.Addf(commentSpan(e), "function %q is documented within %q, but no class has that name", e.Name, e.Within)
			return
		}
		class.Functions = append(class.Functions, e)
	case *docentry.TypeDocEntry:
		if e.Ignore {
			logger.Debug("Skipping ignored type", "name", e.Name, "path", e.OutputSource.Path)
			return
		}
		class, ok := byName[e.Within]
		if !ok {
			diags.Addf(commentSpan(e), "type %q is documented within %q, but no class has that name", e.Name, e.Within)
			return
		}
		class.Types = append(class.Types, e)
	}
}

func commentSpan(entry docentry.DocEntry) span.Span {
	if c := entry.Comment(); c != nil {
		return c.Span()
	}
	return span.Span{}
}

func compareSource(a, b doccomment.OutputSource) int {
	if c := cmp.Compare(a.Path, b.Path); c != 0 {
		return c
	}
	return cmp.Compare(a.Line, b.Line)
}
