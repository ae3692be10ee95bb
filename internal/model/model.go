package model

import (
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/docentry"
)

// Document is the top-level container for everything documented in a
// project.
type Document struct {
	// Classes are ordered by name.
	Classes []*Class `json:"classes" yaml:"classes"`
}

// Class is a class entry together with the functions and types documented
// within it.
type Class struct {
	Name string `json:"name" yaml:"name"`
	Desc string `json:"desc" yaml:"desc"`
	// Functions are in source order.
	Functions []*docentry.FunctionDocEntry `json:"functions" yaml:"functions"`
	// Types are in source order. Types marked @ignore are never added.
	Types  []*docentry.TypeDocEntry `json:"types" yaml:"types"`
	Source doccomment.OutputSource  `json:"source" yaml:"source"`
}

// NewClass starts a class with no members.
func NewClass(entry *docentry.ClassDocEntry) *Class {
	return &Class{
		Name:      entry.Name,
		Desc:      entry.Desc,
		Functions: []*docentry.FunctionDocEntry{},
		Types:     []*docentry.TypeDocEntry{},
		Source:    entry.OutputSource,
	}
}

// Find returns the class with the given name, or nil.
func (d *Document) Find(name string) *Class {
	for _, c := range d.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}
