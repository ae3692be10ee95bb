package diagnostic

import (
	"errors"
	"sort"

	"github.com/Zachacious/go-luadoc/internal/span"
)

// Collector gathers diagnostics from several stages into one batch.
type Collector struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// Addf appends a diagnostic built from a span and message.
func (c *Collector) Addf(sp span.Span, format string, args ...any) {
	c.Add(At(sp, format, args...))
}

// Extend appends the diagnostics carried by err. It returns false when err
// is not a diagnostic error, in which case nothing is added.
func (c *Collector) Extend(err error) bool {
	if err == nil {
		return true
	}
	var r Reportable
	if errors.As(err, &r) {
		c.items = append(c.items, r.Diagnostics()...)
		return true
	}
	var d Diagnostic
	if errors.As(err, &d) {
		c.Add(d)
		return true
	}
	return false
}

// Len is the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// Items returns the collected diagnostics in insertion order.
func (c *Collector) Items() []Diagnostic {
	return c.items
}

// Err returns nil when nothing was collected, otherwise the batch.
func (c *Collector) Err() error {
	if len(c.items) == 0 {
		return nil
	}
	return New(c.items...)
}

// Sort orders diagnostics by source name, then offset. Ties keep their
// insertion order.
func (c *Collector) Sort() {
	sort.SliceStable(c.items, func(i, j int) bool {
		a, b := c.items[i].Span, c.items[j].Span
		an, bn := sourceName(a), sourceName(b)
		if an != bn {
			return an < bn
		}
		pa, pb := a.Position(), b.Position()
		if pa.Line != pb.Line {
			return pa.Line < pb.Line
		}
		return pa.Column < pb.Column
	})
}

func sourceName(sp span.Span) string {
	if src := sp.Source(); src != nil {
		return src.Name
	}
	return ""
}
