// Package diag implements the coercion diagnostics log: an accumulating,
// ordered collection of incidents with a context stack used to render
// where each incident occurred. The coercer (package wml/coerce) borrows a
// *Log mutably; diagnostics are never lost and there is no severity
// gating — every unused attribute or child tag is reported.
package diag

import (
	"fmt"
	"io"
)

// Incident is a single non-fatal diagnostic produced during coercion.
type Incident struct {
	Where  string
	What   string
	Source string
}

// Write renders one incident in a multi-line "At:/Error:/Source:" format.
func (i Incident) Write(w io.Writer) {
	fmt.Fprintf(w, "At: %s\n", i.Where)
	fmt.Fprintf(w, "Error: %s\n", i.What)
	if i.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", i.Source)
	}
	fmt.Fprintln(w)
}

// Log accumulates incidents in emission order and tracks the nested-tag
// context stack used to render each incident's Where field.
type Log struct {
	Incidents []Incident
	context   []string
}

// New returns an empty diagnostics log.
func New() *Log {
	return &Log{}
}

// PushContext pushes a named scope (typically a field or tag name) onto
// the context stack. Callers must pair every push with a PopContext on
// every exit path, including error paths — the coercer in wml/schema
// defers the PopContext right after each push.
func (l *Log) PushContext(name string) {
	l.context = append(l.context, name)
}

// PopContext pops the most recently pushed context scope. Popping an empty
// stack is a no-op.
func (l *Log) PopContext() {
	if len(l.context) == 0 {
		return
	}
	l.context = l.context[:len(l.context)-1]
}

// ContextDepth reports the current context stack depth, used by tests to
// verify push/pop symmetry around a coercion call.
func (l *Log) ContextDepth() int {
	return len(l.context)
}

func (l *Log) formatContext() string {
	var s string
	for _, c := range l.context {
		s += "[" + c + "]"
	}
	return s
}

// ReportAttributeFail records that an attribute's value failed to coerce
// (or was missing) for a field expecting the given debug type name.
func (l *Log) ReportAttributeFail(typeDebugName, key, source, diagnostic string) {
	l.Incidents = append(l.Incidents, Incident{
		Where:  l.formatContext() + " Key: " + key,
		What:   "Expected: " + typeDebugName + ".\n      " + diagnostic,
		Source: source,
	})
}

// ReportChildMissing records that a required child tag was absent.
func (l *Log) ReportChildMissing(tagDebugName, key, diagnostic string) {
	l.Incidents = append(l.Incidents, Incident{
		Where: l.formatContext(),
		What:  "Expected child of type: " + tagDebugName + ", with name '" + key + "'.\n      " + diagnostic,
	})
}

// ReportUnusedAttribute records an attribute Pair that no field consumed.
func (l *Log) ReportUnusedAttribute(key, value string) {
	l.Incidents = append(l.Incidents, Incident{
		Where: l.formatContext() + "." + key,
		What:  "Unused attribute. Value: " + value,
	})
}

// ReportUnusedChild records a child body that no field or container
// consumed.
func (l *Log) ReportUnusedChild(tagName string) {
	l.Incidents = append(l.Incidents, Incident{
		Where: l.formatContext(),
		What:  "Unused child tag. [" + tagName + "]",
	})
}

// Write dumps every incident to w in emission order.
func (l *Log) Write(w io.Writer) {
	for _, i := range l.Incidents {
		i.Write(w)
	}
}
