// Package schema defines the three trait families a user-defined record
// type participates in coercion through — Tag, ChildContainer, and the
// attribute coercion functions built in attribute.go — plus the coercion
// walk itself.
//
// The walk (CoerceBody/CoerceConfig) lives here rather than in a separate
// package because the built-in child containers (container.go) need to
// call it recursively when inserting a coerced element, and Tag/Field are
// already defined here; putting the walk in a downstream package would
// create an import cycle. Package wml/coerce is the public name a caller
// imports; it wraps these functions, adding only a throwaway log when the
// caller passes nil.
package schema

import (
	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/diag"
)

// Kind identifies how a single Field participates in coercion.
type Kind int

const (
	KindAttribute Kind = iota
	KindAttributeDefault
	KindOptionalAttribute
	KindChildTag
	KindOptionalChildTag
	KindRecursiveChildTag
	KindContainer
)

// Field is one entry in a Tag's field schema: a name, a kind, and the
// closures needed to coerce into (or allocate) the bound destination.
// Exactly the subset of fields relevant to Kind is populated; the rest
// are left zero.
type Field struct {
	Name      string
	Kind      Kind
	DebugName string

	// KindAttribute, KindAttributeDefault, KindOptionalAttribute.
	CoerceAttribute func(wml.Str) error
	ApplyDefault    func()

	// KindChildTag, KindRecursiveChildTag: Child is already allocated by
	// the caller and is coerced into in place.
	Child Tag

	// KindOptionalChildTag: NewChild allocates a fresh destination only
	// when a matching body is actually found; SetChild receives it once
	// coerced so the caller can store it (typically into a *T field).
	NewChild func() Tag
	SetChild func(Tag)

	// KindContainer.
	Container ChildContainer
}

// Tag is a record type representing a WML tag body.
type Tag interface {
	TagName() string
	Fields() []Field
}

// ChildContainer is a collection type holding child tag records, matched
// and inserted one body at a time.
type ChildContainer interface {
	AllowsTag(b *wml.Body) bool
	InsertTag(b *wml.Body, log *diag.Log) error
}

// CoerceBody coerces b.Children into t using t's field schema, exactly
// equivalent to CoerceConfig(t, b.Children, log).
func CoerceBody(t Tag, b *wml.Body, log *diag.Log) error {
	return CoerceConfig(t, b.Children, log)
}

// CoerceConfig walks t's field schema in declaration order. For each
// field it scans children for the first AST node not yet marked used that
// matches the field's kind, consumes it, and marks it used. After every
// field has been processed, every node still unused is reported via log
// (macro invocations are exempt — they are inert to the schema).
func CoerceConfig(t Tag, children []wml.Node, log *diag.Log) error {
	used := make([]bool, len(children))

	for _, f := range t.Fields() {
		switch f.Kind {
		case KindAttribute:
			coerceRequiredAttribute(f, children, used, log)
		case KindAttributeDefault, KindOptionalAttribute:
			coerceDefaultedAttribute(f, children, used, log)
		case KindChildTag, KindRecursiveChildTag:
			coerceRequiredChild(f, children, used, log)
		case KindOptionalChildTag:
			coerceOptionalChild(f, children, used, log)
		case KindContainer:
			coerceContainer(f, children, used, log)
		}
	}

	reportUnused(children, used, log)
	return nil
}

func coerceRequiredAttribute(f Field, children []wml.Node, used []bool, log *diag.Log) {
	idx, pair := findUnusedPair(children, used, f.Name)
	if idx < 0 {
		log.ReportAttributeFail(f.DebugName, f.Name, "(none)", "Attribute not found!")
		return
	}
	used[idx] = true
	if err := f.CoerceAttribute(pair.Value); err != nil {
		log.ReportAttributeFail(f.DebugName, f.Name, pair.Value.String(), err.Error())
	}
}

func coerceDefaultedAttribute(f Field, children []wml.Node, used []bool, log *diag.Log) {
	idx, pair := findUnusedPair(children, used, f.Name)
	if idx < 0 {
		if f.ApplyDefault != nil {
			f.ApplyDefault()
		}
		return
	}
	used[idx] = true
	if err := f.CoerceAttribute(pair.Value); err != nil {
		log.ReportAttributeFail(f.DebugName, f.Name, pair.Value.String(), err.Error())
	}
}

func coerceRequiredChild(f Field, children []wml.Node, used []bool, log *diag.Log) {
	idx, body := findUnusedBody(children, used, f.Name)
	if idx < 0 {
		log.ReportChildMissing(f.DebugName, f.Name, "Child not found!")
		return
	}
	used[idx] = true
	log.PushContext(f.Name)
	defer log.PopContext()
	CoerceBody(f.Child, body, log)
}

func coerceOptionalChild(f Field, children []wml.Node, used []bool, log *diag.Log) {
	idx, body := findUnusedBody(children, used, f.Name)
	if idx < 0 {
		return
	}
	used[idx] = true
	child := f.NewChild()
	log.PushContext(f.Name)
	defer log.PopContext()
	CoerceBody(child, body, log)
	f.SetChild(child)
}

func coerceContainer(f Field, children []wml.Node, used []bool, log *diag.Log) {
	for {
		idx, body := findUnusedMatching(children, used, f.Container.AllowsTag)
		if idx < 0 {
			return
		}
		used[idx] = true
		f.Container.InsertTag(body, log)
	}
}

func reportUnused(children []wml.Node, used []bool, log *diag.Log) {
	for i, n := range children {
		if used[i] {
			continue
		}
		switch n.Kind {
		case wml.NodePair:
			log.ReportUnusedAttribute(n.Pair.Key, n.Pair.Value.String())
		case wml.NodeBody:
			log.ReportUnusedChild(n.Body.Name)
		case wml.NodeMacro:
			// Macro invocations are inert to the schema; not reported.
		}
	}
}

func findUnusedPair(children []wml.Node, used []bool, key string) (int, *wml.Pair) {
	for i, n := range children {
		if used[i] || n.Kind != wml.NodePair {
			continue
		}
		if n.Pair.Key == key {
			return i, n.Pair
		}
	}
	return -1, nil
}

func findUnusedBody(children []wml.Node, used []bool, name string) (int, *wml.Body) {
	return findUnusedMatching(children, used, func(b *wml.Body) bool { return b.Name == name })
}

func findUnusedMatching(children []wml.Node, used []bool, allows func(*wml.Body) bool) (int, *wml.Body) {
	for i, n := range children {
		if used[i] || n.Kind != wml.NodeBody {
			continue
		}
		if allows(n.Body) {
			return i, n.Body
		}
	}
	return -1, nil
}
