package schema

import (
	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/diag"
)

// Vector is the homogeneous child-container: it accepts any body whose
// name equals T's own TagName and appends a freshly coerced T.
type Vector[T Tag] struct {
	items   *[]T
	newItem func() T
	name    string
}

// NewVector binds dst (typically a field of type []T on the enclosing
// record) to a Vector container. newItem constructs a fresh, zero-valued
// T for each match; T's TagName is read once, at construction, to decide
// which bodies this container accepts.
func NewVector[T Tag](dst *[]T, newItem func() T) *Vector[T] {
	return &Vector[T]{items: dst, newItem: newItem, name: newItem().TagName()}
}

func (v *Vector[T]) AllowsTag(b *wml.Body) bool {
	return b.Name == v.name
}

func (v *Vector[T]) InsertTag(b *wml.Body, log *diag.Log) error {
	item := v.newItem()
	if err := CoerceBody(item, b, log); err != nil {
		return err
	}
	*v.items = append(*v.items, item)
	return nil
}

// SequenceElement is one entry of a HeterogeneousSequence: the name (or
// alias) under which the body matched, and the coerced Tag it produced.
type SequenceElement struct {
	Name  string
	Value Tag
}

type sequenceEntry struct {
	alias   string
	newItem func() Tag
}

// HeterogeneousSequence is the child-container over {T1...Tn}: it accepts
// any body matching one of several registered tag types (or alias names)
// and stores a tagged-union element, preserving input order.
type HeterogeneousSequence struct {
	items   *[]SequenceElement
	entries []sequenceEntry
}

// NewHeterogeneousSequence binds dst to a new, empty sequence. Register
// member types with Add before using it as a Field.Container.
func NewHeterogeneousSequence(dst *[]SequenceElement) *HeterogeneousSequence {
	return &HeterogeneousSequence{items: dst}
}

// Add registers a member type constructor. An empty alias means "use the
// constructed value's own TagName"; a non-empty alias lets the dispatch
// table key on a name other than T's own tag name.
func (h *HeterogeneousSequence) Add(alias string, newItem func() Tag) *HeterogeneousSequence {
	h.entries = append(h.entries, sequenceEntry{alias: alias, newItem: newItem})
	return h
}

func (h *HeterogeneousSequence) match(b *wml.Body) *sequenceEntry {
	for i := range h.entries {
		e := &h.entries[i]
		name := e.alias
		if name == "" {
			name = e.newItem().TagName()
		}
		if name == b.Name {
			return e
		}
	}
	return nil
}

func (h *HeterogeneousSequence) AllowsTag(b *wml.Body) bool {
	return h.match(b) != nil
}

func (h *HeterogeneousSequence) InsertTag(b *wml.Body, log *diag.Log) error {
	e := h.match(b)
	item := e.newItem()
	if err := CoerceBody(item, b, log); err != nil {
		return err
	}
	name := e.alias
	if name == "" {
		name = b.Name
	}
	*h.items = append(*h.items, SequenceElement{Name: name, Value: item})
	return nil
}

// AllChildren is the catch-all child-container: it accepts every body and
// files it, uncoerced, under its own name. Used when a tag's remaining
// children have no declared schema of their own.
type AllChildren struct {
	items *map[string][]*wml.Body
}

// NewAllChildren binds dst to a new catch-all container, initializing the
// map if it is nil.
func NewAllChildren(dst *map[string][]*wml.Body) *AllChildren {
	if *dst == nil {
		*dst = make(map[string][]*wml.Body)
	}
	return &AllChildren{items: dst}
}

func (a *AllChildren) AllowsTag(b *wml.Body) bool {
	return true
}

func (a *AllChildren) InsertTag(b *wml.Body, log *diag.Log) error {
	(*a.items)[b.Name] = append((*a.items)[b.Name], b)
	return nil
}
