// Package typesys provides declarative runtime type records: named types
// built by explicit registration, with base linearization, raw member lookup,
// and hooks that fire whenever a subtype is defined.
package typesys

import (
	"fmt"
	"reflect"
)

// DefineHook runs after a subtype of the hook's owner is constructed. It may
// attach members to the new type or veto the definition by returning an error.
type DefineHook func(*Type) error

// MemberDecl is one (name, value) pair of a type body.
type MemberDecl struct {
	Name  string
	Value any
}

// Spec describes a type to Define.
type Spec struct {
	Doc     string
	Module  string
	Bases   []*Type
	Members []MemberDecl

	// Hook is installed on the new type and runs for every subtype defined
	// beneath it.
	Hook DefineHook

	// Abstract, when non-empty, makes instantiation fail with this message.
	Abstract string

	// SkipHooks suppresses ancestor define-hooks for this one definition.
	// Used when synthesizing the hook-carrying types themselves.
	SkipHooks bool
}

// Type is a runtime type record. Members hold raw declared values; nothing is
// evaluated on lookup.
type Type struct {
	name     string
	doc      string
	module   string
	bases    []*Type
	mro      []*Type
	members  map[string]any
	order    []string
	hook     DefineHook
	abstract string
	meta     map[string]any
}

// Define constructs a new type record, linearizes its ancestry, and runs
// every distinct define-hook found along that ancestry. A hook error discards
// the type.
func Define(name string, spec Spec) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("typesys: type requires a name")
	}
	for _, b := range spec.Bases {
		if b == nil {
			return nil, fmt.Errorf("typesys: type %s has a nil base", name)
		}
	}

	t := &Type{
		name:     name,
		doc:      spec.Doc,
		module:   spec.Module,
		bases:    append([]*Type(nil), spec.Bases...),
		members:  make(map[string]any, len(spec.Members)),
		hook:     spec.Hook,
		abstract: spec.Abstract,
	}
	for _, m := range spec.Members {
		if m.Name == "" {
			return nil, fmt.Errorf("typesys: type %s declares a member with no name", name)
		}
		if _, dup := t.members[m.Name]; dup {
			return nil, fmt.Errorf("typesys: type %s declares member %q twice", name, m.Name)
		}
		t.members[m.Name] = m.Value
		t.order = append(t.order, m.Name)
	}

	mro, err := linearize(t)
	if err != nil {
		return nil, err
	}
	t.mro = mro

	if !spec.SkipHooks {
		for _, hook := range t.hooks() {
			if err := hook(t); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// MustDefine is Define, panicking on error. Intended for package-level type
// declarations.
func MustDefine(name string, spec Spec) *Type {
	t, err := Define(name, spec)
	if err != nil {
		panic(err)
	}
	return t
}

// hooks collects the distinct define-hooks along the linearized ancestry, in
// linearization order.
func (t *Type) hooks() []DefineHook {
	var out []DefineHook
	seen := make(map[uintptr]bool)
	for _, a := range t.mro {
		if a.hook == nil {
			continue
		}
		ptr := reflect.ValueOf(a.hook).Pointer()
		if seen[ptr] {
			continue
		}
		seen[ptr] = true
		out = append(out, a.hook)
	}
	return out
}

// StaticGet finds the raw declared value for name by scanning the linearized
// ancestry in order. It never evaluates the value it finds; a property
// declaration comes back as the declaration itself.
func StaticGet(t *Type, name string) (any, bool) {
	for _, a := range t.mro {
		if v, ok := a.members[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// SetMember attaches or replaces a member on the type itself.
func (t *Type) SetMember(name string, value any) {
	if _, ok := t.members[name]; !ok {
		t.order = append(t.order, name)
	}
	t.members[name] = value
}

// Member returns the raw value declared directly on this type.
func (t *Type) Member(name string) (any, bool) {
	v, ok := t.members[name]
	return v, ok
}

// MemberNames lists the type's own members in declaration order.
func (t *Type) MemberNames() []string {
	return append([]string(nil), t.order...)
}

// Name returns the type's name.
func (t *Type) Name() string { return t.name }

// Doc returns the type's documentation text.
func (t *Type) Doc() string { return t.doc }

// Module returns the declaring module recorded for the type.
func (t *Type) Module() string { return t.module }

// Bases returns a copy of the direct base list.
func (t *Type) Bases() []*Type {
	return append([]*Type(nil), t.bases...)
}

// Linearization returns a copy of the type's linearized ancestry, the type
// itself first.
func (t *Type) Linearization() []*Type {
	return append([]*Type(nil), t.mro...)
}

// SetMeta attaches out-of-band metadata to the type.
func (t *Type) SetMeta(key string, value any) {
	if t.meta == nil {
		t.meta = make(map[string]any)
	}
	t.meta[key] = value
}

// Meta reads metadata attached with SetMeta.
func (t *Type) Meta(key string) (any, bool) {
	v, ok := t.meta[key]
	return v, ok
}

// Instance is a value of a defined type.
type Instance struct {
	typ *Type
}

// New instantiates the type. Abstract types always fail.
func (t *Type) New() (*Instance, error) {
	if t.abstract != "" {
		return nil, fmt.Errorf("typesys: %s", t.abstract)
	}
	return &Instance{typ: t}, nil
}

// Type returns the instance's type.
func (i *Instance) Type() *Type { return i.typ }
