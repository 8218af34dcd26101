package contract

import (
	"reflect"

	"iface/iface-go/internal/fn"
	"iface/iface-go/pkg/sig"
	"iface/iface-go/pkg/typesys"
)

// Diff is the result of one structural comparison between an interface and a
// candidate type.
type Diff struct {
	// Missing lists declared members absent from the candidate's ancestry.
	Missing []string
	// Mistyped maps member names to the actual member-kind description when
	// the kind does not satisfy the declared one.
	Mistyped map[string]string
	// Mismatched maps member names to the actual canonical shape when the
	// shape is not compatible with the declared one.
	Mismatched map[string]sig.Signature
}

func (d Diff) clean() bool {
	return len(d.Missing) == 0 && len(d.Mistyped) == 0 && len(d.Mismatched) == 0
}

// diff walks every declared member and classifies the candidate's raw
// declaration for it. Lookup scans the candidate's linearized ancestry and
// never evaluates what it finds, so property declarations are compared as
// declarations.
func (i *Interface) diff(t *typesys.Type) Diff {
	d := Diff{
		Mistyped:   make(map[string]string),
		Mismatched: make(map[string]sig.Signature),
	}
	for _, name := range sortedKeys(i.signatures) {
		want := i.signatures[name]
		raw, ok := typesys.StaticGet(t, name)
		if !ok {
			d.Missing = append(d.Missing, name)
			continue
		}
		if def, isDefault := raw.(Default); isDefault {
			raw = def.Value
		}
		got, err := i.norm.Normalize(raw)
		if err != nil {
			d.Mistyped[name] = sig.Describe(raw)
			continue
		}
		if !sig.KindSatisfies(got.Kind, want.Kind) {
			d.Mistyped[name] = got.Kind.String()
			continue
		}
		if !sig.Compatible(got.Sig, want.Sig) {
			d.Mismatched[name] = got.Sig
		}
	}
	return d
}

// Verify checks whether t implements i. On success it returns the mapping of
// member names that were absent from t but covered by the interface's
// defaults, to the default declarations that cover them. On failure it
// returns an *InvalidImplementation itemizing every violation.
func Verify(i *Interface, t *typesys.Type) (map[string]any, error) {
	d := i.diff(t)

	var missing []string
	covered := make(map[string]any)
	for _, name := range d.Missing {
		if def, ok := i.defaults[name]; ok {
			covered[name] = def.Value
		} else {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 && len(d.Mistyped) == 0 && len(d.Mismatched) == 0 {
		logger.Debug().Str("interface", i.name).Str("type", t.Name()).
			Int("defaults", len(covered)).Msg("verified")
		return covered, nil
	}
	logger.Debug().Str("interface", i.name).Str("type", t.Name()).Msg("verification failed")
	return nil, newInvalidImplementation(i, t.Name(), missing, d.Mistyped, d.Mismatched)
}

// interfacesOf collects the candidate's full interface set: its own plus
// every set inherited from ancestor enforcement bases, deduplicated while
// preserving discovery order.
func interfacesOf(t *typesys.Type) []*Interface {
	var out []*Interface
	seen := make(map[*Interface]bool)
	for _, a := range t.Linearization() {
		v, ok := a.Meta(metaInterfaces)
		if !ok {
			continue
		}
		for _, i := range v.([]*Interface) {
			if seen[i] {
				continue
			}
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

// enforce is the define-hook installed on enforcement bases. It verifies the
// new subtype against every interface in scope, merges resolved defaults,
// rejects cross-interface default conflicts, and installs the surviving
// defaults. All failures are reported together.
func enforce(t *typesys.Type) error {
	ifaces := interfacesOf(t)

	var failures []*InvalidImplementation
	impls := make(map[string]any)
	providers := make(map[string][]*Interface)
	for _, i := range ifaces {
		resolved, err := Verify(i, t)
		if err != nil {
			failures = append(failures, err.(*InvalidImplementation))
			continue
		}
		for name, impl := range resolved {
			impls[name] = impl
			providers[name] = append(providers[name], i)
		}
	}

	conflicts := fn.ValFilter(func(ps []*Interface) bool { return len(ps) > 1 }, providers)
	for name, ps := range conflicts {
		if defaultsAgree(name, ps) {
			delete(conflicts, name)
		}
	}

	if len(conflicts) > 0 {
		failures = append(failures, conflictingDefaults(t.Name(), conflicts))
	} else {
		for name, impl := range impls {
			t.SetMember(name, impl)
		}
	}

	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	default:
		return compound(failures)
	}
}

// defaultsAgree reports whether every provider offers literally the same
// default callable for name; identical defaults carry no ambiguity.
func defaultsAgree(name string, providers []*Interface) bool {
	first := providers[0].defaults[name].Value
	for _, p := range providers[1:] {
		if !sameImpl(first, p.defaults[name].Value) {
			return false
		}
	}
	return true
}

func implOf(v any) any {
	switch d := v.(type) {
	case sig.Func:
		return d.Impl
	case sig.TypeFunc:
		return d.Impl
	case sig.StaticFunc:
		return d.Impl
	case sig.Prop:
		return d.Impl
	default:
		return v
	}
}

func sameImpl(a, b any) bool {
	ia, ib := implOf(a), implOf(b)
	if ia == nil || ib == nil {
		return ia == nil && ib == nil
	}
	va, vb := reflect.ValueOf(ia), reflect.ValueOf(ib)
	if va.Kind() == reflect.Func && vb.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return ia == ib
	}
	return false
}
