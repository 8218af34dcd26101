package manifest

import (
	"github.com/pkg/errors"

	"iface/iface-go/pkg/contract"
	"iface/iface-go/pkg/sig"
	"iface/iface-go/pkg/typesys"
)

// Result records the outcome of defining one manifest type.
type Result struct {
	Type string
	Err  error
}

// Declared holds everything a manifest produced.
type Declared struct {
	Interfaces map[string]*contract.Interface
	Types      map[string]*typesys.Type
	Results    []Result
}

// stubImpl stands in for a default implementation declared in a manifest,
// which has no executable body. Each (interface, member) pair gets a distinct
// value so cross-interface conflict detection still sees distinct defaults.
type stubImpl struct {
	owner  string
	member string
}

// Declare builds every interface, synthesizes enforcement bases, and defines
// every type in manifest order. Interface declaration failures abort; type
// verification failures are collected per type in Results.
func (m *Manifest) Declare() (*Declared, error) {
	out := &Declared{
		Interfaces: make(map[string]*contract.Interface, len(m.Interfaces)),
		Types:      make(map[string]*typesys.Type, len(m.Types)),
	}

	for _, spec := range m.Interfaces {
		members := make([]typesys.MemberDecl, 0, len(spec.Members))
		for _, member := range spec.Members {
			value, err := memberValue(spec.Name, member, member.Default)
			if err != nil {
				return nil, err
			}
			if member.Default {
				value = contract.Default{Value: value}
			}
			members = append(members, typesys.MemberDecl{Name: member.Name, Value: value})
		}
		iface, err := contract.Declare(spec.Name, contract.Spec{Doc: spec.Doc, Members: members})
		if err != nil {
			return nil, err
		}
		out.Interfaces[spec.Name] = iface
	}

	for _, spec := range m.Types {
		t, err := m.defineType(spec, out)
		out.Results = append(out.Results, Result{Type: spec.Name, Err: err})
		if err == nil {
			out.Types[spec.Name] = t
		}
	}
	return out, nil
}

func (m *Manifest) defineType(spec TypeSpec, declared *Declared) (*typesys.Type, error) {
	var bases []*typesys.Type
	if len(spec.Implements) > 0 {
		ifaces := make([]*contract.Interface, len(spec.Implements))
		for i, name := range spec.Implements {
			ifaces[i] = declared.Interfaces[name]
		}
		base, err := contract.Implements(ifaces...)
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}
	for _, name := range spec.Bases {
		base, ok := declared.Types[name]
		if !ok {
			return nil, errors.Errorf("manifest: type %s extends %s, which failed to define", spec.Name, name)
		}
		bases = append(bases, base)
	}

	members := make([]typesys.MemberDecl, 0, len(spec.Members))
	for _, member := range spec.Members {
		value, err := memberValue(spec.Name, member, true)
		if err != nil {
			return nil, err
		}
		members = append(members, typesys.MemberDecl{Name: member.Name, Value: value})
	}
	return typesys.Define(spec.Name, typesys.Spec{
		Doc:     spec.Doc,
		Module:  m.Path,
		Bases:   bases,
		Members: members,
	})
}

// memberValue turns a member spec into a declaration value for the engine.
func memberValue(owner string, member MemberSpec, withImpl bool) (any, error) {
	var impl any
	if withImpl {
		impl = stubImpl{owner: owner, member: member.Name}
	}
	if member.Kind == "property" {
		return sig.Prop{Impl: impl}, nil
	}

	shape, err := sig.Parse(member.Signature)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: member %s.%s", owner, member.Name)
	}
	switch member.Kind {
	case "", "function":
		return sig.Func{Sig: shape, Impl: impl}, nil
	case "type function":
		return sig.TypeFunc{Sig: shape, Impl: impl}, nil
	case "static function":
		return sig.StaticFunc{Sig: shape, Impl: impl}, nil
	default:
		return nil, errors.Errorf("manifest: member %s.%s has unknown kind %q", owner, member.Name, member.Kind)
	}
}
