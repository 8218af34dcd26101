// Package contract implements declarative interface contracts: interface
// definitions with canonical member signatures and optional defaults,
// structural verification of candidate types, conflict resolution across
// interfaces, and memoized enforcement base synthesis.
package contract

import (
	"github.com/pkg/errors"

	"iface/iface-go/internal/fn"
	"iface/iface-go/pkg/sig"
	"iface/iface-go/pkg/typesys"
)

// Default marks a member declaration as a fallback implementation: a type
// missing the member still satisfies the interface and receives Value.
type Default struct {
	Value any
}

// structuralNames are bookkeeping entries of a type body that are never part
// of its contract.
var structuralNames = map[string]bool{
	"doc":      true,
	"module":   true,
	"name":     true,
	"qualname": true,
	"weakref":  true,
}

var isContractMember = fn.Complement(func(name string) bool { return structuralNames[name] })

// Spec describes an interface to Declare.
type Spec struct {
	Doc     string
	Members []typesys.MemberDecl

	// Normalizer overrides the signature normalizer; sig.Std{} by default.
	Normalizer sig.Normalizer
}

// Interface is an immutable contract: a named set of required members with
// canonical call shapes, plus optional default implementations. Interfaces
// exist only as type-level contracts and can never be instantiated.
type Interface struct {
	name       string
	doc        string
	signatures map[string]sig.Member
	defaults   map[string]Default
	norm       sig.Normalizer
}

// Declare builds an interface definition from an ordered list of member
// declarations. Every declared name outside the structural whitelist must
// yield a canonical signature; failures are reported here, at declaration
// time, never deferred to verification.
func Declare(name string, spec Spec) (*Interface, error) {
	if name == "" {
		return nil, errors.New("contract: interface requires a name")
	}
	norm := spec.Normalizer
	if norm == nil {
		norm = sig.Std{}
	}

	i := &Interface{
		name:       name,
		doc:        spec.Doc,
		signatures: make(map[string]sig.Member, len(spec.Members)),
		defaults:   make(map[string]Default),
		norm:       norm,
	}
	for _, m := range spec.Members {
		if m.Name == "" {
			return nil, errors.Errorf("contract: interface %s declares a member with no name", name)
		}
		if !isContractMember(m.Name) {
			continue
		}
		if _, dup := i.signatures[m.Name]; dup {
			return nil, errors.Errorf("contract: interface %s declares member %q twice", name, m.Name)
		}

		value := m.Value
		def, isDefault := value.(Default)
		if isDefault {
			value = def.Value
		}
		member, err := norm.Normalize(value)
		if err != nil {
			return nil, errors.Wrapf(err, "contract: couldn't parse signature for member %s.%s of kind %s",
				name, m.Name, sig.Describe(value))
		}
		if isDefault {
			if member.Impl == nil {
				return nil, errors.Errorf("contract: default for member %s.%s carries no implementation", name, m.Name)
			}
			i.defaults[m.Name] = def
		}
		i.signatures[m.Name] = member
	}
	return i, nil
}

// MustDeclare is Declare, panicking on error. Intended for package-level
// interface declarations.
func MustDeclare(name string, spec Spec) *Interface {
	i, err := Declare(name, spec)
	if err != nil {
		panic(err)
	}
	return i
}

// Name returns the interface's name.
func (i *Interface) Name() string { return i.name }

// Doc returns the interface's documentation text.
func (i *Interface) Doc() string { return i.doc }

// Members returns a copy of the normalized member signatures.
func (i *Interface) Members() map[string]sig.Member {
	out := make(map[string]sig.Member, len(i.signatures))
	for k, v := range i.signatures {
		out[k] = v
	}
	return out
}

// MemberNames lists the contract members sorted by name.
func (i *Interface) MemberNames() []string {
	return sortedKeys(i.signatures)
}

// New always fails: an interface is a structural contract, not a value.
func (i *Interface) New() (*typesys.Instance, error) {
	return nil, errors.Errorf("contract: can't instantiate interface %s", i.name)
}
