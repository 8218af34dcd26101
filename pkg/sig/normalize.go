package sig

import "fmt"

// Func declares an instance-function member. Sig is authored with or without
// the leading receiver; normalization strips a leading "self". Impl may be
// nil for a bare requirement.
type Func struct {
	Sig  Signature
	Impl any
}

// TypeFunc declares a member bound to the type rather than an instance. A
// leading "cls" receiver is stripped during normalization.
type TypeFunc struct {
	Sig  Signature
	Impl any
}

// StaticFunc declares a member with no receiver of any kind.
type StaticFunc struct {
	Sig  Signature
	Impl any
}

// Prop declares a computed property. Its canonical shape is always the empty
// argument list.
type Prop struct {
	Impl any
}

// Member is the normalized form of a declared member: its kind, its
// canonical call shape, and the concrete implementation when one was given.
type Member struct {
	Kind Kind
	Sig  Signature
	Impl any
}

// Normalizer derives a canonical Member from a declared member value.
type Normalizer interface {
	Normalize(v any) (Member, error)
}

// Std is the standard normalizer. It recognizes bare Signature declarations
// and the Func/TypeFunc/StaticFunc/Prop wrappers; anything else is rejected.
type Std struct{}

// Normalize implements Normalizer.
func (Std) Normalize(v any) (Member, error) {
	switch d := v.(type) {
	case Signature:
		if err := d.Validate(); err != nil {
			return Member{}, err
		}
		return Member{Kind: KindFunction, Sig: stripReceiver(d, "self")}, nil
	case Func:
		if err := d.Sig.Validate(); err != nil {
			return Member{}, err
		}
		return Member{Kind: KindFunction, Sig: stripReceiver(d.Sig, "self"), Impl: d.Impl}, nil
	case TypeFunc:
		if err := d.Sig.Validate(); err != nil {
			return Member{}, err
		}
		return Member{Kind: KindTypeFunction, Sig: stripReceiver(d.Sig, "cls"), Impl: d.Impl}, nil
	case StaticFunc:
		if err := d.Sig.Validate(); err != nil {
			return Member{}, err
		}
		return Member{Kind: KindStaticFunction, Sig: d.Sig, Impl: d.Impl}, nil
	case Prop:
		return Member{Kind: KindProperty, Sig: New(), Impl: d.Impl}, nil
	default:
		return Member{}, fmt.Errorf("sig: cannot derive a signature from %s", Describe(v))
	}
}

// Describe names a declared member value for diagnostics: the member kind
// for recognized wrappers, the Go type otherwise.
func Describe(v any) string {
	switch v.(type) {
	case Signature, Func:
		return KindFunction.String()
	case TypeFunc:
		return KindTypeFunction.String()
	case StaticFunc:
		return KindStaticFunction.String()
	case Prop:
		return KindProperty.String()
	default:
		return fmt.Sprintf("%T", v)
	}
}

func stripReceiver(s Signature, receiver string) Signature {
	if len(s.params) > 0 && s.params[0].Kind == Positional && s.params[0].Name == receiver {
		return Signature{params: s.params[1:]}
	}
	return s
}
