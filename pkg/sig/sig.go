// Package sig models canonical call shapes for interface members and decides
// whether one shape is an acceptable implementation of another.
package sig

import (
	"fmt"
	"strings"
)

// ParamKind identifies the binding style of a single parameter.
type ParamKind int

const (
	Positional ParamKind = iota
	KeywordOnly
	VarPositional
	VarKeyword
)

func (k ParamKind) String() string {
	switch k {
	case Positional:
		return "positional"
	case KeywordOnly:
		return "keyword-only"
	case VarPositional:
		return "var-positional"
	case VarKeyword:
		return "var-keyword"
	default:
		return fmt.Sprintf("unknown_param_kind_%d", int(k))
	}
}

// Param is one entry of a canonical call shape.
type Param struct {
	Name       string
	Kind       ParamKind
	HasDefault bool
}

// Signature is an ordered list of parameters describing a callable member.
// The receiver parameter is never part of a Signature; the normalizer strips
// it before shapes are compared.
type Signature struct {
	params []Param
}

// New returns an empty signature, the start of a builder chain.
func New() Signature { return Signature{} }

func (s Signature) with(p Param) Signature {
	params := make([]Param, len(s.params)+1)
	copy(params, s.params)
	params[len(s.params)] = p
	return Signature{params: params}
}

// Pos appends a required positional parameter.
func (s Signature) Pos(name string) Signature {
	return s.with(Param{Name: name, Kind: Positional})
}

// PosDefault appends a positional parameter with a default value.
func (s Signature) PosDefault(name string) Signature {
	return s.with(Param{Name: name, Kind: Positional, HasDefault: true})
}

// Key appends a required keyword-only parameter.
func (s Signature) Key(name string) Signature {
	return s.with(Param{Name: name, Kind: KeywordOnly})
}

// KeyDefault appends a keyword-only parameter with a default value.
func (s Signature) KeyDefault(name string) Signature {
	return s.with(Param{Name: name, Kind: KeywordOnly, HasDefault: true})
}

// VarArgs appends a trailing variadic positional capture.
func (s Signature) VarArgs(name string) Signature {
	return s.with(Param{Name: name, Kind: VarPositional})
}

// VarKeywords appends a trailing variadic keyword capture.
func (s Signature) VarKeywords(name string) Signature {
	return s.with(Param{Name: name, Kind: VarKeyword})
}

// Params returns a copy of the parameter list.
func (s Signature) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

func (s Signature) byKind(k ParamKind) []Param {
	var out []Param
	for _, p := range s.params {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

func (s Signature) hasKind(k ParamKind) bool {
	for _, p := range s.params {
		if p.Kind == k {
			return true
		}
	}
	return false
}

// Validate checks the structural rules of a signature: unique names,
// positionals before any variadic or keyword-only entry, at most one
// var-positional and one var-keyword, required positionals before defaulted
// ones, and the var-keyword capture last.
func (s Signature) Validate() error {
	seen := make(map[string]bool, len(s.params))
	stage := Positional
	sawPosDefault := false
	sawVarPos := false
	sawVarKw := false
	for _, p := range s.params {
		if p.Name == "" {
			return fmt.Errorf("sig: parameter with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("sig: duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true
		switch p.Kind {
		case Positional:
			if stage != Positional {
				return fmt.Errorf("sig: positional parameter %q after non-positional parameters", p.Name)
			}
			if p.HasDefault {
				sawPosDefault = true
			} else if sawPosDefault {
				return fmt.Errorf("sig: required positional %q follows a defaulted positional", p.Name)
			}
		case VarPositional:
			if sawVarPos {
				return fmt.Errorf("sig: multiple var-positional parameters")
			}
			if sawVarKw {
				return fmt.Errorf("sig: var-positional %q after var-keyword capture", p.Name)
			}
			sawVarPos = true
			stage = KeywordOnly
		case KeywordOnly:
			if sawVarKw {
				return fmt.Errorf("sig: keyword-only %q after var-keyword capture", p.Name)
			}
			stage = KeywordOnly
		case VarKeyword:
			if sawVarKw {
				return fmt.Errorf("sig: multiple var-keyword parameters")
			}
			sawVarKw = true
		default:
			return fmt.Errorf("sig: parameter %q has invalid kind", p.Name)
		}
	}
	return nil
}

// Equal reports whether two signatures have identical parameter lists.
func (s Signature) Equal(other Signature) bool {
	if len(s.params) != len(other.params) {
		return false
	}
	for i := range s.params {
		if s.params[i] != other.params[i] {
			return false
		}
	}
	return true
}

// String renders the shape as "(a, b=?, *rest, k, o=?, **extra)". A bare "*"
// separates keyword-only parameters when no var-positional capture exists.
func (s Signature) String() string {
	var parts []string
	starred := false
	for _, p := range s.params {
		switch p.Kind {
		case Positional:
			if p.HasDefault {
				parts = append(parts, p.Name+"=?")
			} else {
				parts = append(parts, p.Name)
			}
		case VarPositional:
			parts = append(parts, "*"+p.Name)
			starred = true
		case KeywordOnly:
			if !starred {
				parts = append(parts, "*")
				starred = true
			}
			if p.HasDefault {
				parts = append(parts, p.Name+"=?")
			} else {
				parts = append(parts, p.Name)
			}
		case VarKeyword:
			parts = append(parts, "**"+p.Name)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
