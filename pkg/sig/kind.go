package sig

import "fmt"

// Kind identifies the category of an interface or implementation member.
// The set is closed: the compatibility rules handle every kind exhaustively.
type Kind int

const (
	KindFunction Kind = iota
	KindTypeFunction
	KindStaticFunction
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindTypeFunction:
		return "type function"
	case KindStaticFunction:
		return "static function"
	case KindProperty:
		return "property"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// KindSatisfies reports whether a member of kind actual may stand in for a
// declared member of kind expected. The kinds carry different receiver
// conventions, so only an exact match satisfies; widen here if a compatible
// pair is ever documented.
func KindSatisfies(actual, expected Kind) bool {
	return actual == expected
}
