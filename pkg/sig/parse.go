package sig

import (
	"fmt"
	"strings"
)

// Parse reads the textual shape syntax used by contract manifests:
//
//	(a, b=?, *rest, k, o=?, **extra)
//
// "=?" marks a parameter with a default value, "*name" a variadic positional
// capture, "**name" a variadic keyword capture, and a bare "*" starts the
// keyword-only section when no capture is present.
func Parse(src string) (Signature, error) {
	trimmed := strings.TrimSpace(src)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return Signature{}, fmt.Errorf("sig: signature %q must be parenthesized", src)
	}
	body := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	s := New()
	if body == "" {
		return s, nil
	}

	kwOnly := false
	bareStar := false
	for _, raw := range strings.Split(body, ",") {
		tok := strings.TrimSpace(raw)
		switch {
		case tok == "":
			return Signature{}, fmt.Errorf("sig: empty parameter entry in %q", src)
		case tok == "*":
			if kwOnly {
				return Signature{}, fmt.Errorf("sig: repeated '*' separator in %q", src)
			}
			kwOnly = true
			bareStar = true
		case strings.HasPrefix(tok, "**"):
			name := tok[2:]
			if err := checkParamName(name, src); err != nil {
				return Signature{}, err
			}
			s = s.VarKeywords(name)
		case strings.HasPrefix(tok, "*"):
			name := tok[1:]
			if err := checkParamName(name, src); err != nil {
				return Signature{}, err
			}
			s = s.VarArgs(name)
			kwOnly = true
		default:
			name, defaulted := strings.CutSuffix(tok, "=?")
			name = strings.TrimSpace(name)
			if err := checkParamName(name, src); err != nil {
				return Signature{}, err
			}
			switch {
			case kwOnly && defaulted:
				s = s.KeyDefault(name)
			case kwOnly:
				s = s.Key(name)
			case defaulted:
				s = s.PosDefault(name)
			default:
				s = s.Pos(name)
			}
		}
	}
	if bareStar && !s.hasKind(KeywordOnly) {
		return Signature{}, fmt.Errorf("sig: '*' must be followed by keyword-only parameters in %q", src)
	}
	if err := s.Validate(); err != nil {
		return Signature{}, err
	}
	return s, nil
}

func checkParamName(name, src string) error {
	if name == "" {
		return fmt.Errorf("sig: missing parameter name in %q", src)
	}
	for i, r := range name {
		alpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !alpha && !(digit && i > 0) {
			return fmt.Errorf("sig: invalid parameter name %q in %q", name, src)
		}
	}
	return nil
}
