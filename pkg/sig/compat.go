package sig

// Compatible reports whether impl is an acceptable implementation shape for
// decl. Implementations may be more permissive than the declaration, never
// less:
//
//   - fixed positionals must match the declaration by name and order;
//   - a positional the declaration defaults must stay defaulted;
//   - extra trailing positionals and extra keyword-only parameters are
//     allowed only when defaulted; variadic captures are always allowed;
//   - a required declared keyword-only must be present by name, required or
//     defaulted; a defaulted one may instead be absorbed by a var-keyword
//     capture;
//   - a declared variadic capture must be preserved.
func Compatible(impl, decl Signature) bool {
	declPos := decl.byKind(Positional)
	implPos := impl.byKind(Positional)

	// Dropping a declared positional is never allowed.
	if len(implPos) < len(declPos) {
		return false
	}
	for i, d := range declPos {
		if implPos[i].Name != d.Name {
			return false
		}
		if d.HasDefault && !implPos[i].HasDefault {
			return false
		}
	}
	for _, extra := range implPos[len(declPos):] {
		if !extra.HasDefault {
			return false
		}
	}

	if decl.hasKind(VarPositional) && !impl.hasKind(VarPositional) {
		return false
	}
	if decl.hasKind(VarKeyword) && !impl.hasKind(VarKeyword) {
		return false
	}

	implKeys := make(map[string]Param)
	for _, p := range impl.byKind(KeywordOnly) {
		implKeys[p.Name] = p
	}
	implVarKw := impl.hasKind(VarKeyword)

	declared := make(map[string]bool)
	for _, d := range decl.byKind(KeywordOnly) {
		declared[d.Name] = true
		k, ok := implKeys[d.Name]
		if !ok {
			// A required keyword must exist by name; a defaulted one may
			// fall through to a var-keyword capture.
			if !d.HasDefault || !implVarKw {
				return false
			}
			continue
		}
		if d.HasDefault && !k.HasDefault {
			return false
		}
	}

	for name, k := range implKeys {
		if declared[name] {
			continue
		}
		if !k.HasDefault {
			return false
		}
	}
	return true
}
