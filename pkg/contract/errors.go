package contract

import (
	"fmt"
	"sort"
	"strings"

	"iface/iface-go/pkg/sig"
)

// InvalidImplementation reports structural non-conformance: a candidate type
// that fails one or more interfaces, or conflicting default implementations.
// The message itemizes every violation so a caller can fix all of them from
// one report.
type InvalidImplementation struct {
	msg string
}

func (e *InvalidImplementation) Error() string { return e.msg }

func newInvalidImplementation(iface *Interface, typeName string, missing []string, mistyped map[string]string, mismatched map[string]sig.Signature) *InvalidImplementation {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s failed to implement interface %s:", typeName, iface.name)

	if len(missing) > 0 {
		fmt.Fprintf(&b, "\n\nThe following members of %s were not implemented:", iface.name)
		names := append([]string(nil), missing...)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "\n  - %s%s", name, iface.signatures[name].Sig)
		}
	}

	if len(mistyped) > 0 {
		fmt.Fprintf(&b, "\n\nThe following members of %s were implemented with the wrong kind:", iface.name)
		for _, name := range sortedKeys(mistyped) {
			fmt.Fprintf(&b, "\n  - %s: %s is not the expected kind %s",
				name, mistyped[name], iface.signatures[name].Kind)
		}
	}

	if len(mismatched) > 0 {
		fmt.Fprintf(&b, "\n\nThe following members of %s were implemented with incompatible signatures:", iface.name)
		for _, name := range sortedKeys(mismatched) {
			fmt.Fprintf(&b, "\n  - %s%s != %s%s",
				name, mismatched[name], name, iface.signatures[name].Sig)
		}
	}

	return &InvalidImplementation{msg: b.String()}
}

func conflictingDefaults(typeName string, conflicts map[string][]*Interface) *InvalidImplementation {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s received conflicting default implementations:", typeName)
	for _, member := range sortedKeys(conflicts) {
		fmt.Fprintf(&b, "\n\nThe following interfaces provided default implementations for %q:", member)
		names := make([]string, 0, len(conflicts[member]))
		for _, i := range conflicts[member] {
			names = append(names, i.name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "\n  - %s", name)
		}
	}
	return &InvalidImplementation{msg: b.String()}
}

func compound(failures []*InvalidImplementation) *InvalidImplementation {
	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.msg
	}
	return &InvalidImplementation{msg: strings.Join(msgs, "\n\n")}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
