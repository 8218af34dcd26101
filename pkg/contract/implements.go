package contract

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"weak"

	"github.com/pkg/errors"

	"iface/iface-go/pkg/typesys"
)

const metaInterfaces = "contract.interfaces"

// memo maps each exact interface set to its enforcement base. Entries hold
// the base weakly: once nothing else references a given combination's base,
// the entry may be reclaimed.
var memo = struct {
	sync.Mutex
	entries map[string]weak.Pointer[typesys.Type]
}{entries: make(map[string]weak.Pointer[typesys.Type])}

// Implements returns the enforcement base for the given interfaces. Defining
// a type with the base among its bases verifies the new type against every
// interface and installs resolved defaults. Repeated calls with the same set
// of interfaces, in any order, return the identical base type.
func Implements(ifaces ...*Interface) (*typesys.Type, error) {
	if len(ifaces) == 0 {
		return nil, errors.New("contract: Implements requires at least one interface")
	}
	set := make([]*Interface, 0, len(ifaces))
	seen := make(map[*Interface]bool, len(ifaces))
	for _, i := range ifaces {
		if i == nil {
			return nil, errors.New("contract: Implements expected an interface, got nil")
		}
		if !seen[i] {
			seen[i] = true
			set = append(set, i)
		}
	}

	key := memoKey(set)
	memo.Lock()
	defer memo.Unlock()
	if wp, ok := memo.entries[key]; ok {
		if base := wp.Value(); base != nil {
			logger.Debug().Str("base", base.Name()).Msg("enforcement base cache hit")
			return base, nil
		}
	}

	base, err := synthesize(set)
	if err != nil {
		return nil, err
	}
	wp := weak.Make(base)
	memo.entries[key] = wp
	runtime.AddCleanup(base, func(k string) {
		memo.Lock()
		if cur, ok := memo.entries[k]; ok && cur == wp {
			delete(memo.entries, k)
		}
		memo.Unlock()
	}, key)
	logger.Debug().Str("base", base.Name()).Msg("synthesized enforcement base")
	return base, nil
}

// MustImplements is Implements, panicking on error.
func MustImplements(ifaces ...*Interface) *typesys.Type {
	base, err := Implements(ifaces...)
	if err != nil {
		panic(err)
	}
	return base
}

// memoKey is an order-independent identity for an interface set.
func memoKey(set []*Interface) string {
	ids := make([]string, len(set))
	for i, iface := range set {
		ids[i] = fmt.Sprintf("%p", iface)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// synthesize builds a fresh enforcement base carrying the interface set, a
// name derived from the sorted interface names, and documentation listing
// every required member grouped by interface. The base itself is constructed
// without hooks; only its subtypes are verified.
func synthesize(set []*Interface) (*typesys.Type, error) {
	ordered := append([]*Interface(nil), set...)
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].name < ordered[b].name })

	names := make([]string, len(ordered))
	for i, iface := range ordered {
		names[i] = iface.name
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "Implementation of %s.\n\nMembers\n-------", strings.Join(names, ", "))
	for _, iface := range ordered {
		for _, member := range iface.MemberNames() {
			fmt.Fprintf(&doc, "\n%s.%s%s", iface.name, member, iface.signatures[member].Sig)
		}
	}

	base, err := typesys.Define("Implements"+strings.Join(names, "_"), typesys.Spec{
		Doc:       doc.String(),
		Hook:      enforce,
		SkipHooks: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "contract: synthesizing enforcement base")
	}
	base.SetMeta(metaInterfaces, set)
	return base, nil
}
