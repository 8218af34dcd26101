// Package fn holds small generic helpers shared by the contract packages.
package fn

// KeyFilter returns the entries of m whose keys satisfy pred.
func KeyFilter[K comparable, V any](pred func(K) bool, m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if pred(k) {
			out[k] = v
		}
	}
	return out
}

// ValFilter returns the entries of m whose values satisfy pred.
func ValFilter[K comparable, V any](pred func(V) bool, m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if pred(v) {
			out[k] = v
		}
	}
	return out
}

// Complement negates a single-argument predicate.
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// DZip pairs the values of two maps under their shared keys.
func DZip[K comparable, A, B any](left map[K]A, right map[K]B) map[K][2]any {
	out := make(map[K][2]any)
	for k, a := range left {
		if b, ok := right[k]; ok {
			out[k] = [2]any{a, b}
		}
	}
	return out
}
