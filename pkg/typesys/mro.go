package typesys

import "fmt"

// linearize computes the C3 linearization of t: t followed by the merge of
// its bases' linearizations and the base list itself.
func linearize(t *Type) ([]*Type, error) {
	seqs := make([][]*Type, 0, len(t.bases)+1)
	for _, b := range t.bases {
		seqs = append(seqs, append([]*Type(nil), b.mro...))
	}
	if len(t.bases) > 0 {
		seqs = append(seqs, append([]*Type(nil), t.bases...))
	}

	out := []*Type{t}
	for {
		seqs = pruneEmpty(seqs)
		if len(seqs) == 0 {
			return out, nil
		}
		head := pickHead(seqs)
		if head == nil {
			return nil, fmt.Errorf("typesys: inconsistent base order for type %s", t.name)
		}
		out = append(out, head)
		for i, seq := range seqs {
			if len(seq) > 0 && seq[0] == head {
				seqs[i] = seq[1:]
			}
		}
	}
}

// pickHead finds the first sequence head that appears in no other sequence's
// tail.
func pickHead(seqs [][]*Type) *Type {
	for _, seq := range seqs {
		head := seq[0]
		if !inAnyTail(head, seqs) {
			return head
		}
	}
	return nil
}

func inAnyTail(candidate *Type, seqs [][]*Type) bool {
	for _, seq := range seqs {
		for _, elem := range seq[1:] {
			if elem == candidate {
				return true
			}
		}
	}
	return false
}

func pruneEmpty(seqs [][]*Type) [][]*Type {
	out := seqs[:0]
	for _, seq := range seqs {
		if len(seq) > 0 {
			out = append(out, seq)
		}
	}
	return out
}
