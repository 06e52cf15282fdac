package indexheap

import "fmt"

// CheckInvariants reports a non-nil error if h's heap-order or
// side-index bijection invariants (spec §8, properties 1-3) are
// currently violated. It exists only for this package's own test suite —
// export_test.go files are excluded from non-test builds — and is not
// part of the public API.
func (h *Heap[P, E]) CheckInvariants() error {
	for i := 1; i < h.numElts; i++ {
		if h.cmpPty(h.pairs[parent(i)].p, h.pairs[i].p) > 0 {
			return fmt.Errorf("heap order violated at slot %d", i)
		}
	}
	for i := 0; i < h.numElts; i++ {
		slot, ok := h.index.Search(h.keyBytes(h.pairs[i].e))
		if !ok {
			return fmt.Errorf("element at slot %d missing from side-index", i)
		}
		if slot != i {
			return fmt.Errorf("side-index maps slot %d's element to slot %d", i, slot)
		}
	}
	if li, ok := h.index.(interface{ Len() int }); ok {
		if li.Len() != h.numElts {
			return fmt.Errorf("side-index has %d keys, want %d resident elements", li.Len(), h.numElts)
		}
	}
	return nil
}
