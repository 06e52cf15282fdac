package indexheap

import (
	"fmt"
	"time"
)

// pair is one (priority, element) slot in the heap array.
type pair[P any, E any] struct {
	p P
	e E
}

// Heap is a generic indexed minimum-priority heap. P is the priority type,
// compared via the cmpPty callback supplied to New; E is the element type,
// identified by the byte pattern its keyBytes callback returns.
//
// Per spec §9, two elements are "the same" iff keyBytes returns byte-equal
// slices for them, not iff they are Go-equal — this lets the heap work
// without requiring E to be comparable.
type Heap[P any, E any] struct {
	pairs    []pair[P, E]
	numElts  int
	countMax int
	cmpPty   func(a, b P) int
	keyBytes func(e E) []byte
	freeElt  func(e E)
	index    Index
	opts     options
	poison   error
}

// New creates an empty heap. cmpPty must be a total order on P, returning
// negative/zero/positive like strings.Compare. keyBytes must return the
// byte pattern identifying e; pushing two elements with equal keyBytes is
// undefined, per spec §3. freeElt, if non-nil, is invoked on every element
// still resident at Free.
func New[P any, E any](cmpPty func(a, b P) int, keyBytes func(e E) []byte, freeElt func(e E), optFns ...Option) (*Heap[P, E], error) {
	o := applyOptions(optFns)
	if o.initCount <= 0 {
		return nil, &OverflowError{Op: "init_count must be positive"}
	}
	initCount := o.initCount
	if o.countMax >= 0 && initCount > o.countMax {
		initCount = o.countMax
	}
	idx := o.index
	if idx == nil {
		idx = newDefaultIndex(o)
	}
	return &Heap[P, E]{
		pairs:    make([]pair[P, E], initCount),
		countMax: o.countMax,
		cmpPty:   cmpPty,
		keyBytes: keyBytes,
		freeElt:  freeElt,
		index:    idx,
		opts:     o,
	}, nil
}

// Len returns the number of elements currently resident (num_elts).
func (h *Heap[P, E]) Len() int { return h.numElts }

// Cap returns the current heap array capacity (count).
func (h *Heap[P, E]) Cap() int { return len(h.pairs) }

// checkPoison returns the heap's recorded poison error, if any. Per
// spec §9's Design Notes, once an error is surfaced the heap is
// considered poisoned and every subsequent Push or Update fails the same
// way without touching state.
func (h *Heap[P, E]) checkPoison() error {
	if h.poison != nil {
		return h.poison
	}
	return nil
}

// Push inserts (p, e) into the heap. Pushing an element whose keyBytes
// collides with an already-present element is undefined, per spec §4.2 —
// the caller's duty is to check Search first if duplicates are possible.
func (h *Heap[P, E]) Push(p P, e E) error {
	start := time.Now()
	err := h.push(p, e)
	h.opts.metricsCollector.RecordPush(time.Since(start), err)
	h.opts.logger.LogPush(h.numElts, len(h.pairs), err)
	return err
}

func (h *Heap[P, E]) push(p P, e E) error {
	if err := h.checkPoison(); err != nil {
		return err
	}
	if h.numElts == len(h.pairs) {
		if err := h.grow(); err != nil {
			h.poison = fmt.Errorf("%w: %w", ErrPoisoned, err)
			return h.poison
		}
	}
	slot := h.numElts
	h.pairs[slot] = pair[P, E]{p: p, e: e}
	h.index.Insert(h.keyBytes(e), slot)
	h.numElts++
	h.siftUp(slot)
	return nil
}

// grow doubles the heap array's capacity, clamping to count_max on the
// final step, per spec §4.2's growth rule.
func (h *Heap[P, E]) grow() error {
	oldCount := len(h.pairs)
	if oldCount >= h.countMax {
		return &CapacityError{CountMax: h.countMax}
	}
	newCount := oldCount * 2
	if newCount <= oldCount || newCount > h.countMax {
		newCount = h.countMax
	}
	next := make([]pair[P, E], newCount)
	copy(next, h.pairs[:h.numElts])
	h.pairs = next
	h.opts.metricsCollector.RecordGrow(newCount)
	if h.opts.growLimiter == nil || h.opts.growLimiter.Allow() {
		h.opts.logger.LogGrow(oldCount, newCount)
	}
	return nil
}

// Search returns the priority currently stored for e, if e is present.
// The returned pointer-like value is a copy in Go (unlike the C original's
// interior pointer); callers relying on the aliasing semantics of spec
// §3 ("valid only until the next mutating operation") should instead treat
// the returned P as a snapshot and call Search again after any mutation.
func (h *Heap[P, E]) Search(e E) (P, bool) {
	if h.poison != nil {
		var zero P
		return zero, false
	}
	start := time.Now()
	slot, ok := h.index.Search(h.keyBytes(e))
	h.opts.metricsCollector.RecordSearch(time.Since(start), ok)
	if !ok {
		var zero P
		return zero, false
	}
	return h.pairs[slot].p, true
}

// Update overwrites e's priority with p, then runs sift-up followed by
// sift-down from e's slot — unconditionally, even if p equals e's current
// priority, per spec §4.2 and the Open Question in §9 ("implementers
// should not assume update is skipped on equality"). Calling Update on an
// element absent from the heap is fatal, returning *NotFoundError and
// poisoning the heap, per spec §7.
func (h *Heap[P, E]) Update(p P, e E) error {
	start := time.Now()
	err := h.update(p, e)
	h.opts.metricsCollector.RecordUpdate(time.Since(start), err)
	return err
}

func (h *Heap[P, E]) update(p P, e E) error {
	if err := h.checkPoison(); err != nil {
		return err
	}
	slot, ok := h.index.Search(h.keyBytes(e))
	if !ok {
		h.poison = fmt.Errorf("%w: %w", ErrPoisoned, &NotFoundError{})
		return h.poison
	}
	h.pairs[slot].p = p
	h.siftUp(slot)
	h.siftDown(slot)
	h.opts.logger.LogUpdate(slot, nil)
	return nil
}

// Pop removes and returns the minimum-priority element, using
// swap-then-remove ordering: the root is copied out, slot 0 is swapped
// with the last occupied slot (issuing the paired CHT upserts), the
// element now at the last slot is removed from the side-index, num_elts
// is decremented, and slot 0 is sifted down. This ordering is spec §9's
// resolved Open Question: it keeps the side-index consistent at every
// statement boundary. Pop on an empty heap is a no-op that returns
// (zero, zero, false).
func (h *Heap[P, E]) Pop() (P, E, bool) {
	start := time.Now()
	p, e, ok := h.pop()
	h.opts.metricsCollector.RecordPop(time.Since(start), ok)
	h.opts.logger.LogPop(h.numElts, ok)
	return p, e, ok
}

func (h *Heap[P, E]) pop() (P, E, bool) {
	if h.poison != nil || h.numElts == 0 {
		var zp P
		var ze E
		return zp, ze, false
	}
	root := h.pairs[0]
	last := h.numElts - 1
	h.swap(0, last)
	h.index.Remove(h.keyBytes(h.pairs[last].e))
	h.numElts--
	if h.numElts > 0 {
		h.siftDown(0)
	}
	return root.p, root.e, true
}

// Free invokes freeElt (if provided) on each resident element, then
// releases the priority/element region and the side-index. A freed heap
// must not be reused.
func (h *Heap[P, E]) Free() {
	if h.freeElt != nil {
		for i := 0; i < h.numElts; i++ {
			h.freeElt(h.pairs[i].e)
		}
	}
	h.index.Free()
	h.pairs = nil
	h.numElts = 0
}

func parent(i int) int { return (i - 1) / 2 }

// swap exchanges slots i and j and issues the two compensating CHT
// upserts spec §4.2 requires ("swap... issue two CHT upserts"). A no-op
// when i == j, matching the spec's stated optimization.
func (h *Heap[P, E]) swap(i, j int) {
	if i == j {
		return
	}
	h.pairs[i], h.pairs[j] = h.pairs[j], h.pairs[i]
	h.index.Insert(h.keyBytes(h.pairs[i].e), i)
	h.index.Insert(h.keyBytes(h.pairs[j].e), j)
}

// siftUp repairs heap order upward from i.
func (h *Heap[P, E]) siftUp(i int) {
	for i > 0 {
		pi := parent(i)
		if h.cmpPty(h.pairs[pi].p, h.pairs[i].p) <= 0 {
			break
		}
		h.swap(i, pi)
		i = pi
	}
}

// siftDown repairs heap order downward from i, with left-child-wins
// tie-breaking on equal priorities, per spec §4.2.
func (h *Heap[P, E]) siftDown(i int) {
	for {
		l, r := 2*i+1, 2*i+2
		if l >= h.numElts {
			return
		}
		c := l
		if r < h.numElts && h.cmpPty(h.pairs[l].p, h.pairs[r].p) > 0 {
			c = r
		}
		if h.cmpPty(h.pairs[i].p, h.pairs[c].p) <= 0 {
			return
		}
		h.swap(i, c)
		i = c
	}
}
