package hashtable

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// Config configures a Table's sizing and value ownership.
type Config[V any] struct {
	// MinNum is an expected steady-state key count; the table is
	// pre-sized so rehash is avoided until this many keys are present.
	MinNum uint64

	// AlphaN and LogAlphaD define the load-factor upper bound
	// alpha = AlphaN / 2^LogAlphaD, checked without floating point.
	AlphaN    uint64
	LogAlphaD uint

	// FreeValue, if non-nil, is invoked on each value removed via Delete
	// or still resident at Free.
	FreeValue func(V)

	// OnRehash, if non-nil, is called after every rehash with the old and
	// new bucket counts, letting a caller observe the table's own growth
	// independently of the heap array's.
	OnRehash func(oldCount, newCount int)
}

// Table is a chained hash table mapping variable-width byte keys to
// fixed-type values, sized by division hashing modulo a prime slot count
// drawn from primeSequence. Grounded in ht-divchn-pthread.c (chaining,
// prime growth) combined with ht-muloa.h's integer alpha_n/log_alpha_d
// load-factor parameterization, per the indexed heap's requirement that
// the comparison be overflow-safe integer arithmetic rather than float.
type Table[V any] struct {
	buckets   []*node[V]
	numElts   uint64
	primeIdx  int
	alphaN    uint64
	logAlphaD uint
	freeValue func(V)
	onRehash  func(oldCount, newCount int)
	occupancy *roaring.Bitmap
}

// NewTable constructs an empty table, pre-sized so that inserting MinNum
// keys will not by itself trigger a rehash.
func NewTable[V any](cfg Config[V]) *Table[V] {
	alphaN := cfg.AlphaN
	if alphaN == 0 {
		alphaN = 3
	}
	t := &Table[V]{
		alphaN:    alphaN,
		logAlphaD: cfg.LogAlphaD,
		freeValue: cfg.FreeValue,
		onRehash:  cfg.OnRehash,
		occupancy: roaring.New(),
	}
	t.primeIdx = 0
	for t.primeIdx < len(primeSequence)-1 && exceedsAlpha(cfg.MinNum, primeSequence[t.primeIdx], t.alphaN, t.logAlphaD) {
		t.primeIdx++
	}
	t.buckets = make([]*node[V], primeSequence[t.primeIdx])
	return t
}

// Len returns the number of keys currently stored.
func (t *Table[V]) Len() int { return int(t.numElts) }

// Count returns the current slot (bucket) count.
func (t *Table[V]) Count() int { return len(t.buckets) }

// Occupancy returns a read-only snapshot of which bucket indices are
// currently non-empty, for diagnosing chain-length distribution.
func (t *Table[V]) Occupancy() *roaring.Bitmap {
	return t.occupancy.Clone()
}

func (t *Table[V]) slot(key []byte) uint64 {
	return memMod(key, uint64(len(t.buckets)))
}

// Insert upserts key -> value. If key is already present its value is
// overwritten; otherwise a new chain node is prepended and, if the load
// factor bound would be exceeded, the table is rehashed into the next
// prime.
func (t *Table[V]) Insert(key []byte, value V) {
	ix := t.slot(key)
	if n := searchKey(t.buckets[ix], key); n != nil {
		n.value = value
		return
	}
	t.buckets[ix] = prepend(t.buckets[ix], append([]byte(nil), key...), value)
	t.occupancy.Add(uint32(ix))
	t.numElts++
	if t.primeIdx < len(primeSequence)-1 && exceedsAlpha(t.numElts, uint64(len(t.buckets)), t.alphaN, t.logAlphaD) {
		t.grow()
	}
}

// Search returns the value stored for key, if present.
func (t *Table[V]) Search(key []byte) (V, bool) {
	ix := t.slot(key)
	if n := searchKey(t.buckets[ix], key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Remove extracts and returns the value stored for key, unlinking its
// node without invoking FreeValue. Removing an absent key is a no-op that
// returns (zero, false).
func (t *Table[V]) Remove(key []byte) (V, bool) {
	ix := t.slot(key)
	n := searchKey(t.buckets[ix], key)
	if n == nil {
		var zero V
		return zero, false
	}
	value := n.value
	t.buckets[ix] = unlink(t.buckets[ix], n)
	if t.buckets[ix] == nil {
		t.occupancy.Remove(uint32(ix))
	}
	t.numElts--
	return value, true
}

// Delete drops key and its value, invoking FreeValue on the value in
// place if one was configured. Deleting an absent key is a no-op.
func (t *Table[V]) Delete(key []byte) {
	ix := t.slot(key)
	n := searchKey(t.buckets[ix], key)
	if n == nil {
		return
	}
	if t.freeValue != nil {
		t.freeValue(n.value)
	}
	t.buckets[ix] = unlink(t.buckets[ix], n)
	if t.buckets[ix] == nil {
		t.occupancy.Remove(uint32(ix))
	}
	t.numElts--
}

// Free invokes FreeValue on every resident value, if configured, and
// releases the bucket array.
func (t *Table[V]) Free() {
	if t.freeValue != nil {
		for _, head := range t.buckets {
			for n := head; n != nil; n = n.next {
				t.freeValue(n.value)
			}
		}
	}
	t.buckets = nil
	t.occupancy = roaring.New()
	t.numElts = 0
}

// grow rehashes every node into the next prime bucket count, moving nodes
// rather than reallocating them, per spec's rehash contract.
func (t *Table[V]) grow() {
	oldCount := len(t.buckets)
	for t.primeIdx < len(primeSequence)-1 && exceedsAlpha(t.numElts, primeSequence[t.primeIdx], t.alphaN, t.logAlphaD) {
		t.primeIdx++
	}
	newCount := primeSequence[t.primeIdx]
	prev := t.buckets
	t.buckets = make([]*node[V], newCount)
	t.occupancy = roaring.New()
	for _, head := range prev {
		for n := head; n != nil; {
			next := n.next
			ix := t.slot(n.key)
			t.buckets[ix] = prependNode(t.buckets[ix], n)
			t.occupancy.Add(uint32(ix))
			n = next
		}
	}
	if t.onRehash != nil {
		t.onRehash(oldCount, int(newCount))
	}
}

// exceedsAlpha reports whether numElts / count > alphaN / 2^logAlphaD,
// i.e. numElts * 2^logAlphaD > count * alphaN, evaluated with full
// 128-bit widening so neither side can silently overflow a uint64 before
// comparison. This is the integer inequality spec.md §4.1 mandates in
// place of floating-point division.
func exceedsAlpha(numElts, count, alphaN uint64, logAlphaD uint) bool {
	leftHi, leftLo := bits.Mul64(numElts, uint64(1)<<logAlphaD)
	rightHi, rightLo := bits.Mul64(count, alphaN)
	if leftHi != rightHi {
		return leftHi > rightHi
	}
	return leftLo > rightLo
}
