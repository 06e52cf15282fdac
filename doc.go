// Package indexheap provides a generic indexed minimum-priority heap
// backed by a chained hash table side-index. The combination gives three
// operations a plain binary heap cannot offer efficiently: O(1) expected
// membership test, O(1) expected lookup of an element's current priority,
// and O(log n) priority update ("decrease-key" / "increase-key") on an
// element identified by its own value rather than an externally
// maintained handle.
//
// # Quick Start
//
//	h, _ := indexheap.New[int, string](
//	    func(a, b int) int { return a - b },
//	    func(e string) []byte { return []byte(e) },
//	    nil,
//	)
//	h.Push(5, "a")
//	h.Push(1, "b")
//	h.Update(0, "a") // decrease-key
//	p, e, ok := h.Pop() // p=0, e="a", ok=true
//
// # Concurrency
//
// A Heap has no internal synchronization. All operations on a given Heap
// must be externally serialized; Search's returned priority is a
// snapshot, but repeated calls after a mutation are not guaranteed to
// observe a consistent element set mid-mutation.
//
// # Errors
//
// Push and Update can fail fatally (capacity exceeded, update of an absent
// element). Once any of these errors is returned, the Heap is poisoned:
// every subsequent Push or Update returns the same error without touching
// state, and Search and Pop report nothing found. Pop on an empty heap and
// Search misses are not errors — they are reported via the boolean return.
package indexheap
