package hashtable

// node is the chain-node primitive consumed by the bucket array: a
// doubly-linked list of (key, value) pairs. Grounded in dll.c/dll.h, with
// the circular head-pointer trick dropped — that trick let C splice at an
// arbitrary position in O(1) without a tail pointer; a bucket chain here
// only ever prepends at the head and deletes by node pointer, so a plain
// (non-circular) doubly-linked list with a head pointer is sufficient and
// simpler under Go's GC.
type node[V any] struct {
	key   []byte
	value V
	prev  *node[V]
	next  *node[V]
}

// prepend allocates a new node carrying key and value and inserts it at
// the head of the chain, returning the new head.
func prepend[V any](head *node[V], key []byte, value V) *node[V] {
	n := &node[V]{key: key, value: value, next: head}
	if head != nil {
		head.prev = n
	}
	return n
}

// prependNode relinks an already-allocated node at the head of a chain,
// used by rehashing to move nodes between bucket arrays without
// reallocating them.
func prependNode[V any](head *node[V], n *node[V]) *node[V] {
	n.prev, n.next = nil, head
	if head != nil {
		head.prev = n
	}
	return n
}

// searchKey walks the chain from head looking for a byte-equal key.
func searchKey[V any](head *node[V], key []byte) *node[V] {
	for n := head; n != nil; n = n.next {
		if bytesEqual(n.key, key) {
			return n
		}
	}
	return nil
}

// unlink removes n from the chain rooted at head, returning the (possibly
// updated) head.
func unlink[V any](head *node[V], n *node[V]) *node[V] {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	return head
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
