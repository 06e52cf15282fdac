package indexheap

import "indexheap.dev/internal/hashtable"

// Index is the capability bundle the heap consumes to maintain its
// element -> slot side-index: insert/search/remove/free, as a Go interface
// rather than a C struct of function pointers; construction happens
// outside the interface, in newDefaultIndex or the caller of WithIndex (spec §6,
// "Implementations should model this as a small polymorphic
// interface/trait/virtual-call table"). This lets Heap be instantiated
// over alternative side-index implementations without source changes.
type Index interface {
	Insert(key []byte, value int)
	Search(key []byte) (int, bool)
	Remove(key []byte) (int, bool)
	Free()
}

// newDefaultIndex builds the heap's default side-index: a chained hash
// table sized by the heap's MinNum/load-factor options. The heap always
// calls it with value-size = one int (an inline slot index; free_value is
// never set, matching spec §6's "value_size = sizeof(index_word),
// free_value = null (indices are inline)").
func newDefaultIndex(o options) Index {
	return hashtable.NewTable[int](hashtable.Config[int]{
		MinNum:    o.minNum,
		AlphaN:    o.alphaN,
		LogAlphaD: o.logAlphaD,
		OnRehash: func(oldCount, newCount int) {
			o.metricsCollector.RecordRehash(newCount)
			if o.growLimiter == nil || o.growLimiter.Allow() {
				o.logger.LogRehash(oldCount, newCount)
			}
		},
	})
}
