package indexheap_test

import (
	"fmt"

	"indexheap.dev"
)

func Example() {
	h, err := indexheap.New[int, string](
		func(a, b int) int { return a - b },
		func(e string) []byte { return []byte(e) },
		nil,
	)
	if err != nil {
		panic(err)
	}

	h.Push(5, "urgent")
	h.Push(20, "low")
	h.Push(10, "medium")

	// decrease-key: "low" just became urgent.
	h.Update(1, "low")

	for h.Len() > 0 {
		p, e, _ := h.Pop()
		fmt.Println(p, e)
	}
	// Output:
	// 1 low
	// 5 urgent
	// 10 medium
}
