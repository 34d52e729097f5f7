package zip

import (
	"fmt"

	"github.com/kbukum/zipkit/iterator"
)

// store writes v through a slot iterator. Slots that cannot be written to
// (computed or read-only iterators) panic.
func store[T any](slot int, it any, v T) {
	w, ok := it.(iterator.Writer[T])
	if !ok {
		panic(fmt.Sprintf("zip: slot %d (%T) is not writable", slot, it))
	}
	w.Set(v)
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
