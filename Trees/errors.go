package Trees

import "fmt"

// NotFoundError is returned by Remove when the value isn't in the tree.
type NotFoundError struct {
	Item any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item not in tree: %v", e.Item)
}

// IndexError is the panic value of RangeFind when a position is outside [0, Size()).
type IndexError struct {
	Low, High, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("range [%d, %d] out of bounds for size %d", e.Low, e.High, e.Size)
}
