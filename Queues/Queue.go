package Queues

// Queue is a first in first out container. Pop on an empty Queue returns
// *EmptyQueueError; Peek returns the zero value.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the buffer to the current size.
	Shrink()
	//Clear the queue, keeping the buffer.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty"
}
