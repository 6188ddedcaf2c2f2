package core

// Ring is a fixed-capacity FIFO history buffer. Appending beyond
// capacity drops the oldest entry; iteration order is arrival order.
// Not safe for concurrent use; callers hold the room lock.
type Ring[T any] struct {
	capacity int
	items    []T
}

func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{capacity: capacity, items: make([]T, 0, capacity)}
}

func (r *Ring[T]) Append(v T) {
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items[len(r.items)-1] = v
		return
	}
	r.items = append(r.items, v)
}

func (r *Ring[T]) Len() int { return len(r.items) }

// Items returns a copy of the buffer, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Tail returns a copy of the most recent n entries, oldest first.
func (r *Ring[T]) Tail(n int) []T {
	if n > len(r.items) {
		n = len(r.items)
	}
	out := make([]T, n)
	copy(out, r.items[len(r.items)-n:])
	return out
}
