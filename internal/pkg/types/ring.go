package types

// minRingCapacity is the capacity allocated on the first push into an empty Ring.
const minRingCapacity = 8

// Ring is a growable circular buffer that supports appending at the back and
// evicting from the front without shifting the remaining elements.
//
// Elements live in a single backing array. Once the buffer wraps around, the
// logical sequence is split into two physical segments: the "front" segment,
// running from the head to the end of the array, and the "back" segment,
// starting at index zero. Segments exposes both so callers can binary search
// each one directly.
//
// Ring is not safe for concurrent use.
type Ring[T any] struct {
	buf  []T // backing array, len(buf) is the capacity
	head int // index of the first logical element
	size int // number of stored elements
}

// NewRing creates an empty Ring with room for at least capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Ring[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the number of elements the Ring can hold before growing.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// PushBack appends v after the last element, growing the backing array when full.
func (r *Ring[T]) PushBack(v T) {
	if r.size == len(r.buf) {
		r.grow()
	}

	r.buf[r.physical(r.size)] = v
	r.size++
}

// PopFront removes and returns the first element.
// The boolean is false when the Ring is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	v := r.buf[r.head]
	r.buf[r.head] = zero // release references held by the evicted slot
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	if r.size == 0 {
		r.head = 0
	}

	return v, true
}

// Front returns the first element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	return r.At(0)
}

// Back returns the last element without removing it.
func (r *Ring[T]) Back() (T, bool) {
	return r.At(r.size - 1)
}

// At returns the element at logical position i, where 0 is the front.
// The boolean is false when i is out of range.
func (r *Ring[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.size {
		return zero, false
	}

	return r.buf[r.physical(i)], true
}

// Segments returns the stored elements as two contiguous slices that, read in
// order, yield the logical sequence. The back segment is empty unless the
// buffer has wrapped around.
//
// The slices alias the Ring's storage and are only valid until the next mutation.
func (r *Ring[T]) Segments() (front, back []T) {
	if r.size == 0 {
		return nil, nil
	}

	end := r.head + r.size
	if end <= len(r.buf) {
		return r.buf[r.head:end], nil
	}

	return r.buf[r.head:], r.buf[:end-len(r.buf)]
}

// ToSlice copies the stored elements, front to back, into a new slice.
func (r *Ring[T]) ToSlice() []T {
	front, back := r.Segments()

	out := make([]T, 0, r.size)
	out = append(out, front...)
	return append(out, back...)
}

// physical maps a logical position to an index in the backing array.
func (r *Ring[T]) physical(i int) int {
	return (r.head + i) % len(r.buf)
}

// grow doubles the capacity and lays the elements out contiguously from index zero.
func (r *Ring[T]) grow() {
	newCap := max(len(r.buf)*2, minRingCapacity)

	buf := make([]T, newCap)
	front, back := r.Segments()
	n := copy(buf, front)
	copy(buf[n:], back)

	r.buf = buf
	r.head = 0
}
