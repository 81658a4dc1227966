package buffer

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// DefaultCapacity is the backing capacity of a list created with a
// non-positive capacity.
const DefaultCapacity = 7

// growthFactor is the capacity multiplier applied when a list must grow.
const growthFactor = 3

// ErrIndexOutOfRange is wrapped by every *IndexError.
var ErrIndexOutOfRange = errors.New("buffer: index out of range")

// IndexError is the panic value raised when an index or range does not fit
// the logical length of a list.
type IndexError struct {
	Index  int
	Count  int
	Length int
}

func (e *IndexError) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("buffer: range [%d:%d] out of range with length %d", e.Index, e.Index+e.Count, e.Length)
	}
	return fmt.Sprintf("buffer: index %d out of range with length %d", e.Index, e.Length)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Number is the set of element types a List can hold.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// List is a growable list of numbers stored without boxing.
//
// The zero value is an empty list ready to use.
type List[T Number] struct {
	data   []T // len(data) is the capacity
	length int
}

// Ints is a growable list of int32 values.
type Ints = List[int32]

// Floats is a growable list of float32 values.
type Floats = List[float32]

// Doubles is a growable list of float64 values.
type Doubles = List[float64]

// New creates a list with the given backing capacity.
// A non-positive capacity selects DefaultCapacity.
func New[T Number](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[T]{data: make([]T, capacity)}
}

// Of creates a list holding a copy of values.
func Of[T Number](values ...T) *List[T] {
	l := New[T](len(values))
	l.Add(values...)
	return l
}

// NewInts creates an int32 list with the given capacity.
func NewInts(capacity int) *Ints { return New[int32](capacity) }

// NewFloats creates a float32 list with the given capacity.
func NewFloats(capacity int) *Floats { return New[float32](capacity) }

// NewDoubles creates a float64 list with the given capacity.
func NewDoubles(capacity int) *Doubles { return New[float64](capacity) }

// IntsOf creates an int32 list holding values.
func IntsOf(values ...int32) *Ints { return Of(values...) }

// FloatsOf creates a float32 list holding values.
func FloatsOf(values ...float32) *Floats { return Of(values...) }

// DoublesOf creates a float64 list holding values.
func DoublesOf(values ...float64) *Doubles { return Of(values...) }

// Len returns the logical length.
func (l *List[T]) Len() int {
	return l.length
}

// Cap returns the capacity of the backing storage.
func (l *List[T]) Cap() int {
	return len(l.data)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Ensure guarantees room for count more elements past the current length.
func (l *List[T]) Ensure(count int) {
	need := l.length + count
	if need <= len(l.data) {
		return
	}
	grown := make([]T, max(need, len(l.data)*growthFactor))
	copy(grown, l.data[:l.length])
	l.data = grown
}

// SetLen changes the logical length. Growing exposes zeroed slots.
func (l *List[T]) SetLen(n int) {
	if n < 0 {
		panic(&IndexError{Index: n, Length: l.length})
	}
	if n > l.length {
		l.Ensure(n - l.length)
		clear(l.data[l.length:n])
	}
	l.length = n
}

// Clear resets the length to zero and keeps the backing storage.
func (l *List[T]) Clear() {
	l.length = 0
}

// Add appends values.
func (l *List[T]) Add(values ...T) {
	l.Ensure(len(values))
	copy(l.data[l.length:], values)
	l.length += len(values)
}

// AddList appends every element of other.
func (l *List[T]) AddList(other *List[T]) {
	if other == nil {
		return
	}
	l.Add(other.data[:other.length]...)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() T {
	if l.length == 0 {
		panic(&IndexError{Index: -1, Length: 0})
	}
	l.length--
	return l.data[l.length]
}

// At returns the element at index.
func (l *List[T]) At(index int) T {
	l.checkIndex(index)
	return l.data[index]
}

// Set stores value at index. An index at or past the end extends the list
// to index+1; slots skipped over are zero.
func (l *List[T]) Set(index int, value T) {
	if index < 0 {
		panic(&IndexError{Index: index, Length: l.length})
	}
	if index >= l.length {
		l.SetLen(index + 1)
	}
	l.data[index] = value
}

// InsertAt inserts values before index, shifting later elements right.
func (l *List[T]) InsertAt(index int, values ...T) {
	if index < 0 || index > l.length {
		panic(&IndexError{Index: index, Length: l.length})
	}
	n := len(values)
	if n == 0 {
		return
	}
	l.Ensure(n)
	copy(l.data[index+n:], l.data[index:l.length])
	copy(l.data[index:], values)
	l.length += n
}

// Swap exchanges the elements at a and b.
func (l *List[T]) Swap(a, b int) {
	l.checkIndex(a)
	l.checkIndex(b)
	l.data[a], l.data[b] = l.data[b], l.data[a]
}

// RemoveAt removes the element at index and returns it.
func (l *List[T]) RemoveAt(index int) T {
	return l.RemoveRange(index, 1)
}

// RemoveRange removes count elements starting at index, shifting later
// elements left, and returns the first removed element.
func (l *List[T]) RemoveRange(index, count int) T {
	if index < 0 || index >= l.length || count < 0 || index+count > l.length {
		panic(&IndexError{Index: index, Count: count, Length: l.length})
	}
	out := l.data[index]
	if count > 0 {
		copy(l.data[index:], l.data[index+count:l.length])
		l.length -= count
	}
	return out
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// IndexOf returns the first index of value, or -1.
func (l *List[T]) IndexOf(value T) int {
	for i, v := range l.data[:l.length] {
		if v == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of value, or -1.
func (l *List[T]) LastIndexOf(value T) int {
	for i := l.length - 1; i >= 0; i-- {
		if l.data[i] == value {
			return i
		}
	}
	return -1
}

// Slice returns the live elements without copying.
// The slice is invalidated by any call that grows the list.
func (l *List[T]) Slice() []T {
	return l.data[:l.length:l.length]
}

// ToSlice returns a copy of the elements.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.length)
	copy(out, l.data[:l.length])
	return out
}

// All iterates over index/value pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Equal reports whether both lists hold the same elements in order.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.length != other.length {
		return false
	}
	for i := 0; i < l.length; i++ {
		if l.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String formats the list as [a, b, c].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.Grow(2 + 5*l.length)
	sb.WriteByte('[')
	for i := 0; i < l.length; i++ {
		if i != 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) checkIndex(index int) {
	if index < 0 || index >= l.length {
		panic(&IndexError{Index: index, Length: l.length})
	}
}
