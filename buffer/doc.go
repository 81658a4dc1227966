// Package buffer provides growable numeric lists that store their elements
// unboxed in a single backing slice.
//
// The lists back vertex streams and index buffers. Appending is amortized
// O(1): when more room is needed the backing slice is reallocated to the
// larger of the exact need and three times the current capacity.
//
// Indexed writes past the logical length extend the list instead of failing;
// skipped slots keep their zero value. Removing elements outside the list
// panics with an *IndexError.
//
// Lists are not safe for concurrent use.
package buffer
