// Package chflow holds channel helpers that give up when a context is done.
package chflow

import "context"

// Receive blocks until ch yields a value or ctx is done.
//
// The boolean is false when ctx finished first or ch was closed, in which case
// the returned value is the zero value of T.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Send blocks until v is delivered to ch or ctx is done. It reports whether v
// was delivered.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}
