// Package handle provides integer-handle indirection tables for resources
// owned by a rendering context.
//
// Handles are small positive integers. The zero handle (and any negative
// value) means "no resource". Deleted handles are never reused, so a stale
// handle reliably reports ErrInvalid instead of aliasing a newer resource.
package handle

import "errors"

// ErrInvalid is returned when a handle is zero, negative, unknown or deleted.
var ErrInvalid = errors.New("invalid handle")

// Table maps handles to values of type T.
// Table is not safe for concurrent use; it is owned by a single context.
type Table[T any] struct {
	items map[int]T
	next  int
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		items: make(map[int]T),
		next:  1,
	}
}

// Add stores v and returns its new handle.
func (t *Table[T]) Add(v T) int {
	h := t.next
	t.next++
	t.items[h] = v
	return h
}

// Get returns the value stored under h.
func (t *Table[T]) Get(h int) (T, error) {
	v, ok := t.items[h]
	if !ok || h <= 0 {
		var zero T
		return zero, ErrInvalid
	}
	return v, nil
}

// Set replaces the value stored under an existing handle.
func (t *Table[T]) Set(h int, v T) error {
	if _, ok := t.items[h]; !ok || h <= 0 {
		return ErrInvalid
	}
	t.items[h] = v
	return nil
}

// Delete removes h from the table and returns the removed value.
func (t *Table[T]) Delete(h int) (T, error) {
	v, ok := t.items[h]
	if !ok || h <= 0 {
		var zero T
		return zero, ErrInvalid
	}
	delete(t.items, h)
	return v, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// Each calls fn for every live handle in unspecified order.
func (t *Table[T]) Each(fn func(h int, v T)) {
	for h, v := range t.items {
		fn(h, v)
	}
}

// Clear removes every entry. Handles issued before Clear stay invalid.
func (t *Table[T]) Clear() {
	clear(t.items)
}
