// Package options provides Option, a value that may or may not be present.
package options

import "errors"

var (
	// ErrEmpty is the error reported when MustGet is called on an empty Option
	ErrEmpty = errors.New("option is empty")
)

// Option either holds a value of type T or holds nothing.  The zero value holds nothing.
type Option[T any] struct {
	val T
	ok  bool
}

// Some returns an Option holding val
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, ok: true}
}

// None returns an empty Option
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and true, or the zero value of T and false if the Option is empty
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// GetOrElse returns the held value, or def if the Option is empty
func (o Option[T]) GetOrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}

// MustGet returns the held value.  It panics with ErrEmpty if the Option is empty.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(ErrEmpty)
	}
	return o.val
}
