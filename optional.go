// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optional provides a generic container for a value that may or may
// not be present, replacing ad-hoc nil checks with an explicit type.
package optional

import (
	"errors"
	"fmt"
	"reflect"
)

// Optional holds at most one value of type T. The zero value is empty.
// Instances are immutable; every operation returns a new Optional or a
// plain value and never modifies the receiver.
type Optional[T any] struct {
	present bool
	value   T
}

// Empty returns an Optional with no value. Optional is a value type, so an
// empty Optional is a zero-valued struct and allocates nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of returns an Optional wrapping v. Any value of T counts as present,
// including zero values such as 0, false, and "".
func Of[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

// OfNullable returns an Optional wrapping *v, or an empty Optional when v is
// nil. A pointer to a zero value is still present.
func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return Empty[T]()
	}
	return Of(*v)
}

// IsPresent reports whether the Optional holds a value.
func (self Optional[T]) IsPresent() bool {
	return self.present
}

// IsEmpty reports whether the Optional holds no value.
func (self Optional[T]) IsEmpty() bool {
	return !self.present
}

// Get returns the wrapped value, or the zero value of T when empty. Get
// never fails on an empty Optional; use OrElseThrow or MustGet when absence
// should surface as an error.
func (self Optional[T]) Get() T {
	return self.value
}

// MustGet returns the wrapped value and panics when empty.
func (self Optional[T]) MustGet() T {
	if !self.present {
		panic("optional: MustGet on empty Optional")
	}
	return self.value
}

// IfPresent invokes consumer with the wrapped value when present and does
// nothing otherwise.
func (self Optional[T]) IfPresent(consumer func(T)) {
	if self.present {
		consumer(self.value)
	}
}

// Peek invokes consumer like IfPresent but returns the receiver unchanged,
// so side-effect-only steps can sit inside a chain.
func (self Optional[T]) Peek(consumer func(T)) Optional[T] {
	if self.present {
		consumer(self.value)
	}
	return self
}

// Filter returns the receiver when present and predicate accepts the
// wrapped value, otherwise an empty Optional. The predicate is never
// invoked on an empty Optional.
func (self Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if self.present && predicate(self.value) {
		return self
	}
	return Empty[T]()
}

// Map applies mapper to the wrapped value when present. The mapper is never
// invoked on an empty Optional. Mappers producing a different type use the
// package-level Map.
func (self Optional[T]) Map(mapper func(T) T) Optional[T] {
	if !self.present {
		return self
	}
	return Of(mapper(self.value))
}

// FlatMap applies a mapper that itself returns an Optional and returns that
// Optional directly, without an extra wrapping layer. The mapper is never
// invoked on an empty Optional.
func (self Optional[T]) FlatMap(mapper func(T) Optional[T]) Optional[T] {
	if !self.present {
		return self
	}
	return mapper(self.value)
}

// OrElse returns the wrapped value when present, otherwise other.
func (self Optional[T]) OrElse(other T) T {
	if self.present {
		return self.value
	}
	return other
}

// OrElseGet returns the wrapped value when present, otherwise the result of
// invoking supplier. The supplier is never invoked when present.
func (self Optional[T]) OrElseGet(supplier func() T) T {
	if self.present {
		return self.value
	}
	return supplier()
}

// OrElseThrow returns the wrapped value when present. When empty it invokes
// errFactory and returns the produced error alongside the zero value of T.
// The factory is never invoked when present.
func (self Optional[T]) OrElseThrow(errFactory func() error) (T, error) {
	if self.present {
		return self.value, nil
	}
	return self.value, errFactory()
}

// OrElseThrowError is OrElseThrow with an error constructed from message.
func (self Optional[T]) OrElseThrowError(message string) (T, error) {
	if self.present {
		return self.value, nil
	}
	return self.value, errors.New(message)
}

// Equal reports structural equality: two Optionals are equal iff both are
// empty, or both are present and their wrapped values are deeply equal.
func (self Optional[T]) Equal(other Optional[T]) bool {
	if self.present != other.present {
		return false
	}
	if !self.present {
		return true
	}
	return reflect.DeepEqual(self.value, other.value)
}

// Equals reports whether a and b are structurally equal.
func Equals[T any](a Optional[T], b Optional[T]) bool {
	return a.Equal(b)
}

// String renders "Optional[<value>]" when present and "Optional.empty"
// otherwise.
func (self Optional[T]) String() string {
	if !self.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", self.value)
}

// Map applies mapper to the wrapped value of o, producing an Optional of the
// mapper's result type. The mapper is never invoked when o is empty.
func Map[T any, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(mapper(o.value))
}

// FlatMap applies a mapper that itself returns an Optional of another type
// and returns that Optional directly. The mapper is never invoked when o is
// empty.
func FlatMap[T any, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return mapper(o.value)
}
