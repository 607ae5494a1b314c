// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package either

import (
	"errors"
	"fmt"
)

var (
	// ErrNeitherDefined is returned by New when both inputs are absent.
	ErrNeitherDefined = errors.New("either: requires one value")
	// ErrBothDefined is returned by New when both inputs are present.
	ErrBothDefined = errors.New("either: both values defined")
)

// Either holds exactly one of two typed alternatives. By convention the left
// side carries the error or alternate value and the right side carries the
// primary value. Which side is held is fixed at construction and every
// transformation produces a new value.
type Either[L any, R any] struct {
	isRight bool
	left    L
	right   R
}

// New builds an Either from two possibly-absent inputs, of which exactly one
// must be non-nil. The pointed-to value is copied onto the matching side.
// Both inputs nil fails with ErrNeitherDefined and both non-nil fails with
// ErrBothDefined.
func New[L any, R any](left *L, right *R) (Either[L, R], error) {
	if left == nil && right == nil {
		return Either[L, R]{}, ErrNeitherDefined
	}
	if left != nil && right != nil {
		return Either[L, R]{}, ErrBothDefined
	}
	if left != nil {
		return LeftOf[L, R](*left), nil
	}
	return RightOf[L](*right), nil
}

// LeftOf builds an Either holding the given value on the left side.
func LeftOf[L any, R any](left L) Either[L, R] {
	return Either[L, R]{
		left: left,
	}
}

// RightOf builds an Either holding the given value on the right side.
func RightOf[L any, R any](right R) Either[L, R] {
	return Either[L, R]{
		isRight: true,
		right:   right,
	}
}

// IsLeft reports whether the left side is held.
func (self Either[L, R]) IsLeft() bool {
	return !self.isRight
}

// IsRight reports whether the right side is held.
func (self Either[L, R]) IsRight() bool {
	return self.isRight
}

// Left returns the left value and whether the left side is held.
func (self Either[L, R]) Left() (L, bool) {
	return self.left, !self.isRight
}

// Right returns the right value and whether the right side is held.
func (self Either[L, R]) Right() (R, bool) {
	return self.right, self.isRight
}

// GetOrElse returns the right value if held and def otherwise.
func (self Either[L, R]) GetOrElse(def R) R {
	if !self.isRight {
		return def
	}
	return self.right
}

// GetOrElseGet returns the right value if held. Otherwise it invokes f and
// returns the result. The function is only invoked on a left-holding value.
func (self Either[L, R]) GetOrElseGet(f func() R) R {
	if !self.isRight {
		return f()
	}
	return self.right
}

// GetOrErr returns the right value if held. Otherwise it returns the given
// error exactly as supplied, never wrapped or replaced.
func (self Either[L, R]) GetOrErr(err error) (R, error) {
	if !self.isRight {
		return self.right, err
	}
	return self.right, nil
}

// String renders the Either as "Left(<value>)" or "Right(<value>)" using the
// held value's default formatting.
func (self Either[L, R]) String() string {
	if !self.isRight {
		return fmt.Sprintf("Left(%v)", self.left)
	}
	return fmt.Sprintf("Right(%v)", self.right)
}

// Map applies f to the right value when the right side is held. A
// left-holding value passes through unchanged, re-wrapped against the new
// right type, and f is never invoked.
func Map[L any, R any, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if !e.isRight {
		return LeftOf[L, U](e.left)
	}
	return RightOf[L](f(e.right))
}

// MapLeft applies f to the left value when the left side is held. A
// right-holding value passes through unchanged, re-wrapped against the new
// left type, and f is never invoked.
func MapLeft[L any, R any, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isRight {
		return RightOf[U](e.right)
	}
	return LeftOf[U, R](f(e.left))
}

// FlatMap applies f to the right value when the right side is held and
// returns the resulting Either directly, which may itself hold either side.
// A left-holding value is carried into a new left-holding value, retyped,
// and f is never invoked.
func FlatMap[L any, R any, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return LeftOf[L, U](e.left)
	}
	return f(e.right)
}

// Fold eliminates the Either by invoking exactly one of the two branch
// functions, matching the held side, and returns that branch's result.
func Fold[L any, R any, A any](e Either[L, R], onLeft func(L) A, onRight func(R) A) A {
	if !e.isRight {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
