package optional

import "fmt"

type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a possibly-absent value into an Optional. A nil pointer
// produces None. Any non-nil pointer produces Some of the pointed-to value,
// including pointers to zero values.
func FromPtr[T any](v *T) Optional[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// Get returns the contained value and whether it is present.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

// GetOrElse returns the contained value if present and def otherwise.
func (self Optional[T]) GetOrElse(def T) T {
	if !self.present {
		return def
	}
	return self.value
}

// GetOrElseGet returns the contained value if present. Otherwise it invokes
// f and returns the result. The function is only invoked on absence.
func (self Optional[T]) GetOrElseGet(f func() T) T {
	if !self.present {
		return f()
	}
	return self.value
}

// GetOrErr returns the contained value if present. Otherwise it returns the
// given error exactly as supplied, never wrapped or replaced.
func (self Optional[T]) GetOrErr(err error) (T, error) {
	if !self.present {
		return self.value, err
	}
	return self.value, nil
}

// Ptr returns a pointer to a copy of the contained value, or nil when the
// Optional is empty. The pointer never aliases internal state.
func (self Optional[T]) Ptr() *T {
	if !self.present {
		return nil
	}
	return &self.value
}

// String renders the Optional as "Some(<value>)" or "None" for diagnostics.
func (self Optional[T]) String() string {
	if !self.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", self.value)
}

// Map applies f to the contained value and wraps the result in a new
// Optional. When the input is empty the output is empty and f is never
// invoked. A transform that can itself produce an empty result is expressed
// with FlatMap.
func Map[T any, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the contained value and returns the resulting
// Optional directly, without a second layer of wrapping. When the input is
// empty the output is empty and f is never invoked.
func FlatMap[T any, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}
