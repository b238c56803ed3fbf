package bookstore

// Outcome is the result of a "safe" store operation: either a value or an
// error, never both. Check IsOK before reading Value.
type Outcome[T any] struct {
	ok    bool
	value T
	err   error
}

// Success wraps a value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{ok: true, value: value}
}

// Failure wraps an error.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// IsOK reports whether the outcome carries a value.
func (o Outcome[T]) IsOK() bool {
	return o.ok
}

// Value returns the payload of a successful outcome and the zero value
// otherwise.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the error of a failed outcome and nil otherwise.
func (o Outcome[T]) Err() error {
	return o.err
}

// Unwrap returns the payload and error together.
func (o Outcome[T]) Unwrap() (T, error) {
	return o.value, o.err
}
