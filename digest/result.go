package digest

// Result is the outcome of a fallible hash computation: either a value or
// the error that stopped it.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From tags a Go (value, error) pair. A non-nil err wins over v.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}
