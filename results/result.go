// Package results provides Result, a value paired with the error that may have prevented it.
package results

// Result holds Val when Err is nil.  When Err is set Val is the zero value of R.
type Result[R any] struct {
	Val R
	Err error
}

func New[R any](val R, err error) Result[R] {
	return Result[R]{Val: val, Err: err}
}

func Success[R any](val R) Result[R] {
	return Result[R]{Val: val}
}

func Failure[R any](err error) Result[R] {
	return Result[R]{Err: err}
}

// IsSuccess returns true if the result has no error
func (r Result[R]) IsSuccess() bool {
	return r.Err == nil
}

// Get unpacks the result into a value and an error
func (r Result[R]) Get() (R, error) {
	return r.Val, r.Err
}
