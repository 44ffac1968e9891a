// Package outcome provides Outcome, a value that is either Success or Failure and carries nothing else.
// An Outcome is useful where a step can only succeed or fail and the reason for failure is not interesting to the
// caller.  Outcomes are composed with AndThen and OrElse, which only run the next step when it can change the result.
//
//	res := outcome.FromBool(ok).AndThen(func() outcome.Outcome {
//		return outcome.FromErr(flush())
//	})
package outcome

import (
	"errors"

	"github.com/abevier/outcome/options"
	"github.com/abevier/outcome/results"
)

var (
	// ErrFailure is the error reported for an Outcome that is a Failure
	ErrFailure = errors.New("outcome failure")
)

// Outcome is either Success or Failure.  The zero value is Failure.
// Outcomes are plain values and can be compared with ==.
type Outcome bool

const (
	Success Outcome = true
	Failure Outcome = false
)

// FromBool returns Success if good is true, otherwise Failure
func FromBool(good bool) Outcome {
	return Outcome(good)
}

// FromErr returns Success if err is nil, otherwise Failure
func FromErr(err error) Outcome {
	return err == nil
}

// IsSuccess returns true if the outcome is a Success
func (o Outcome) IsSuccess() bool {
	return o == Success
}

// IsFailure returns true if the outcome is a Failure
func (o Outcome) IsFailure() bool {
	return !o.IsSuccess()
}

// Bool returns true for Success and false for Failure
func (o Outcome) Bool() bool {
	return bool(o)
}

// Err returns nil for Success and ErrFailure for Failure
func (o Outcome) Err() error {
	if o.IsFailure() {
		return ErrFailure
	}
	return nil
}

func (o Outcome) String() string {
	if o.IsSuccess() {
		return "Success"
	}
	return "Failure"
}

// And returns Failure if the outcome is a Failure, otherwise it returns other
func (o Outcome) And(other Outcome) Outcome {
	if o.IsFailure() {
		return Failure
	}
	return other
}

// Or returns Success if the outcome is a Success, otherwise it returns other
func (o Outcome) Or(other Outcome) Outcome {
	if o.IsSuccess() {
		return Success
	}
	return other
}

// AndThen returns Failure if the outcome is a Failure, otherwise it calls f and returns its result.
// f is never called on a Failure.
func (o Outcome) AndThen(f func() Outcome) Outcome {
	if o.IsFailure() {
		return Failure
	}
	return f()
}

// OrElse returns Success if the outcome is a Success, otherwise it calls f and returns its result.
// f is never called on a Success.
func (o Outcome) OrElse(f func() Outcome) Outcome {
	if o.IsSuccess() {
		return Success
	}
	return f()
}

// OrNone converts the outcome into an options.Option, holding val on Success and empty on Failure.
// val is evaluated by the caller in both cases.
func OrNone[T any](o Outcome, val T) options.Option[T] {
	if o.IsSuccess() {
		return options.Some(val)
	}
	return options.None[T]()
}

// OrErr converts the outcome into a results.Result, holding good on Success and err on Failure.
func OrErr[T any](o Outcome, good T, err error) results.Result[T] {
	if o.IsSuccess() {
		return results.Success(good)
	}
	return results.Failure[T](err)
}

// OrPanic returns good if the outcome is a Success.  It panics with ErrFailure on a Failure.
func OrPanic[T any](o Outcome, good T) T {
	if o.IsFailure() {
		panic(ErrFailure)
	}
	return good
}
