package outcome

// All runs each step in order while the outcome so far is a Success.  It returns Failure as soon as a step fails
// and the remaining steps are not called.  All with no steps is a Success.
func All(steps ...func() Outcome) Outcome {
	res := Success
	for _, step := range steps {
		res = res.AndThen(step)
		if res.IsFailure() {
			return Failure
		}
	}
	return res
}

// Any runs each step in order while the outcome so far is a Failure.  It returns Success as soon as a step succeeds
// and the remaining steps are not called.  Any with no steps is a Failure.
func Any(steps ...func() Outcome) Outcome {
	res := Failure
	for _, step := range steps {
		res = res.OrElse(step)
		if res.IsSuccess() {
			return Success
		}
	}
	return res
}
