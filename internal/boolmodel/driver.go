package boolmodel

import (
	"context"
	"time"

	"github.com/crillab/gophersat/solver"
)

// Status is the outcome of one bounded solver check.
type Status int

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

// Check runs prob through gophersat with a wall-clock timeout and
// responsiveness to ctx cancellation. It owns the *solver.Solver for the
// duration of the call and releases its reference on return (gophersat
// exposes no cooperative abort, so a timed-out or cancelled check's
// goroutine is abandoned to finish in the background; its result, once
// computed, is simply never observed).
func Check(ctx context.Context, prob *solver.Problem, timeout time.Duration) (Status, []bool) {
	type result struct {
		status solver.Status
		model  []bool
	}
	done := make(chan result, 1)

	go func() {
		s := solver.New(prob)
		st := s.Solve()
		var model []bool
		if st == solver.Sat {
			model = s.Model()
		}
		done <- result{status: st, model: model}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		switch r.status {
		case solver.Sat:
			return StatusSat, r.model
		case solver.Unsat:
			return StatusUnsat, nil
		default:
			return StatusUnknown, nil
		}
	case <-timer.C:
		return StatusUnknown, nil
	case <-ctx.Done():
		return StatusUnknown, nil
	}
}
