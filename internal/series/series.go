// Package series generates the instants of an ephemeris range.
package series

import (
	"iter"
	"strconv"

	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

// Tolerance absorbs floating-point drift when comparing the last element
// against End.
const Tolerance = 1.0 / (instant.SecondsPerDay * 1000) // 1 ms, in days

// DefaultLimit caps the number of rows a single range may produce.
const DefaultLimit = 1_000_000

// Spec describes start, start+step, ... up to and including End.
type Spec struct {
	Start instant.Instant
	Step  instant.Step
	End   instant.Instant
}

// Validate rejects zero steps and ranges longer than limit rows. A limit of
// zero or less disables the cap.
func (s Spec) Validate(limit int) error {
	if s.Step.IsZero() {
		return skyerr.Configuration("ephemeris step", s.Step.String(), "step must be non-zero")
	}
	if limit > 0 && s.count(limit+1) > limit {
		return skyerr.Configuration("ephemeris range", s.String(),
			"produces more than "+strconv.Itoa(limit)+" rows")
	}
	return nil
}

// All yields the instants of the range in order, each one step after the
// previous. Calendar steps accumulate from the previous element, so a clamped
// day stays clamped: Jan 31, Feb 28, Mar 28, Apr 28. Fixed steps are taken as
// Start plus k steps so float error does not build up. A step pointing away
// from End yields nothing; a zero step yields nothing.
func (s Spec) All() iter.Seq[instant.Instant] {
	return func(yield func(instant.Instant) bool) {
		sign := s.Step.Sign()
		if sign == 0 {
			return
		}
		at := s.Start
		for k := 1; s.within(at, sign); k++ {
			if !yield(at) {
				return
			}
			if s.Step.IsCalendar() {
				at = at.Add(s.Step)
			} else {
				at = s.Start.Add(s.Step.Scale(k))
			}
		}
	}
}

// Count returns the number of instants All yields.
func (s Spec) Count() int { return s.count(-1) }

func (s Spec) count(stopAt int) int {
	n := 0
	for range s.All() {
		n++
		if n == stopAt {
			break
		}
	}
	return n
}

func (s Spec) within(at instant.Instant, sign int) bool {
	if sign > 0 {
		return at.Sub(s.End) <= Tolerance
	}
	return s.End.Sub(at) <= Tolerance
}

func (s Spec) String() string {
	return s.Start.String() + "," + s.Step.String() + "," + s.End.String()
}
