package status

import "go.uber.org/multierr"

// Diagnostics aggregates every problem a validation pass found, instead of
// only the first. It never affects pipeline control flow: Status retains
// first-error-wins semantics; Diagnostics is an informational side channel
// for callers that opt in via a collect-all-problems setting. Modeled on the
// multierr.Combine aggregation style used throughout viamrobotics/rdk for
// independent, non-short-circuiting failures.
type Diagnostics struct {
	err error
}

// Add appends one problem. A nil status (Ok) is a no-op.
func (d *Diagnostics) Add(s Status) {
	if s.IsOK() {
		return
	}
	d.err = multierr.Append(d.err, s)
}

// Len reports how many problems have been recorded.
func (d *Diagnostics) Len() int {
	return len(multierr.Errors(d.err))
}

// Problems returns every recorded Status in the order Add was called.
func (d *Diagnostics) Problems() []Status {
	errs := multierr.Errors(d.err)
	out := make([]Status, 0, len(errs))
	for _, e := range errs {
		if s, ok := e.(Status); ok {
			out = append(out, s)
		}
	}
	return out
}

// Err returns the combined multierr.Error, or nil if no problems were added.
func (d *Diagnostics) Err() error {
	return d.err
}
