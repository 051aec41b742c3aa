package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status is the lifecycle state of an accepted order. It is a string so
// that values sent by the backend survive unchanged, including ones this
// client does not know.
//
// State transitions:
//
//	pending ──> processing ──> completed
//	   │             │
//	   └─────────────┴──────> failed
type Status string

const (
	// Pending is the status of a freshly accepted order.
	Pending Status = "pending"

	// Processing means fulfillment has started.
	Processing Status = "processing"

	// Completed is terminal: the order was fulfilled.
	Completed Status = "completed"

	// Failed is terminal: fulfillment gave up.
	Failed Status = "failed"
)

// Validate rejects values outside the four known statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Completed, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition can happen.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Class returns the display class for a status, "status-<name>" for the
// four known statuses and "" for anything else.
func (s Status) Class() string {
	if s.Validate() != nil {
		return ""
	}
	return "status-" + string(s)
}

// Start transitions pending -> processing.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// Complete transitions processing -> completed.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Fail transitions any non-terminal status to failed.
func (s Status) Fail() (Status, error) {
	if s != Pending && s != Processing {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return Failed, nil
}
