package order

import (
	"fmt"
	"strings"

	"printshop/internal/pkg/errs"
)

// Status represents the fulfillment state of a print order.
//
// State transitions:
//
//	Pending ──> Processing ──> Printing ──> PostProcessing ──> Completed
//	   ^            │              │                              ^
//	   └────────────┘              └──────────────────────────────┘
//	 (sent back to the queue)        (no finishing required)
//
// Completed is final. The wire names are lower case ("post-processing" included)
// and are what orders.txt stores.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Processing
	Printing
	PostProcessing
	Completed
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Processing:     "processing",
	Printing:       "printing",
	PostProcessing: "post-processing",
	Completed:      "completed",
}

// allowedTransitions lists every legal next status per current status.
var allowedTransitions = map[Status][]Status{
	Pending:        {Processing},
	Processing:     {Printing, Pending},
	Printing:       {PostProcessing, Completed},
	PostProcessing: {Completed},
	Completed:      {},
}

// ParseStatus converts a wire name into a Status. Matching ignores case and
// surrounding spaces, and accepts "post_processing" and "postprocessing" as aliases.
func ParseStatus(raw string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "post_processing", "postprocessing":
		name = statusNames[PostProcessing]
	}

	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", raw),
	)
}

// Validate returns an error for Unknown and for values outside the enum.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition table allows it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}

	return next, nil
}

// IsAwaitingFulfillment reports whether an order in this status still belongs in
// the print queue. Legacy files without an explicit queue are rebuilt from it.
func (s Status) IsAwaitingFulfillment() bool {
	return s == Pending || s == Processing
}
