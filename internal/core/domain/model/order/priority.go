package order

import (
	"fmt"
	"strings"

	"printshop/internal/pkg/errs"
)

// Priority controls rush surcharge eligibility. Normal is the zero value.
type Priority int

const (
	Normal Priority = iota
	Rush
	VIP
)

var priorityNames = map[Priority]string{
	Normal: "normal",
	Rush:   "rush",
	VIP:    "vip",
}

// ParsePriority converts a wire name ("normal", "rush", "vip") into a Priority, ignoring case.
func ParsePriority(raw string) (Priority, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}
	return Normal, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a known priority", raw),
	)
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if n, ok := priorityNames[p]; ok {
		return n
	}
	return "unknown"
}
