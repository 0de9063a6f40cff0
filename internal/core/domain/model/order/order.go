package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// rushKeyword in special instructions requests rush priority.
const rushKeyword = "rush"

// Order is a unit of print work submitted by a user against a material.
// It is the aggregate root of the print shop: created once at submission,
// mutated in place by status and priority updates, never deleted except by a
// full reset of the registry.
//
// User and material are denormalized snapshots copied at submission time, so
// later edits in the catalog do not change existing orders.
type Order struct {
	id ID

	user     UserSnapshot
	material MaterialSnapshot

	// dimensions is free text such as "20x20x10mm"; it is parsed only for estimates.
	dimensions string

	quantity            int
	specialInstructions string

	status   Status
	priority Priority

	estimatedPrintHours float64

	isConstructed bool
}

// NewOrder creates a Pending, Normal priority order.
//
// Quantity and dimensions are not validated here: submission rejects bad input
// before an order is built, and SetQuantity intentionally accepts any value.
//
// Example:
//
//	user := order.NewUserSnapshot("maria", "maria@example.com", order.RoleVIP)
//	pla := order.NewMaterialSnapshot("PLA", decimal.RequireFromString("0.05"), 210, "white")
//	o, err := order.NewOrder(ids.Next(), user, pla, "20x20x10mm", 2, "", 0.8)
func NewOrder(
	id ID,
	user UserSnapshot,
	material MaterialSnapshot,
	dimensions string,
	quantity int,
	specialInstructions string,
	estimatedPrintHours float64,
) (*Order, error) {
	o := &Order{
		user:                user,
		material:            material,
		dimensions:          dimensions,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		status:              Pending,
		priority:            Normal,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.SetEstimatedPrintHours(estimatedPrintHours),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state, including its status and priority.
func RestoreOrder(
	id ID,
	user UserSnapshot,
	material MaterialSnapshot,
	dimensions string,
	quantity int,
	specialInstructions string,
	status Status,
	priority Priority,
	estimatedPrintHours float64,
) (*Order, error) {
	o, err := NewOrder(id, user, material, dimensions, quantity, specialInstructions, estimatedPrintHours)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), priority.Validate()); err != nil {
		return nil, err
	}

	o.status = status
	o.priority = priority
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() ID                       { return o.id }
func (o *Order) User() UserSnapshot           { return o.user }
func (o *Order) Material() MaterialSnapshot   { return o.material }
func (o *Order) Dimensions() string           { return o.dimensions }
func (o *Order) Quantity() int                { return o.quantity }
func (o *Order) SpecialInstructions() string  { return o.specialInstructions }
func (o *Order) Status() Status               { return o.status }
func (o *Order) Priority() Priority           { return o.priority }
func (o *Order) EstimatedPrintHours() float64 { return o.estimatedPrintHours }

// RequestsRush reports whether the special instructions mention "rush" in any letter case.
func (o *Order) RequestsRush() bool {
	return strings.Contains(strings.ToLower(o.specialInstructions), rushKeyword)
}

// ChangeStatus moves the order along the transition table and rejects anything else.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateStatus is the loose, table-free update kept for compatibility with
// tools that set statuses directly. It accepts any known status name and
// reports whether the order changed.
func (o *Order) UpdateStatus(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	s, err := ParseStatus(raw)
	if err != nil {
		return false
	}

	o.status = s
	return true
}

// SetPriority accepts Normal, Rush or VIP.
func (o *Order) SetPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	return nil
}

// SetQuantity does not bound the value; callers validate before submission.
func (o *Order) SetQuantity(quantity int) {
	o.quantity = quantity
}

// SetEstimatedPrintHours rejects negative, NaN and infinite values.
func (o *Order) SetEstimatedPrintHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated print hours is invalid",
			fmt.Errorf("%v is not a finite non-negative number", hours),
		)
	}
	o.estimatedPrintHours = hours
	return nil
}

// Clone returns an independent copy. Snapshots are values, so a shallow copy is enough.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (o *Order) setID(id ID) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", int64(id), 1, int64(math.MaxInt64))
	}
	o.id = id
	return nil
}
