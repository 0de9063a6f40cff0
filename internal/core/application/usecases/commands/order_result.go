package commands

import (
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
)

// RejectReason explains why a submission did not produce an order.
type RejectReason int

const (
	NotRejected RejectReason = iota
	UserNotFound
	MaterialNotFound
	DimensionsRequired
	QuantityNotPositive
	QuantityExceedsLimit
	InsufficientStock
	OrderValueExceedsLimit
)

var rejectReasonNames = map[RejectReason]string{
	NotRejected:            "none",
	UserNotFound:           "user_not_found",
	MaterialNotFound:       "material_not_found",
	DimensionsRequired:     "dimensions_required",
	QuantityNotPositive:    "quantity_not_positive",
	QuantityExceedsLimit:   "quantity_exceeds_limit",
	InsufficientStock:      "insufficient_stock",
	OrderValueExceedsLimit: "order_value_exceeds_limit",
}

func (r RejectReason) String() string {
	if name, ok := rejectReasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// OrderResult is the outcome of a submission: either an accepted order with
// its price at submission time, or a rejection reason with a human readable detail.
type OrderResult struct {
	order  *order.Order
	price  services.PriceBreakdown
	reason RejectReason
	detail string
}

func accepted(o *order.Order, price services.PriceBreakdown) OrderResult {
	return OrderResult{order: o, price: price}
}

func rejected(reason RejectReason, detail string) OrderResult {
	return OrderResult{reason: reason, detail: detail}
}

// Accepted reports whether the order was registered and queued.
func (r OrderResult) Accepted() bool { return r.order != nil }

// Order returns the registered order, or nil when rejected.
func (r OrderResult) Order() *order.Order { return r.order }

// Price returns the quote computed at submission.
func (r OrderResult) Price() services.PriceBreakdown { return r.price }

func (r OrderResult) Reason() RejectReason { return r.reason }
func (r OrderResult) Detail() string       { return r.detail }
