package queries

import (
	"errors"
	"math"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderPriceQueryIsNotConstructed = errors.New(
	"GetOrderPriceQuery must be created via NewGetOrderPriceQuery constructor",
)

// GetOrderPriceQuery prices a registered order against the configuration in
// effect at the time of the call. Prices are never stored, so two calls
// separated by a configuration reload can return different totals.
type GetOrderPriceQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderPriceQuery(orderID order.ID) (GetOrderPriceQuery, error) {
	if orderID <= 0 {
		return GetOrderPriceQuery{}, errs.NewValueIsOutOfRangeError("orderID", int64(orderID), 1, int64(math.MaxInt64))
	}
	return GetOrderPriceQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPriceQueryIsNotConstructed)
}

func (q GetOrderPriceQuery) OrderID() order.ID {
	return q.orderID
}
