package queries

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists registered orders, queued or not, sorted by ID.
//
// Example:
//
//	query, _ := NewGetAllOrdersQuery(order.Unknown) // no filter
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders on record\n", len(orders))
type GetAllOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates the query. Pass order.Unknown to list every
// order, or a valid status to list only orders in that status.
func NewGetAllOrdersQuery(status order.Status) (GetAllOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	return GetAllOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the filter, order.Unknown when unfiltered.
func (q GetAllOrdersQuery) Status() order.Status {
	return q.status
}
