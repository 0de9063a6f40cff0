package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrGetQueueQueryIsNotConstructed = errors.New(
	"GetQueueQuery must be created via NewGetQueueQuery constructor",
)

// GetQueueQuery lists the print queue, head first, without removing anything.
type GetQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetQueueQuery() GetQueueQuery {
	return GetQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}
