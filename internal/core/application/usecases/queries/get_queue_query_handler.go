package queries

import (
	"context"

	"printshop/internal/core/ports"
)

type GetQueueQueryHandler struct {
	queue ports.PrintQueue
}

func NewGetQueueQueryHandler(queue ports.PrintQueue) GetQueueQueryHandler {
	return GetQueueQueryHandler{queue: queue}
}

func (h GetQueueQueryHandler) Handle(_ context.Context, query GetQueueQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return newOrderResponses(h.queue.Queued()), nil
}
