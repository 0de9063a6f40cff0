package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

var ErrQueueIsEmpty = errors.New("print queue is empty")

type DequeueNextOrderCommandHandler struct {
	queue ports.PrintQueue
}

func NewDequeueNextOrderCommandHandler(queue ports.PrintQueue) *DequeueNextOrderCommandHandler {
	return &DequeueNextOrderCommandHandler{queue: queue}
}

// Handle returns the former head of the queue, or ErrQueueIsEmpty.
func (h *DequeueNextOrderCommandHandler) Handle(_ context.Context, cmd DequeueNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, ok := h.queue.DequeueNext()
	if !ok {
		return nil, ErrQueueIsEmpty
	}
	return o, nil
}
