package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// LoadStateCommandHandler restores a saved snapshot. When nothing was saved
// the current state is kept. After a load the ID source is advanced past every
// restored order so new submissions never reuse an ID.
type LoadStateCommandHandler struct {
	store ports.OrderStore
	repo  ports.StateRepository
	ids   OrderIDSource
}

func NewLoadStateCommandHandler(
	store ports.OrderStore,
	repo ports.StateRepository,
	ids OrderIDSource,
) *LoadStateCommandHandler {
	return &LoadStateCommandHandler{store: store, repo: repo, ids: ids}
}

func (h *LoadStateCommandHandler) Handle(ctx context.Context, cmd LoadStateCommand) (ports.LoadSummary, error) {
	if err := cmd.Validate(); err != nil {
		return ports.LoadSummary{}, err
	}

	snapshot, summary, err := h.repo.Load(ctx)
	if err != nil {
		return ports.LoadSummary{}, err
	}
	if summary.NoSavedState {
		return summary, nil
	}

	for _, o := range snapshot.Orders {
		h.ids.Observe(o.ID())
	}

	dropped := h.store.Restore(snapshot)
	summary.QueueDropped += dropped
	summary.Queued -= dropped

	return summary, nil
}
