package commands

import (
	"context"
	"sync"

	"printshop/internal/core/ports"
)

// SaveStateCommandHandler snapshots the store under its lock and writes the
// snapshot after the lock is released, so submissions are not blocked by disk I/O.
// Saves are serialized so the orders and queue files of one save are never
// interleaved with those of another.
type SaveStateCommandHandler struct {
	mu    sync.Mutex
	store ports.OrderStore
	repo  ports.StateRepository
}

func NewSaveStateCommandHandler(store ports.OrderStore, repo ports.StateRepository) *SaveStateCommandHandler {
	return &SaveStateCommandHandler{store: store, repo: repo}
}

func (h *SaveStateCommandHandler) Handle(ctx context.Context, cmd SaveStateCommand) (ports.SaveSummary, error) {
	if err := cmd.Validate(); err != nil {
		return ports.SaveSummary{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.repo.Save(ctx, h.store.Snapshot())
}
