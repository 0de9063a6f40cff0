package commands_test

import (
	"testing"

	"printshop/internal/adapters/out/memory"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should follow the transition table", func(t *testing.T) {
		// Given
		store := memory.NewOrderManager()
		store.Admit(storedOrder(t, 1))
		h := commands.NewUpdateOrderStatusCommandHandler(store)
		cmd, err := commands.NewUpdateOrderStatusCommand(1, "processing", false)
		require.NoError(t, err)

		// When
		updated, err := h.Handle(t.Context(), cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Processing, updated.Status())

		head, ok := store.DequeueNext()
		require.True(t, ok)
		assert.Equal(t, order.Processing, head.Status(), "queued entry sees the change")
	})

	t.Run("should reject a jump outside the table", func(t *testing.T) {
		store := memory.NewOrderManager()
		store.Register(storedOrder(t, 1))
		h := commands.NewUpdateOrderStatusCommandHandler(store)
		cmd, err := commands.NewUpdateOrderStatusCommand(1, "completed", false)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		current, _ := store.GetByID(1)
		assert.Equal(t, order.Pending, current.Status())
	})

	t.Run("force accepts any known status", func(t *testing.T) {
		store := memory.NewOrderManager()
		store.Register(storedOrder(t, 1))
		h := commands.NewUpdateOrderStatusCommandHandler(store)
		cmd, err := commands.NewUpdateOrderStatusCommand(1, "Completed", true)
		require.NoError(t, err)

		updated, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, updated.Status())
	})

	t.Run("force still rejects unknown names", func(t *testing.T) {
		store := memory.NewOrderManager()
		store.Register(storedOrder(t, 1))
		h := commands.NewUpdateOrderStatusCommandHandler(store)
		cmd, err := commands.NewUpdateOrderStatusCommand(1, "shipped", true)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		h := commands.NewUpdateOrderStatusCommandHandler(memory.NewOrderManager())
		cmd, err := commands.NewUpdateOrderStatusCommand(42, "processing", false)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(0, "", false)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderStatusCommandHandler(memory.NewOrderManager()).
		Handle(t.Context(), commands.UpdateOrderStatusCommand{})
	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

func TestSetOrderPriorityCommandHandler_Handle(t *testing.T) {
	t.Run("should change priority", func(t *testing.T) {
		store := memory.NewOrderManager()
		store.Register(storedOrder(t, 1))
		h := commands.NewSetOrderPriorityCommandHandler(store)
		cmd, err := commands.NewSetOrderPriorityCommand(1, order.VIP)
		require.NoError(t, err)

		updated, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.VIP, updated.Priority())
	})

	t.Run("should reject invalid priorities at construction", func(t *testing.T) {
		_, err := commands.NewSetOrderPriorityCommand(1, order.Priority(12))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		h := commands.NewSetOrderPriorityCommandHandler(memory.NewOrderManager())
		cmd, err := commands.NewSetOrderPriorityCommand(7, order.Rush)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDequeueNextOrderCommandHandler_Handle(t *testing.T) {
	store := memory.NewOrderManager()
	for _, id := range []order.ID{101, 102, 103} {
		store.Admit(storedOrder(t, id))
	}
	h := commands.NewDequeueNextOrderCommandHandler(store)
	cmd := commands.NewDequeueNextOrderCommand()

	for _, want := range []order.ID{101, 102, 103} {
		o, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, want, o.ID())
	}

	_, err := h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrQueueIsEmpty)
	assert.Equal(t, 3, store.Count(), "dequeue keeps orders registered")

	_, err = h.Handle(t.Context(), commands.DequeueNextOrderCommand{})
	require.ErrorIs(t, err, commands.ErrDequeueNextOrderCommandIsNotConstructed)
}
