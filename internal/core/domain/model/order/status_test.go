package order_test

import (
	"fmt"
	"testing"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Printing))
		assert.Equal(t, 4, int(order.PostProcessing))
		assert.Equal(t, 5, int(order.Completed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate known statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Processing, order.Printing, order.PostProcessing, order.Completed,
		} {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	testCases := []struct {
		status order.Status
		name   string
	}{
		{order.Pending, "pending"},
		{order.Processing, "processing"},
		{order.Printing, "printing"},
		{order.PostProcessing, "post-processing"},
		{order.Completed, "completed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.status.String())

			parsed, err := order.ParseStatus(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("should ignore case and accept post processing aliases", func(t *testing.T) {
		for _, raw := range []string{"POST-PROCESSING", "post_processing", " PostProcessing "} {
			parsed, err := order.ParseStatus(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, order.PostProcessing, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"shipped" is not a known status`)
	})

	t.Run("should render invalid values as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow table transitions", func(t *testing.T) {
		allowed := []struct{ from, to order.Status }{
			{order.Pending, order.Processing},
			{order.Processing, order.Printing},
			{order.Processing, order.Pending},
			{order.Printing, order.PostProcessing},
			{order.Printing, order.Completed},
			{order.PostProcessing, order.Completed},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				assert.True(t, tc.from.CanTransitionTo(tc.to))
			})
		}
	})

	t.Run("should reject transitions outside the table", func(t *testing.T) {
		rejected := []struct{ from, to order.Status }{
			{order.Pending, order.Printing},
			{order.Pending, order.Completed},
			{order.Printing, order.Pending},
			{order.Completed, order.Pending},
			{order.Completed, order.Completed},
			{order.Unknown, order.Pending},
		}

		for _, tc := range rejected {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not allowed")
				assert.Equal(t, order.Unknown, next)
			})
		}
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status(99))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Helpers(t *testing.T) {
	assert.True(t, order.Completed.IsFinal())
	assert.False(t, order.Printing.IsFinal())

	assert.True(t, order.Pending.IsAwaitingFulfillment())
	assert.True(t, order.Processing.IsAwaitingFulfillment())
	assert.False(t, order.Printing.IsAwaitingFulfillment())
	assert.False(t, order.Completed.IsAwaitingFulfillment())
}

func TestPriority(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, p := range []order.Priority{order.Normal, order.Rush, order.VIP} {
			parsed, err := order.ParsePriority(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})

	t.Run("should ignore case", func(t *testing.T) {
		parsed, err := order.ParsePriority("RUSH")
		require.NoError(t, err)
		assert.Equal(t, order.Rush, parsed)
	})

	t.Run("should reject unknown priorities", func(t *testing.T) {
		_, err := order.ParsePriority("urgent")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		require.Error(t, order.Priority(7).Validate())
		assert.Equal(t, "unknown", order.Priority(7).String())
	})
}
