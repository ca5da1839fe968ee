package orders

import (
	"testing"
	"time"

	"everbloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(models.OrderPending, models.OrderPaid))
	assert.True(t, CanTransition(models.OrderPending, models.OrderProcessing))
	assert.True(t, CanTransition(models.OrderPaid, models.OrderShipped))
	assert.True(t, CanTransition(models.OrderShipped, models.OrderDelivered))

	assert.False(t, CanTransition(models.OrderProcessing, models.OrderPending))
	assert.False(t, CanTransition(models.OrderShipped, models.OrderProcessing))
	assert.False(t, CanTransition(models.OrderPaid, models.OrderPaid))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, CanTransition(models.OrderPending, models.OrderCancelled))
	assert.True(t, CanTransition(models.OrderPaid, models.OrderCancelled))
	assert.True(t, CanTransition(models.OrderProcessing, models.OrderCancelled))

	// shipped orders are on their way; too late to cancel
	assert.False(t, CanTransition(models.OrderShipped, models.OrderCancelled))
	assert.False(t, CanTransition(models.OrderDelivered, models.OrderCancelled))
}

func TestTerminalStates(t *testing.T) {
	for _, to := range []string{
		models.OrderPending, models.OrderPaid, models.OrderProcessing,
		models.OrderShipped, models.OrderDelivered, models.OrderCancelled,
	} {
		assert.Falsef(t, CanTransition(models.OrderCancelled, to), "cancelled -> %s", to)
		assert.Falsef(t, CanTransition(models.OrderDelivered, to), "delivered -> %s", to)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(models.OrderPending, "misplaced"))
	assert.False(t, CanTransition("misplaced", models.OrderShipped))
}

func TestTimelineProgression(t *testing.T) {
	now := time.Now()
	order := models.Order{Status: models.OrderPending, CreatedAt: now}

	stages := Timeline(order)
	require.Len(t, stages, 4)
	assert.True(t, stages[0].Complete, "placed is always complete")
	assert.False(t, stages[1].Complete)
	assert.False(t, stages[2].Complete)
	assert.False(t, stages[3].Complete)

	shipped := now.Add(24 * time.Hour)
	order.Status = models.OrderShipped
	order.ShippedAt = &shipped

	stages = Timeline(order)
	assert.True(t, stages[1].Complete)
	assert.True(t, stages[2].Complete)
	require.NotNil(t, stages[2].Timestamp)
	assert.Equal(t, shipped, *stages[2].Timestamp)
	assert.False(t, stages[3].Complete)

	order.Status = models.OrderDelivered
	stages = Timeline(order)
	for i, st := range stages {
		assert.Truef(t, st.Complete, "stage %d should be complete", i)
	}
}

func TestTimelinePaidCountsAsPlacedOnly(t *testing.T) {
	order := models.Order{Status: models.OrderPaid, CreatedAt: time.Now()}
	stages := Timeline(order)
	assert.True(t, stages[0].Complete)
	assert.False(t, stages[1].Complete)
}

func TestTimelineSuppressedWhenCancelled(t *testing.T) {
	order := models.Order{Status: models.OrderCancelled, CreatedAt: time.Now()}
	assert.Nil(t, Timeline(order))
}
