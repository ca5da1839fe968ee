package orders

import (
	"time"

	"everbloom/models"
)

// statusRank orders the forward progression. Cancelled sits outside it.
var statusRank = map[string]int{
	models.OrderPending:    0,
	models.OrderPaid:       1,
	models.OrderProcessing: 2,
	models.OrderShipped:    3,
	models.OrderDelivered:  4,
}

// CanTransition reports whether an order may move from one status to
// another. Only forward moves are allowed; cancellation is possible until
// the order ships.
func CanTransition(from, to string) bool {
	if from == models.OrderCancelled || from == models.OrderDelivered {
		return false
	}
	if to == models.OrderCancelled {
		return statusRank[from] < statusRank[models.OrderShipped]
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// TimelineStage is one step of the fulfilment progression shown to the
// customer.
type TimelineStage struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Complete  bool       `json:"complete"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Timeline projects an order onto the fixed placed/processing/shipped/
// delivered progression. A cancelled order has no timeline.
func Timeline(o models.Order) []TimelineStage {
	if o.Status == models.OrderCancelled {
		return nil
	}
	rank := statusRank[o.Status]
	placed := o.CreatedAt
	return []TimelineStage{
		{Key: "placed", Label: "Order Placed", Complete: true, Timestamp: &placed},
		{Key: "processing", Label: "Processing", Complete: rank >= statusRank[models.OrderProcessing]},
		{Key: "shipped", Label: "Shipped", Complete: rank >= statusRank[models.OrderShipped], Timestamp: o.ShippedAt},
		{Key: "delivered", Label: "Delivered", Complete: rank >= statusRank[models.OrderDelivered], Timestamp: o.DeliveredAt},
	}
}
