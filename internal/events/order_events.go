package events

import "time"

const OrderLifecycleTopic = "bento.order.lifecycle.v1"

const (
	OrderCreated   = "order.created"
	OrderAmended   = "order.amended"
	OrderCancelled = "order.cancelled"
)

type OrderLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	CompanyID    string    `json:"company_id"`
	DeliveryDate string    `json:"delivery_date"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
