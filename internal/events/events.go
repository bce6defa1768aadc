package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

// Envelope wraps every published event with routing metadata.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

type OrderCreated struct {
	OrderID string  `json:"order_id"`
	UserID  int64   `json:"user_id"`
	Total   float64 `json:"total"`
}

type OrderStatusChanged struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// NewEnvelope seals a payload into a routable event.
func NewEnvelope(eventType string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Producer:   "storefront",
		Payload:    raw,
	}, nil
}

func OrderCreatedEvent(order *model.Order) (Envelope, error) {
	return NewEnvelope(TypeOrderCreated, OrderCreated{
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
	})
}

func OrderStatusChangedEvent(order *model.Order) (Envelope, error) {
	return NewEnvelope(TypeOrderStatusChanged, OrderStatusChanged{
		OrderID:       order.ID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	})
}
