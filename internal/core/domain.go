package core

import (
	"encoding/json"
	"errors"
)

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusCompleted  OrderStatus = "completed"
)

type (
	// OrderStatus is the fulfillment state of an order.
	OrderStatus string

	// Income is a single income entry.
	Income struct {
		ID     string `json:"id"`
		Date   Date   `json:"date"`
		Source string `json:"source"`
		Amount Amount `json:"amount"`
		Notes  string `json:"notes"`
	}

	// Expense is a single expense entry.
	Expense struct {
		ID       string `json:"id"`
		Date     Date   `json:"date"`
		Category string `json:"category"`
		Amount   Amount `json:"amount"`
		Notes    string `json:"notes"`
	}

	// Order is a customer purchase record, the anchor entity for payments.
	// Total is stored independently of Quantity and Price: it is seeded
	// from their product at entry time but stays editable on its own.
	Order struct {
		ID       string      `json:"id"`
		Date     Date        `json:"date"`
		Client   string      `json:"client"`
		Product  string      `json:"product"`
		Quantity Amount      `json:"quantity"`
		Price    Amount      `json:"price"`
		Total    Amount      `json:"total"`
		Area     string      `json:"area"`
		Status   OrderStatus `json:"status"`
		Deadline Date        `json:"deadline"`
	}
)

var (
	// ErrUnknownOrder marks an advance update against an order id that no
	// longer resolves.
	ErrUnknownOrder = errors.New("unknown order")

	// ErrAdvanceOutOfRange marks an advance outside [0, order total].
	ErrAdvanceOutOfRange = errors.New("advance must be between zero and the order total")
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// PaymentKind distinguishes the two record shapes that share the payment
// collection.
type PaymentKind string

const (
	// PaymentDirect is a standalone payment entry.
	PaymentDirect PaymentKind = "direct"
	// PaymentAdvance tracks a partial payment against a specific order.
	PaymentAdvance PaymentKind = "advance"
)

// Payment is a tagged variant: either a direct payment (Client, Product,
// Amount, Received, Type) or an order advance (OrderID, Advance). Kind is
// derived from the serialized shape and never stored; a record carrying an
// orderId is an advance, anything else is direct.
type Payment struct {
	ID   string
	Kind PaymentKind

	// Direct payment fields.
	Client   string
	Product  string
	Amount   Amount
	Received Amount
	Type     string

	// Order advance fields.
	OrderID string
	Advance Amount
}

// NewDirectPayment builds a direct payment entry.
func NewDirectPayment(id, client, product string, amount, received Amount, payType string) Payment {
	return Payment{
		ID:       id,
		Kind:     PaymentDirect,
		Client:   client,
		Product:  product,
		Amount:   amount,
		Received: received,
		Type:     payType,
	}
}

// NewOrderAdvance builds an advance tracker for the given order.
func NewOrderAdvance(id, orderID string, advance Amount) Payment {
	return Payment{
		ID:      id,
		Kind:    PaymentAdvance,
		OrderID: orderID,
		Advance: advance,
	}
}

// Settled reports whether a direct payment is fully received. It is always
// false for advance records, which carry no amount of their own.
func (p Payment) Settled() bool {
	if p.Kind != PaymentDirect {
		return false
	}
	return !p.Received.LessThan(p.Amount)
}

// AdvanceSettled reports whether an order is fully paid through its advance:
// paid when total minus advance leaves nothing pending.
func AdvanceSettled(total, advance Amount) bool {
	return total.Sub(advance).Sign() <= 0
}

type directPaymentJSON struct {
	ID       string `json:"id"`
	Client   string `json:"client"`
	Product  string `json:"product"`
	Amount   Amount `json:"amount"`
	Received Amount `json:"received"`
	Type     string `json:"type"`
}

type orderAdvanceJSON struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Advance Amount `json:"advance"`
}

// MarshalJSON writes only the fields of the active variant, keeping the
// stored document shape self-describing.
func (p Payment) MarshalJSON() ([]byte, error) {
	if p.Kind == PaymentAdvance {
		return json.Marshal(orderAdvanceJSON{ID: p.ID, OrderID: p.OrderID, Advance: p.Advance})
	}
	return json.Marshal(directPaymentJSON{
		ID:       p.ID,
		Client:   p.Client,
		Product:  p.Product,
		Amount:   p.Amount,
		Received: p.Received,
		Type:     p.Type,
	})
}

// UnmarshalJSON derives the variant from the serialized shape.
func (p *Payment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string `json:"id"`
		Client   string `json:"client"`
		Product  string `json:"product"`
		Amount   Amount `json:"amount"`
		Received Amount `json:"received"`
		Type     string `json:"type"`
		OrderID  string `json:"orderId"`
		Advance  Amount `json:"advance"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.OrderID != "" {
		*p = NewOrderAdvance(raw.ID, raw.OrderID, raw.Advance)
		return nil
	}
	*p = NewDirectPayment(raw.ID, raw.Client, raw.Product, raw.Amount, raw.Received, raw.Type)
	return nil
}
