package store

import (
	"context"

	"ledgerdesk/internal/core"

	"github.com/google/uuid"
)

// NewIncomes builds the income collection store.
func NewIncomes(blobs Blobs) *Collection[core.Income] {
	return NewCollection(blobs, SlotIncome,
		func(i core.Income) string { return i.ID },
		func(i *core.Income, id string) { i.ID = id })
}

// NewExpenses builds the expense collection store.
func NewExpenses(blobs Blobs) *Collection[core.Expense] {
	return NewCollection(blobs, SlotExpense,
		func(e core.Expense) string { return e.ID },
		func(e *core.Expense, id string) { e.ID = id })
}

// NewOrders builds the order collection store.
func NewOrders(blobs Blobs) *Collection[core.Order] {
	return NewCollection(blobs, SlotOrders,
		func(o core.Order) string { return o.ID },
		func(o *core.Order, id string) { o.ID = id })
}

// PaymentStore extends the payment collection with the advance lookups
// keyed on OrderID. That is a secondary index by linear scan: collections
// stay small enough that nothing faster is warranted.
type PaymentStore struct {
	*Collection[core.Payment]
}

// NewPayments builds the payment collection store.
func NewPayments(blobs Blobs) *PaymentStore {
	return &PaymentStore{Collection: NewCollection(blobs, SlotPayment,
		func(p core.Payment) string { return p.ID },
		func(p *core.Payment, id string) { p.ID = id })}
}

// AdvanceFor returns the advance amount tracked for an order. A missing
// record means no advance has been taken yet.
func (s *PaymentStore) AdvanceFor(orderID string) core.Amount {
	for _, p := range s.List() {
		if p.Kind == core.PaymentAdvance && p.OrderID == orderID {
			return p.Advance
		}
	}
	return core.Amount{}
}

// PutAdvance updates the advance record for an order in place, or creates
// one when the order has none. The upsert is keyed on OrderID, not the
// record's own id.
func (s *PaymentStore) PutAdvance(ctx context.Context, orderID string, advance core.Amount) (core.Payment, error) {
	for _, p := range s.List() {
		if p.Kind == core.PaymentAdvance && p.OrderID == orderID {
			p.Advance = advance
			return s.Upsert(ctx, p)
		}
	}
	return s.Upsert(ctx, core.NewOrderAdvance(uuid.NewString(), orderID, advance))
}
