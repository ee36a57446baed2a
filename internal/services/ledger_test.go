package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ledgerdesk/internal/core"
)

type memBlobs struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{slots: map[string][]byte{}}
}

func (m *memBlobs) Load(_ context.Context, slot string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.slots[slot]
	return payload, ok, nil
}

func (m *memBlobs) Save(_ context.Context, slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = payload
	return nil
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := New(newMemBlobs())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	return ledger
}

func addOrder(t *testing.T, l *Ledger, total string) core.Order {
	t.Helper()
	order, err := l.Orders.Upsert(context.Background(), core.Order{
		Date:     core.NewDate(2025, 9, 1),
		Client:   "Acme",
		Product:  "Mug",
		Quantity: core.MustAmount("10"),
		Price:    core.MustAmount("10"),
		Total:    core.MustAmount(total),
		Status:   core.StatusPending,
	})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	return order
}

func TestUpdateAdvance(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	order := addOrder(t, ledger, "100.00")

	// Out of range: rejected, nothing changes.
	if _, err := ledger.UpdateAdvance(ctx, order.ID, core.MustAmount("150")); !errors.Is(err, core.ErrAdvanceOutOfRange) {
		t.Fatalf("err = %v, want ErrAdvanceOutOfRange", err)
	}
	if got := ledger.Payments.AdvanceFor(order.ID); got.Format() != "0.00" {
		t.Errorf("advance after rejection = %s, want 0.00", got.Format())
	}
	if _, err := ledger.UpdateAdvance(ctx, order.ID, core.MustAmount("-1")); !errors.Is(err, core.ErrAdvanceOutOfRange) {
		t.Fatalf("negative advance: err = %v, want ErrAdvanceOutOfRange", err)
	}

	// Partial advance.
	row, err := ledger.UpdateAdvance(ctx, order.ID, core.MustAmount("40"))
	if err != nil {
		t.Fatalf("update advance: %v", err)
	}
	if row.Pending.Format() != "60.00" || row.Settled {
		t.Errorf("row = pending %s settled %v, want 60.00 pending", row.Pending.Format(), row.Settled)
	}

	// Full advance settles the order.
	row, err = ledger.UpdateAdvance(ctx, order.ID, core.MustAmount("100"))
	if err != nil {
		t.Fatalf("update advance: %v", err)
	}
	if row.Pending.Format() != "0.00" || !row.Settled {
		t.Errorf("row = pending %s settled %v, want 0.00 settled", row.Pending.Format(), row.Settled)
	}
}

func TestUpdateAdvanceUnknownOrder(t *testing.T) {
	ledger := newTestLedger(t)
	if _, err := ledger.UpdateAdvance(context.Background(), "ghost", core.MustAmount("10")); !errors.Is(err, core.ErrUnknownOrder) {
		t.Fatalf("err = %v, want ErrUnknownOrder", err)
	}
}

func TestOrderPayments(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	paid := addOrder(t, ledger, "50.00")
	open := addOrder(t, ledger, "80.00")

	if _, err := ledger.UpdateAdvance(ctx, paid.ID, core.MustAmount("50")); err != nil {
		t.Fatalf("update advance: %v", err)
	}

	rows := ledger.OrderPayments()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want one per order", len(rows))
	}
	byID := map[string]OrderPaymentRow{}
	for _, row := range rows {
		byID[row.OrderID] = row
	}
	if row := byID[paid.ID]; !row.Settled || row.Pending.Format() != "0.00" {
		t.Errorf("paid order row = %+v, want settled with 0.00 pending", row)
	}
	// No advance record at all: defaults to zero advance.
	if row := byID[open.ID]; row.Settled || row.Advance.Format() != "0.00" || row.Pending.Format() != "80.00" {
		t.Errorf("open order row = %+v, want 0.00 advance and 80.00 pending", row)
	}
}

func TestDashboardAt(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	now := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

	if _, err := ledger.Incomes.Upsert(ctx, core.Income{
		Date: core.NewDate(2025, 9, 2), Source: "Salary", Amount: core.MustAmount("500"),
	}); err != nil {
		t.Fatalf("upsert income: %v", err)
	}
	if _, err := ledger.Expenses.Upsert(ctx, core.Expense{
		Date: core.NewDate(2025, 9, 3), Category: "Food", Amount: core.MustAmount("120"),
	}); err != nil {
		t.Fatalf("upsert expense: %v", err)
	}
	addOrder(t, ledger, "100.00")

	d := ledger.DashboardAt(now)
	if got := d.Summary.NetBalance.Format(); got != "380.00" {
		t.Errorf("net balance = %s, want 380.00", got)
	}
	if d.Summary.TotalTasks != 1 || d.Summary.PendingTasks != 1 {
		t.Errorf("task counts = %d/%d, want 1/1", d.Summary.TotalTasks, d.Summary.PendingTasks)
	}
	if len(d.Trend.Labels) != core.TrendMonths {
		t.Errorf("trend length = %d, want %d", len(d.Trend.Labels), core.TrendMonths)
	}
	if got := d.Trend.Income[core.TrendMonths-1].Format(); got != "500.00" {
		t.Errorf("trend last income point = %s, want 500.00", got)
	}
}
