// Package services wires the record collections together and implements
// the flows that span more than one of them.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ledgerdesk/internal/core"
	"ledgerdesk/internal/store"
)

// Ledger owns the four record collections, the settings registry, and the
// theme flag. It is the single entry point the HTTP layer talks to.
type Ledger struct {
	Incomes  *store.Collection[core.Income]
	Expenses *store.Collection[core.Expense]
	Orders   *store.Collection[core.Order]
	Payments *store.PaymentStore
	Settings *store.Settings
	Theme    *store.Theme
}

// OrderPaymentRow is the per-order payment view: the order joined with its
// advance record (zero when none exists) and the derived pending figure.
type OrderPaymentRow struct {
	OrderID string
	Date    core.Date
	Client  string
	Product string
	Total   core.Amount
	Advance core.Amount
	Pending core.Amount
	Settled bool
}

// Dashboard bundles everything the dashboard page renders.
type Dashboard struct {
	Summary   core.Summary
	Trend     core.Trend
	Breakdown core.PaymentBreakdown
}

// New builds a ledger over the given blob store.
func New(blobs store.Blobs) *Ledger {
	return &Ledger{
		Incomes:  store.NewIncomes(blobs),
		Expenses: store.NewExpenses(blobs),
		Orders:   store.NewOrders(blobs),
		Payments: store.NewPayments(blobs),
		Settings: store.NewSettings(blobs),
		Theme:    store.NewTheme(blobs),
	}
}

// Load reads every collection, list, and flag from the blob store. It runs
// once at startup; afterwards memory is the source of truth.
func (l *Ledger) Load(ctx context.Context) error {
	if err := l.Incomes.Load(ctx); err != nil {
		return fmt.Errorf("load incomes: %w", err)
	}
	if err := l.Expenses.Load(ctx); err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	if err := l.Orders.Load(ctx); err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	if err := l.Payments.Load(ctx); err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	if err := l.Settings.Load(ctx); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := l.Theme.Load(ctx); err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	slog.InfoContext(ctx, "Ledger loaded",
		"incomes", l.Incomes.Len(),
		"expenses", l.Expenses.Len(),
		"orders", l.Orders.Len(),
		"payments", l.Payments.Len())
	return nil
}

// UpdateAdvance records a new advance amount against an order. The amount
// must stay within [0, order total]; out-of-range input is rejected with
// core.ErrAdvanceOutOfRange and no state changes.
func (l *Ledger) UpdateAdvance(ctx context.Context, orderID string, advance core.Amount) (OrderPaymentRow, error) {
	order, ok := l.Orders.Get(orderID)
	if !ok {
		return OrderPaymentRow{}, fmt.Errorf("update advance for order %s: %w", orderID, core.ErrUnknownOrder)
	}
	if advance.IsNegative() || advance.GreaterThan(order.Total) {
		return OrderPaymentRow{}, core.ErrAdvanceOutOfRange
	}

	if _, err := l.Payments.PutAdvance(ctx, orderID, advance); err != nil {
		return OrderPaymentRow{}, err
	}
	slog.InfoContext(ctx, "Advance updated",
		"order_id", orderID, "advance", advance.Format())
	return l.paymentRow(order), nil
}

// OrderPayments derives the payment table: one row per order, joined with
// its advance record by linear scan.
func (l *Ledger) OrderPayments() []OrderPaymentRow {
	orders := l.Orders.List()
	rows := make([]OrderPaymentRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, l.paymentRow(order))
	}
	return rows
}

func (l *Ledger) paymentRow(order core.Order) OrderPaymentRow {
	advance := l.Payments.AdvanceFor(order.ID)
	return OrderPaymentRow{
		OrderID: order.ID,
		Date:    order.Date,
		Client:  order.Client,
		Product: order.Product,
		Total:   order.Total,
		Advance: advance,
		Pending: order.Total.Sub(advance),
		Settled: core.AdvanceSettled(order.Total, advance),
	}
}

// DashboardAt recomputes the full dashboard snapshot for the given clock.
func (l *Ledger) DashboardAt(now time.Time) Dashboard {
	incomes := l.Incomes.List()
	expenses := l.Expenses.List()
	payments := l.Payments.List()
	return Dashboard{
		Summary:   core.Summarize(now, incomes, expenses, l.Orders.List(), payments),
		Trend:     core.TrendSeries(now, incomes, expenses),
		Breakdown: core.BreakdownPayments(payments),
	}
}
