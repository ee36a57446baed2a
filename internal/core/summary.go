package core

import "time"

// TrendMonths is the number of trailing calendar months in the trend
// dataset, current month included.
const TrendMonths = 6

type (
	// Summary is the dashboard headline figures. Monthly values cover the
	// calendar month of the evaluation clock; task counts and the payment
	// total are all-time.
	Summary struct {
		MonthlyIncome   Amount
		MonthlyExpenses Amount
		NetBalance      Amount
		TotalTasks      int
		PendingTasks    int
		CompletedTasks  int
		TotalPayments   Amount
	}

	// Trend is the income/expense chart dataset: one point per trailing
	// calendar month, oldest first, current month last.
	Trend struct {
		Labels  []string
		Income  []Amount
		Expense []Amount
	}

	// PaymentBreakdown is the payment status chart dataset over direct
	// payments: what has been received versus what is still outstanding.
	PaymentBreakdown struct {
		Received Amount
		Pending  Amount
	}
)

// Summarize recomputes the dashboard figures from full collection
// snapshots. There is no incremental update path: collections are small
// and every mutation triggers a fresh pass.
func Summarize(now time.Time, incomes []Income, expenses []Expense, orders []Order, payments []Payment) Summary {
	var s Summary
	for _, in := range incomes {
		if in.Date.SameMonth(now) {
			s.MonthlyIncome = s.MonthlyIncome.Add(in.Amount)
		}
	}
	for _, ex := range expenses {
		if ex.Date.SameMonth(now) {
			s.MonthlyExpenses = s.MonthlyExpenses.Add(ex.Amount)
		}
	}
	s.NetBalance = s.MonthlyIncome.Sub(s.MonthlyExpenses)

	s.TotalTasks = len(orders)
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			s.PendingTasks++
		case StatusCompleted:
			s.CompletedTasks++
		}
	}

	// Advance records carry no amount of their own and stay out of the
	// total.
	for _, p := range payments {
		if p.Kind == PaymentDirect {
			s.TotalPayments = s.TotalPayments.Add(p.Amount)
		}
	}
	return s
}

// TrendSeries sums income and expense amounts per trailing calendar month.
// Month stepping is anchored to the first of the month so end-of-month
// evaluation dates cannot skip short months.
func TrendSeries(now time.Time, incomes []Income, expenses []Expense) Trend {
	t := Trend{
		Labels:  make([]string, 0, TrendMonths),
		Income:  make([]Amount, 0, TrendMonths),
		Expense: make([]Amount, 0, TrendMonths),
	}
	for i := TrendMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		t.Labels = append(t.Labels, month.Format("Jan 2006"))

		var income, expense Amount
		for _, in := range incomes {
			if in.Date.SameMonth(month) {
				income = income.Add(in.Amount)
			}
		}
		for _, ex := range expenses {
			if ex.Date.SameMonth(month) {
				expense = expense.Add(ex.Amount)
			}
		}
		t.Income = append(t.Income, income)
		t.Expense = append(t.Expense, expense)
	}
	return t
}

// BreakdownPayments totals received and outstanding money over direct
// payments. Advance records are excluded: their state is derived per order,
// not per payment entry.
func BreakdownPayments(payments []Payment) PaymentBreakdown {
	var b PaymentBreakdown
	for _, p := range payments {
		if p.Kind != PaymentDirect {
			continue
		}
		b.Received = b.Received.Add(p.Received)
		if p.Received.LessThan(p.Amount) {
			b.Pending = b.Pending.Add(p.Amount.Sub(p.Received))
		}
	}
	return b
}
