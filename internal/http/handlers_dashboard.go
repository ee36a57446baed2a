package http

import (
	"net/http"

	"ledgerdesk/internal/core"
)

// summaryResponse carries the headline figures with money formatted to two
// decimal places. Formatting is display-only; stored amounts keep full
// precision.
type summaryResponse struct {
	MonthlyIncome   string `json:"monthlyIncome"`
	MonthlyExpenses string `json:"monthlyExpenses"`
	NetBalance      string `json:"netBalance"`
	TotalTasks      int    `json:"totalTasks"`
	PendingTasks    int    `json:"pendingTasks"`
	CompletedTasks  int    `json:"completedTasks"`
	TotalPayments   string `json:"totalPayments"`
}

// trendResponse feeds the income/expense line chart: numeric points, one
// per trailing month, oldest first.
type trendResponse struct {
	Labels  []string      `json:"labels"`
	Income  []core.Amount `json:"income"`
	Expense []core.Amount `json:"expense"`
}

// breakdownResponse feeds the two-slice payment status chart.
type breakdownResponse struct {
	Received core.Amount `json:"received"`
	Pending  core.Amount `json:"pending"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	sum := s.ledger.DashboardAt(s.now()).Summary
	writeJSON(w, http.StatusOK, summaryResponse{
		MonthlyIncome:   sum.MonthlyIncome.Format(),
		MonthlyExpenses: sum.MonthlyExpenses.Format(),
		NetBalance:      sum.NetBalance.Format(),
		TotalTasks:      sum.TotalTasks,
		PendingTasks:    sum.PendingTasks,
		CompletedTasks:  sum.CompletedTasks,
		TotalPayments:   sum.TotalPayments.Format(),
	})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	trend := s.ledger.DashboardAt(s.now()).Trend
	writeJSON(w, http.StatusOK, trendResponse{
		Labels:  trend.Labels,
		Income:  trend.Income,
		Expense: trend.Expense,
	})
}

func (s *Server) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	b := s.ledger.DashboardAt(s.now()).Breakdown
	writeJSON(w, http.StatusOK, breakdownResponse{
		Received: b.Received,
		Pending:  b.Pending,
	})
}
