package http

import (
	"log/slog"
	"net/http"

	"ledgerdesk/internal/core"
)

type expenseRequest struct {
	ID       string      `json:"id"`
	Date     core.Date   `json:"date"`
	Category string      `json:"category" validate:"required"`
	Amount   core.Amount `json:"amount"`
	Notes    string      `json:"notes"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Expenses.List())

	case http.MethodPost:
		var req expenseRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		saved, err := s.ledger.Expenses.Upsert(r.Context(), core.Expense{
			ID:       req.ID,
			Date:     req.Date,
			Category: req.Category,
			Amount:   req.Amount,
			Notes:    req.Notes,
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "Expense upsert failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save expense")
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := s.ledger.Expenses.Remove(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Expense delete failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "could not delete expense")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}
