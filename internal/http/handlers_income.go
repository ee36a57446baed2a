package http

import (
	"log/slog"
	"net/http"

	"ledgerdesk/internal/core"
)

// incomeRequest mirrors the add/edit income form. Amount parses leniently:
// a bad value becomes zero instead of rejecting the record.
type incomeRequest struct {
	ID     string      `json:"id"`
	Date   core.Date   `json:"date"`
	Source string      `json:"source" validate:"required"`
	Amount core.Amount `json:"amount"`
	Notes  string      `json:"notes"`
}

func (s *Server) handleIncomes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Incomes.List())

	case http.MethodPost:
		var req incomeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		saved, err := s.ledger.Incomes.Upsert(r.Context(), core.Income{
			ID:     req.ID,
			Date:   req.Date,
			Source: req.Source,
			Amount: req.Amount,
			Notes:  req.Notes,
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "Income upsert failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save income")
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := s.ledger.Incomes.Remove(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Income delete failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "could not delete income")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}
