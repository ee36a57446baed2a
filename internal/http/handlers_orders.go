package http

import (
	"log/slog"
	"net/http"

	"ledgerdesk/internal/core"
)

// orderRequest mirrors the order form. Total is submitted alongside
// quantity and price and stored as-is; the form pre-fills it with their
// product but the stored figure stays independently editable.
type orderRequest struct {
	ID       string      `json:"id"`
	Date     core.Date   `json:"date"`
	Client   string      `json:"client" validate:"required"`
	Product  string      `json:"product" validate:"required"`
	Quantity core.Amount `json:"quantity"`
	Price    core.Amount `json:"price"`
	Total    core.Amount `json:"total"`
	Area     string      `json:"area"`
	Status   string      `json:"status" validate:"required,oneof=pending in-progress completed"`
	Deadline core.Date   `json:"deadline"`
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Orders.List())

	case http.MethodPost:
		var req orderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		saved, err := s.ledger.Orders.Upsert(r.Context(), core.Order{
			ID:       req.ID,
			Date:     req.Date,
			Client:   req.Client,
			Product:  req.Product,
			Quantity: req.Quantity,
			Price:    req.Price,
			Total:    req.Total,
			Area:     req.Area,
			Status:   core.OrderStatus(req.Status),
			Deadline: req.Deadline,
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "Order upsert failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save order")
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := s.ledger.Orders.Remove(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Order delete failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "could not delete order")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}
