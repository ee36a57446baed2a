package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ledgerdesk/internal/core"
	"ledgerdesk/internal/services"
)

type paymentRequest struct {
	ID       string      `json:"id"`
	Client   string      `json:"client" validate:"required"`
	Product  string      `json:"product" validate:"required"`
	Amount   core.Amount `json:"amount"`
	Received core.Amount `json:"received"`
	Type     string      `json:"type" validate:"required"`
}

type advanceRequest struct {
	OrderID string      `json:"orderId" validate:"required"`
	Advance core.Amount `json:"advance"`
}

type orderPaymentResponse struct {
	OrderID string `json:"orderId"`
	Date    string `json:"date"`
	Client  string `json:"client"`
	Product string `json:"product"`
	Total   string `json:"total"`
	Advance string `json:"advance"`
	Pending string `json:"pending"`
	Status  string `json:"status"`
}

func (s *Server) handlePayments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Payments.List())

	case http.MethodPost:
		var req paymentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		saved, err := s.ledger.Payments.Upsert(r.Context(),
			core.NewDirectPayment(req.ID, req.Client, req.Product, req.Amount, req.Received, req.Type))
		if err != nil {
			slog.ErrorContext(r.Context(), "Payment upsert failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save payment")
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := s.ledger.Payments.Remove(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Payment delete failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "could not delete payment")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	var req advanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	row, err := s.ledger.UpdateAdvance(r.Context(), req.OrderID, req.Advance)
	switch {
	case errors.Is(err, core.ErrUnknownOrder):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, core.ErrAdvanceOutOfRange):
		order, _ := s.ledger.Orders.Get(req.OrderID)
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("advance must be between 0 and the order total (%s)", order.Total.Format()))
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Advance update failed", "error", err, "order_id", req.OrderID)
		writeError(w, http.StatusInternalServerError, "could not update advance")
		return
	}
	writeJSON(w, http.StatusOK, paymentRowResponse(row))
}

func (s *Server) handlePaymentTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	rows := s.ledger.OrderPayments()
	out := make([]orderPaymentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentRowResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func paymentRowResponse(row services.OrderPaymentRow) orderPaymentResponse {
	status := "Pending"
	if row.Settled {
		status = "Paid"
	}
	return orderPaymentResponse{
		OrderID: row.OrderID,
		Date:    row.Date.String(),
		Client:  row.Client,
		Product: row.Product,
		Total:   row.Total.Format(),
		Advance: row.Advance.Format(),
		Pending: row.Pending.Format(),
		Status:  status,
	}
}
