// Package http exposes the ledger over a JSON API. It is a thin surface:
// all domain behavior lives in the services and store packages, handlers
// only parse, delegate, and encode.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"ledgerdesk/internal/services"

	"github.com/go-playground/validator/v10"
)

type Server struct {
	http.Server
	ledger   *services.Ledger
	validate *validator.Validate

	// now is the evaluation clock for dashboard figures. Tests pin it.
	now func() time.Time
}

func NewServer(addr string, ledger *services.Ledger) *Server {
	s := &Server{
		ledger:   ledger,
		validate: validator.New(),
		now:      time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/incomes", s.withRequestLog(s.handleIncomes))
	mux.HandleFunc("/api/expenses", s.withRequestLog(s.handleExpenses))
	mux.HandleFunc("/api/orders", s.withRequestLog(s.handleOrders))
	mux.HandleFunc("/api/payments", s.withRequestLog(s.handlePayments))
	mux.HandleFunc("/api/payments/advance", s.withRequestLog(s.handleAdvance))
	mux.HandleFunc("/api/payments/table", s.withRequestLog(s.handlePaymentTable))

	mux.HandleFunc("/api/dashboard", s.withRequestLog(s.handleDashboard))
	mux.HandleFunc("/api/dashboard/trend", s.withRequestLog(s.handleTrend))
	mux.HandleFunc("/api/dashboard/payment-status", s.withRequestLog(s.handlePaymentStatus))

	mux.HandleFunc("/api/settings/", s.withRequestLog(s.handleSettings))
	mux.HandleFunc("/api/theme", s.withRequestLog(s.handleTheme))

	s.Server = http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// withRequestLog adds security headers, a request id, and a completion log
// line around a handler.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		requestID := generateRequestID()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(r.Context(), "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
