package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

type optionRequest struct {
	Value string `json:"value"`
}

type themeRequest struct {
	Dark bool `json:"dark"`
}

// handleSettings serves /api/settings/{list}: GET the values, POST a new
// value, DELETE by position index. Rejected adds (empty or duplicate after
// trimming) still return the unchanged list, mirroring the silent policy
// of the settings forms.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/settings/")
	list, ok := s.ledger.Settings.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown settings list")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, list.Values())

	case http.MethodPost:
		var req optionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		added, err := list.Add(r.Context(), req.Value)
		if err != nil {
			slog.ErrorContext(r.Context(), "Option add failed", "list", name, "error", err)
			writeError(w, http.StatusInternalServerError, "could not save option")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"added":  added,
			"values": list.Values(),
		})

	case http.MethodDelete:
		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid index")
			return
		}
		if err := list.RemoveAt(r.Context(), index); err != nil {
			slog.ErrorContext(r.Context(), "Option remove failed", "list", name, "error", err)
			writeError(w, http.StatusInternalServerError, "could not remove option")
			return
		}
		writeJSON(w, http.StatusOK, list.Values())

	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, themeRequest{Dark: s.ledger.Theme.Dark()})

	case http.MethodPut:
		var req themeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.ledger.Theme.SetDark(r.Context(), req.Dark); err != nil {
			slog.ErrorContext(r.Context(), "Theme save failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save theme")
			return
		}
		writeJSON(w, http.StatusOK, themeRequest{Dark: s.ledger.Theme.Dark()})

	default:
		methodNotAllowed(w, "GET, PUT")
	}
}
