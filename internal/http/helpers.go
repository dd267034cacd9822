package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"minhasfinancas/internal/core"
	"minhasfinancas/internal/log"
)

type errorResponse struct {
	Erro string `json:"erro"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Headers are already out, so an encode failure cannot change the
	// response anymore.
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Erro: message})
}

// respondDomainError maps the error families onto HTTP statuses: rule
// violations and authentication failures carry user-facing messages and
// come back as 400, anything else is an internal error.
func (s *Server) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	if core.IsRuleError(err) || core.IsAuthError(err) || errors.Is(err, core.ErrEntryNotPersisted) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("request failed", log.FieldError, err, log.FieldPath, r.URL.Path)
	respondError(w, http.StatusInternalServerError, "Ocorreu um erro inesperado. Tente novamente.")
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
