package http

import (
	"net/http"
)

func (s *Server) handleUserAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	u, err := s.users.Authenticate(r.Context(), req.Email, req.Senha)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleUserSave(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	u, err := s.users.Save(r.Context(), req.toUser())
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(u))
}

// handleUserBalance returns the user's confirmed balance. An unknown
// user is a 404, not a zero balance.
func (s *Server) handleUserBalance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Id inválido.")
		return
	}

	u, err := s.users.FindByID(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}
	if u == nil {
		respondJSON(w, http.StatusNotFound, nil)
		return
	}

	balance, err := s.entries.BalanceForUser(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, balance)
}
