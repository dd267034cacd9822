package http

import (
	"net/http"
	"strconv"
	"time"

	"minhasfinancas/internal/core"
)

const (
	msgEntryNotFound    = "Lançamento não encontrado na base de Dados."
	msgSearchUserNeeded = "Não foi possível realizar a consulta. Usuário não encontrado para o Id informado."
	msgOwnerNotFound    = "Usuário não encontrado para o Id informado."
	msgInvalidStatus    = "Não foi possível atualizar o status do lançamento, envie um status válido."
)

func (s *Server) handleEntrySave(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	user, ok := s.resolveOwner(w, r, req.Usuario)
	if !ok {
		return
	}

	saved, err := s.entries.Save(r.Context(), req.toEntry(0, user, time.Time{}))
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toEntryResponse(saved))
}

func (s *Server) handleEntryGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Id inválido.")
		return
	}

	e, err := s.entries.FindByID(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}
	if e == nil {
		respondJSON(w, http.StatusNotFound, nil)
		return
	}

	respondJSON(w, http.StatusOK, toEntryResponse(*e))
}

func (s *Server) handleEntryUpdate(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.lookupEntry(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	user, ok := s.resolveOwner(w, r, req.Usuario)
	if !ok {
		return
	}

	e := req.toEntry(existing.ID, user, existing.RegisteredAt)
	if e.Status == "" {
		e.Status = existing.Status
	}

	updated, err := s.entries.Update(r.Context(), e)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toEntryResponse(updated))
}

func (s *Server) handleEntryUpdateStatus(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.lookupEntry(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	status := core.EntryStatus(req.Status)
	if !status.Valid() {
		respondError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	updated, err := s.entries.ChangeStatus(r.Context(), *existing, status)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toEntryResponse(updated))
}

func (s *Server) handleEntryDelete(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.lookupEntry(w, r)
	if !ok {
		return
	}

	if err := s.entries.Delete(r.Context(), *existing); err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// handleEntrySearch runs the query-by-example search. The owning user
// is mandatory and must exist; every other parameter narrows the match
// only when present.
func (s *Server) handleEntrySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := strconv.ParseInt(q.Get("usuario"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, msgSearchUserNeeded)
		return
	}
	u, err := s.users.FindByID(r.Context(), userID)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}
	if u == nil {
		respondError(w, http.StatusBadRequest, msgSearchUserNeeded)
		return
	}

	filter := core.EntryFilter{UserID: &userID}
	if v := q.Get("descricao"); v != "" {
		filter.Description = &v
	}
	if v := q.Get("mes"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Mês inválido.")
			return
		}
		filter.Month = &m
	}
	if v := q.Get("ano"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Ano inválido.")
			return
		}
		filter.Year = &y
	}
	if v := q.Get("tipo"); v != "" {
		t := core.EntryType(v)
		filter.Type = &t
	}
	if v := q.Get("status"); v != "" {
		st := core.EntryStatus(v)
		filter.Status = &st
	}

	entries, err := s.entries.Search(r.Context(), filter)
	if err != nil {
		s.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toEntryResponses(entries))
}

// lookupEntry fetches the entry addressed by the id path parameter.
// Mutating an entry that is not stored is rejected with the same
// message regardless of which mutation was attempted.
func (s *Server) lookupEntry(w http.ResponseWriter, r *http.Request) (*core.Entry, bool) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Id inválido.")
		return nil, false
	}

	e, err := s.entries.FindByID(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, r, err)
		return nil, false
	}
	if e == nil {
		respondError(w, http.StatusBadRequest, msgEntryNotFound)
		return nil, false
	}
	return e, true
}

// resolveOwner loads the user referenced by an entry payload. A zero id
// means the field was absent; the nil user is passed on so validation
// raises the missing-user rule in its documented position.
func (s *Server) resolveOwner(w http.ResponseWriter, r *http.Request, userID int64) (*core.User, bool) {
	if userID == 0 {
		return nil, true
	}
	u, err := s.users.FindByID(r.Context(), userID)
	if err != nil {
		s.respondDomainError(w, r, err)
		return nil, false
	}
	if u == nil {
		respondError(w, http.StatusBadRequest, msgOwnerNotFound)
		return nil, false
	}
	return u, true
}
