package http

import (
	"time"

	"minhasfinancas/internal/core"
)

const dateLayout = "2006-01-02"

type userRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

func toUserResponse(u core.User) userResponse {
	return userResponse{ID: u.ID, Nome: u.Name, Email: u.Email}
}

func (req userRequest) toUser() core.User {
	return core.User{Name: req.Nome, Email: req.Email, Password: req.Senha}
}

type entryRequest struct {
	Descricao string           `json:"descricao"`
	Mes       int              `json:"mes"`
	Ano       int              `json:"ano"`
	Valor     core.Money       `json:"valor"`
	Usuario   int64            `json:"usuario"`
	Tipo      core.EntryType   `json:"tipo"`
	Status    core.EntryStatus `json:"status"`
}

type entryResponse struct {
	ID           int64            `json:"id"`
	Descricao    string           `json:"descricao"`
	Mes          int              `json:"mes"`
	Ano          int              `json:"ano"`
	Valor        core.Money       `json:"valor"`
	Tipo         core.EntryType   `json:"tipo"`
	Status       core.EntryStatus `json:"status"`
	Usuario      userResponse     `json:"usuario"`
	DataCadastro string           `json:"dataCadastro"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func toEntryResponse(e core.Entry) entryResponse {
	resp := entryResponse{
		ID:        e.ID,
		Descricao: e.Description,
		Mes:       e.Month,
		Ano:       e.Year,
		Valor:     e.Amount,
		Tipo:      e.Type,
		Status:    e.Status,
	}
	if e.User != nil {
		resp.Usuario = toUserResponse(*e.User)
	}
	if !e.RegisteredAt.IsZero() {
		resp.DataCadastro = e.RegisteredAt.Format(dateLayout)
	}
	return resp
}

func toEntryResponses(entries []core.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

// toEntry builds the domain entry. The owning user comes resolved by
// the handler; a nil user flows through so validation reports it.
func (req entryRequest) toEntry(id int64, user *core.User, registeredAt time.Time) core.Entry {
	return core.Entry{
		ID:           id,
		Description:  req.Descricao,
		Month:        req.Mes,
		Year:         req.Ano,
		Amount:       req.Valor,
		Type:         req.Tipo,
		Status:       req.Status,
		User:         user,
		RegisteredAt: registeredAt,
	}
}
