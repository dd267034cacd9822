package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  EntryType = "RECEITA"
	Expense EntryType = "DESPESA"
)

const (
	StatusPending   EntryStatus = "PENDENTE"
	StatusConfirmed EntryStatus = "EFETIVADO"
	StatusCanceled  EntryStatus = "CANCELADO"
)

type (
	EntryType   string
	EntryStatus string

	User struct {
		ID       int64
		Name     string
		Email    string
		Password string
	}

	// Entry is a single financial movement (lançamento) owned by a user.
	Entry struct {
		ID           int64
		Description  string
		Month        int
		Year         int
		Amount       Money
		Type         EntryType
		Status       EntryStatus
		User         *User
		RegisteredAt time.Time
	}
)

// EntryFilter is a partial entry template for query-by-example search.
// Nil fields are unconstrained; populated fields match exactly.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	Type        *EntryType
	Status      *EntryStatus
	UserID      *int64
}

// RuleError is a business-rule violation. The message is shown to the
// end user, so it stays in the application language.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// AuthError is an authentication failure. Kept separate from RuleError
// so callers can distinguish the two families without string matching.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

var (
	ErrInvalidDescription = &RuleError{Message: "Informe uma Descrição válida."}
	ErrInvalidMonth       = &RuleError{Message: "Informe um Mês válido."}
	ErrInvalidYear        = &RuleError{Message: "Informe um Ano válido."}
	ErrMissingUser        = &RuleError{Message: "Informe um Usuário."}
	ErrInvalidValue       = &RuleError{Message: "Informe um Valor válido."}
	ErrMissingType        = &RuleError{Message: "Informe um Tipo de lançamento."}
	ErrEmailTaken         = &RuleError{Message: "Já existe um usuário cadastrado com este email."}

	ErrUserNotFound    = &AuthError{Message: "Usuario não encontrado para o email informado."}
	ErrInvalidPassword = &AuthError{Message: "Senha Invalida."}
)

// ErrEntryNotPersisted signals an update, delete or status change on an
// entry that never got an identifier. This is caller misuse, not bad
// input data, so it is neither a RuleError nor an AuthError.
var ErrEntryNotPersisted = errors.New("entry has no identifier; save it before mutating")

// IsRuleError reports whether err is a business-rule violation.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

// Valid reports whether s is one of the known entry statuses.
func (s EntryStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCanceled
}

// Validate checks the entry before any persistence operation. The check
// order is part of the contract: callers correcting fields one at a
// time must see the failures surface in exactly this sequence.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrInvalidDescription
	}
	if e.Month < 1 || e.Month > 12 {
		return ErrInvalidMonth
	}
	if e.Year < 1000 || e.Year > 9999 {
		return ErrInvalidYear
	}
	if e.User == nil || e.User.ID == 0 {
		return ErrMissingUser
	}
	if e.Amount.Cents <= 0 {
		return ErrInvalidValue
	}
	if !e.Type.Valid() {
		return ErrMissingType
	}
	return nil
}
