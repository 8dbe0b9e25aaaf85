package domain

import (
	"errors"
	"fmt"
)

// Erros base do painel
var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

// NotFoundError indica que a loja pedida não existe no repositório
type NotFoundError struct {
	Store string
}

func NewNotFoundError(store string) *NotFoundError {
	return &NotFoundError{Store: store}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrStoreNotFound.Error(), e.Store)
}

func (e *NotFoundError) Unwrap() error {
	return ErrStoreNotFound
}

// InvariantError indica um registro malformado (ex.: radar com tamanho errado)
type InvariantError struct {
	Store   string // Loja envolvida (quando aplicável)
	Field   string // Campo que violou a regra
	Details string // Detalhes adicionais
}

func NewInvariantError(store, field, details string) *InvariantError {
	return &InvariantError{Store: store, Field: field, Details: details}
}

func (e *InvariantError) Error() string {
	if e.Store == "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvariantViolation.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s: store %q: %s: %s", ErrInvariantViolation.Error(), e.Store, e.Field, e.Details)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
