// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=store_metrics.go -destination=mocks/store_metrics.go -package=mocks

// StoreMetricsRepository é o catálogo somente leitura das lojas
type StoreMetricsRepository interface {
	ListStoreNames() []string
	GetStore(name string) (domain.StoreRecord, error)
	GetChainSummary() domain.ChainSummary
}

type storeMetricsRepository struct {
	names   []string
	records map[string]domain.StoreRecord
	chain   domain.ChainSummary
}

// NewStoreRepository valida a tabela e monta o catálogo imutável.
// A ordem de records é a ordem de exibição das lojas.
func NewStoreRepository(records []domain.StoreRecord, chain domain.ChainSummary) (StoreMetricsRepository, error) {
	validate := validator.New()

	if err := validate.Struct(chain); err != nil {
		return nil, invariantFromValidation("", err)
	}

	repo := &storeMetricsRepository{
		names:   make([]string, 0, len(records)),
		records: make(map[string]domain.StoreRecord, len(records)),
		chain:   chain,
	}

	for _, record := range records {
		if err := validate.Struct(record); err != nil {
			return nil, invariantFromValidation(record.Name, err)
		}

		if _, exists := repo.records[record.Name]; exists {
			return nil, domain.NewInvariantError(record.Name, "Name", "nome de loja duplicado")
		}

		repo.names = append(repo.names, record.Name)
		repo.records[record.Name] = record.Clone()
	}

	return repo, nil
}

// NewStaticStoreRepository carrega a tabela fixa da Hageland
func NewStaticStoreRepository() StoreMetricsRepository {
	repo, err := NewStoreRepository(hagelandStores(), hagelandChain())
	if err != nil {
		panic(fmt.Sprintf("repository: catálogo estático inválido: %v", err))
	}
	return repo
}

func (r *storeMetricsRepository) ListStoreNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *storeMetricsRepository) GetStore(name string) (domain.StoreRecord, error) {
	record, ok := r.records[name]
	if !ok {
		return domain.StoreRecord{}, domain.NewNotFoundError(name)
	}
	return record.Clone(), nil
}

func (r *storeMetricsRepository) GetChainSummary() domain.ChainSummary {
	return r.chain
}

func invariantFromValidation(store string, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "repository: erro ao validar catálogo")
	}

	fields := make([]string, 0, len(validationErrs))
	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
		details = append(details, fmt.Sprintf("%s falhou em '%s'", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return domain.NewInvariantError(store, strings.Join(fields, ","), strings.Join(details, "; "))
}
