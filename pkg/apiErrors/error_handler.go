package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/hageland/store-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de domínio
	ErrStoreNotFound      = "STORE_001" // Loja não encontrada
	ErrInvariantViolation = "DATA_001"  // Registro da loja malformado

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrRateLimited    = "VAL_002" // Limite de requisições excedido
	ErrRouteNotFound  = "VAL_003" // Rota inexistente
	ErrMethodNotAllow = "VAL_004" // Método não suportado na rota

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailed   = "SRV_003" // Falha ao gerar a planilha

	// Erros do agendador
	ErrJobRunning = "CRON_001" // Execução já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrStoreNotFound:      http.StatusNotFound,
	ErrInvariantViolation: http.StatusInternalServerError,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrRateLimited:        http.StatusTooManyRequests,
	ErrRouteNotFound:      http.StatusNotFound,
	ErrMethodNotAllow:     http.StatusMethodNotAllowed,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrExportFailed:       http.StatusInternalServerError,
	ErrJobRunning:         http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz os erros do painel para o código correspondente.
// Retorna o código usado, para que o handler possa registrá-lo.
func WriteDomainError(w http.ResponseWriter, err error) string {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
	return apiErr.Code
}

// FromError classifica um erro Go em um APIError
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return APIError{
			Code:    ErrStoreNotFound,
			Message: "Loja não encontrada",
			Details: map[string]string{"store": notFound.Store},
		}
	}

	var invariant *domain.InvariantError
	if errors.As(err, &invariant) {
		return APIError{
			Code:    ErrInvariantViolation,
			Message: "Dados da loja inconsistentes",
			Details: map[string]string{
				"store": invariant.Store,
				"field": invariant.Field,
			},
		}
	}

	return APIError{
		Code:    ErrInternalServer,
		Message: "Erro interno no servidor",
	}
}
