package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hageland/store-dashboard-api/pkg/apiErrors"
	"github.com/hageland/store-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError registra e responde com o código do erro de domínio.
// Loja desconhecida é erro do cliente; o resto é nosso.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := apiErrors.WriteDomainError(w, err)

	logger := log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"path": r.URL.Path,
		"code": code,
	})
	if code == apiErrors.ErrStoreNotFound {
		logger.Warn(message)
		return
	}
	logger.Error(message)
}
