package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/hageland/store-dashboard-api/pkg/apiErrors"
	"github.com/hageland/store-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDigest = "digest"
	CronJobTypeAll    = "all"
)

// DigestRunner é o agendador do resumo diário
type DigestRunner interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ChainDigestService DigestRunner
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("job", cronType)
		logger.Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeDigest, CronJobTypeAll:
			if services.ChainDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo diário não disponível", nil)
				return
			}
			if !services.ChainDigestService.TriggerManualRun() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Resumo diário já está em execução", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: digest, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ChainDigestService != nil {
			status[CronJobTypeDigest] = services.ChainDigestService.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
