package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hageland/store-dashboard-api/pkg/log"
)

// Pinger verifica uma dependência opcional, como o cache
type Pinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 mesmo com o cache fora: sem Redis o painel
// calcula direto.
func HealthcheckHandler(cache Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cacheStatus := "disabled"
		if cache != nil && cache.Enabled() {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()

			cacheStatus = "ok"
			if err := cache.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Cache indisponível no healthcheck")
				cacheStatus = "unavailable"
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"cache":  cacheStatus,
		})
	})
}
