package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/hageland/store-dashboard-api/pkg/apiErrors"
	"github.com/hageland/store-dashboard-api/pkg/log"
)

// SecureHeaders aplica os cabeçalhos de segurança. Em produção também
// redireciona para HTTPS atrás do proxy.
func SecureHeaders(production bool) func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := secureMiddleware.Process(w, r); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Requisição bloqueada pelos cabeçalhos de segurança")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit limita as requisições por IP dentro da janela de um minuto
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Limite de requisições excedido")
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Muitas requisições, tente novamente em instantes", nil)
		}),
	)
}
