package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// limited applies the rate limiter, when there is one, ahead of the key check.
func (api *RestAPI) limited(finalHandler handlerFunc) http.Handler {
	return api.rateLimiter.Handler(validateAPIKey(api, finalHandler))
}

// SetRoutes registers the JSON API and the health check.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/periods.json", api.limited(api.periodsHandler))
	router.Handler(http.MethodGet, "/api/metrics.json", api.limited(api.metricsHandler))
	router.Handler(http.MethodGet, "/api/periods/:period", api.limited(api.periodMetricsHandler))
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
}

// Middleware wraps the whole router: request logging outermost, then
// security headers, then compression.
func (api *RestAPI) Middleware(next http.Handler) http.Handler {
	handler := CompressionMiddleware(next)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
