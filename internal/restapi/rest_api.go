package restapi

import (
	"time"

	"painel.telasesalas.org/internal/app"
)

// RestAPI serves the JSON view of the board.
type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	api := &RestAPI{Application: app}
	api.rateLimiter = NewRateLimitMiddleware(app.Config.RateLimit, time.Second, api.IsTrustedAPIKey)
	return api
}

// Close stops the rate limiter's background cleanup.
func (api *RestAPI) Close() error {
	api.rateLimiter.Stop()
	return nil
}
