package app

import "net/http"

// KeysRequired reports whether the API is protected at all. An empty key
// list leaves the dashboard API open.
func (app *Application) KeysRequired() bool {
	return len(app.Config.ApiKeys) > 0
}

func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	if !app.KeysRequired() {
		return false
	}
	key := r.URL.Query().Get("key")
	return app.IsInvalidAPIKey(key)
}

func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.ApiKeys {
		if key == validKey {
			return false
		}
	}

	return true
}

// IsTrustedAPIKey reports whether key is one of the configured keys. With no
// keys configured nothing is trusted.
func (app *Application) IsTrustedAPIKey(key string) bool {
	return app.KeysRequired() && !app.IsInvalidAPIKey(key)
}
