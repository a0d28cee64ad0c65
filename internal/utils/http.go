package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a path parameter from the request context and removes a trailing ".json".
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return strings.TrimSuffix(params.ByName(paramName), ".json")
}

// PeriodParam reads ?period=. A value known to the table is returned exactly
// as sent, since periods keep the spacing of the source cells. Anything else
// is trimmed.
func PeriodParam(r *http.Request, known func(string) bool) string {
	period := r.URL.Query().Get("period")
	if period != "" && known(period) {
		return period
	}
	return strings.TrimSpace(period)
}
