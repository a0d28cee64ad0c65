package restapi

import (
	"net/http"

	"painel.telasesalas.org/internal/metrics"
	"painel.telasesalas.org/internal/models"
	"painel.telasesalas.org/internal/utils"
)

// metricsHandler answers /api/metrics.json?period=. Without a period the
// default one is used.
func (api *RestAPI) metricsHandler(w http.ResponseWriter, r *http.Request) {
	period := utils.PeriodParam(r, api.Board.HasPeriod)

	if fieldErrors := utils.ValidatePeriodParams(period, api.Board.HasPeriod); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if period == "" {
		period = api.Board.DefaultPeriod()
	} else if !api.Board.HasPeriod(period) {
		api.sendNotFound(w, r)
		return
	}

	api.sendPeriodMetrics(w, r, period)
}

func (api *RestAPI) periodMetricsHandler(w http.ResponseWriter, r *http.Request) {
	period := utils.ExtractParam(r, "period")

	if err := utils.ValidateKnownPeriod(period, api.Board.HasPeriod); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"period": {err.Error()},
		})
		return
	}

	if !api.Board.HasPeriod(period) {
		api.sendNotFound(w, r)
		return
	}

	api.sendPeriodMetrics(w, r, period)
}

func (api *RestAPI) sendPeriodMetrics(w http.ResponseWriter, r *http.Request, period string) {
	view := api.Board.Filter(period)

	summary, err := metrics.Compute(view)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewMetricsEntry(view, summary)))
}
