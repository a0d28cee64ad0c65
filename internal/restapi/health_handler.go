package restapi

import (
	"net/http"

	"painel.telasesalas.org/internal/models"
)

// healthHandler is not key protected so probes need no credentials.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(models.NewHealthModel(api.Board)))
}
