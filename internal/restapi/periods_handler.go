package restapi

import (
	"net/http"

	"painel.telasesalas.org/internal/models"
)

func (api *RestAPI) periodsHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewPeriodsEntry(api.Board)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
