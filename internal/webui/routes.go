package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the dashboard pages and assets.
func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/gauge.svg", webUI.gaugeHandler)
	router.HandlerFunc(http.MethodGet, "/logo.png", webUI.logoHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	router.ServeFiles("/static/*filepath", http.FS(staticFiles()))
}
