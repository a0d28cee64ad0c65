package webui

import (
	"net/http"
	"os"
)

// logoAvailable reports whether the configured logo is a readable file. A
// missing logo is not an error, the page is drawn without it.
func (webUI *WebUI) logoAvailable() bool {
	if webUI.Config.LogoPath == "" {
		return false
	}
	info, err := os.Stat(webUI.Config.LogoPath)
	return err == nil && info.Mode().IsRegular()
}

func (webUI *WebUI) logoHandler(w http.ResponseWriter, r *http.Request) {
	if !webUI.logoAvailable() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, webUI.Config.LogoPath)
}
