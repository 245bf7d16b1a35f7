package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	reply(r, h.services.AppInfoService.GetAppBuildInfo(r.Context()))
}
