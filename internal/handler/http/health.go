package http

import (
	"net/http"

	"github.com/trackflow/trackflow-server/models"
)

const welcomeMessage = "Hello from trackflow-server!"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	reply(r, models.Welcome{Message: welcomeMessage, Timestamp: h.now().UTC()})
}

// health reports OK only when the database answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		fail(r, err)
		return
	}

	reply(r, models.HealthStatus{Status: "OK", Service: models.ServiceName})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	fail(r, errRouteNotFound)
}
