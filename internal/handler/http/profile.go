package http

import (
	"net/http"

	"github.com/trackflow/trackflow-server/internal/utils"
)

// profile returns the account of the caller identified by the auth guard.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		fail(r, errMissingClaims)
		return
	}

	profile, err := h.services.UserService.Profile(r.Context(), userID)
	if err != nil {
		fail(r, err)
		return
	}

	reply(r, profile)
}
