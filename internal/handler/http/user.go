package http

import (
	"net/http"

	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/models"
)

const msgRegistered = "注册成功"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSONBody(r, &credentials); err != nil {
		fail(r, err)
		return
	}

	registeredUser, token, err := h.services.UserService.Register(ctx, credentials)
	if err != nil {
		fail(r, err)
		return
	}

	w.Header().Set("Authorization", bearerScheme+" "+token.String())
	replyEnvelope(r, models.Success(registeredUser, msgRegistered))
}

// login answers with the LoginResult as data. A rejected login is an
// UNAUTHORIZED envelope that still carries {success:false, message}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSONBody(r, &credentials); err != nil {
		fail(r, err)
		return
	}

	result, err := h.services.UserService.Login(ctx, credentials)
	if err != nil {
		fail(r, err)
		return
	}

	if !result.Success {
		log.Debug().Msg("login rejected")
		fail(r, models.NewErrorWithData(models.CodeUnauthorized, result.Message, result))
		return
	}

	w.Header().Set("Authorization", bearerScheme+" "+result.Token)
	replyEnvelope(r, models.Success(result, result.Message))
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetUsers(r.Context())
	if err != nil {
		fail(r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	reply(r, users)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		fail(r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), page)
	if err != nil {
		fail(r, err)
		return
	}

	reply(r, users)
}
