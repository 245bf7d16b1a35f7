// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/utils"
	"github.com/trackflow/trackflow-server/models"
)

// bodyKind tells the normalizer how to turn the recorded body into an
// envelope.
type bodyKind int

const (
	// bodyNothing means no handler recorded a body.
	bodyNothing bodyKind = iota
	// bodyValue is a raw payload that becomes the data of a success envelope.
	bodyValue
	// bodyEnvelope is a complete envelope written unchanged.
	bodyEnvelope
	// bodyError is a thrown error converted by envelopeFromError.
	bodyError
)

// responseSlot is the per-request record of what the response should be.
// The last call to reply, replyEnvelope or fail wins.
type responseSlot struct {
	kind     bodyKind
	value    any
	envelope models.ApiResponse
	err      error
}

type responseSlotCtxKey struct{}

// envelopeCodeRecorder is implemented by response writers that observe the
// code of the envelope written through them.
type envelopeCodeRecorder interface {
	recordEnvelopeCode(code models.ResponseCode)
}

func slotFromRequest(r *http.Request) *responseSlot {
	slot, ok := r.Context().Value(responseSlotCtxKey{}).(*responseSlot)
	if !ok {
		panic("http: response slot is missing, handler is not wrapped by withEnvelope")
	}
	return slot
}

// reply records value as the data of a success envelope.
func reply(r *http.Request, value any) {
	slot := slotFromRequest(r)
	*slot = responseSlot{kind: bodyValue, value: value}
}

// replyEnvelope records a complete envelope that is written unchanged.
func replyEnvelope(r *http.Request, envelope models.ApiResponse) {
	slot := slotFromRequest(r)
	*slot = responseSlot{kind: bodyEnvelope, envelope: envelope}
}

// fail records err as the outcome of the request.
func fail(r *http.Request, err error) {
	slot := slotFromRequest(r)
	*slot = responseSlot{kind: bodyError, err: err}
}

// withEnvelope is the single writer of response bodies. Downstream handlers
// record their outcome in the response slot; once they return, or panic, the
// slot is converted into exactly one models.ApiResponse.
//
// Headers set by downstream handlers are kept. Bodies they write directly
// are not part of the contract and must not be used.
func (h *Handler) withEnvelope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slot := &responseSlot{}
		r = r.WithContext(context.WithValue(r.Context(), responseSlotCtxKey{}, slot))

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromRequest(r).Error().Any("panic", rec).Msg("recovered from handler panic")
				*slot = responseSlot{kind: bodyError, err: panicError(rec)}
			}

			h.writeEnvelope(w, r, h.normalize(r, slot))
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) normalize(r *http.Request, slot *responseSlot) models.ApiResponse {
	switch slot.kind {
	case bodyValue:
		return models.Success(slot.value, "")
	case bodyEnvelope:
		return slot.envelope
	case bodyError:
		envelope := envelopeFromError(slot.err)
		logFailure(r, envelope.Code, slot.err)
		return envelope
	default:
		return models.Success(nil, "")
	}
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, envelope models.ApiResponse) {
	log := logger.FromRequest(r)

	_, err := utils.WriteJSON(w, envelope, h.statusFor(envelope.Code))
	if errors.Is(err, utils.ErrMarshalingJSON) {
		log.Err(err).Str("func", "*Handler.writeEnvelope").Msg("response data is not serializable")
		envelope = models.Failure(models.CodeInternalError, "")
		_, err = utils.WriteJSON(w, envelope, h.statusFor(envelope.Code))
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.writeEnvelope").Msg("error writing response")
	}

	if rec, ok := w.(envelopeCodeRecorder); ok {
		rec.recordEnvelopeCode(envelope.Code)
	}
}

// statusFor returns the HTTP status of an envelope with the given code.
// Under StatusPolicyAlwaysOK every envelope is sent with 200 and callers
// branch on the code alone.
func (h *Handler) statusFor(code models.ResponseCode) int {
	if h.statusPolicy != config.StatusPolicyMirror {
		return http.StatusOK
	}

	switch code {
	case models.CodeSuccess:
		return http.StatusOK
	case models.CodeInvalidParams:
		return http.StatusBadRequest
	case models.CodeUnauthorized:
		return http.StatusUnauthorized
	case models.CodeForbidden:
		return http.StatusForbidden
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeBusinessError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("%w: %w", errHandlerPanicked, err)
	}
	return fmt.Errorf("%w: %v", errHandlerPanicked, rec)
}

// logFailure logs server-side failures at error level and caller mistakes
// at debug level.
func logFailure(r *http.Request, code models.ResponseCode, err error) {
	log := logger.FromRequest(r)

	switch code {
	case models.CodeInternalError, models.CodeDatabaseError:
		log.Err(err).Int("code", int(code)).Msg("request failed")
	default:
		log.Debug().Err(err).Int("code", int(code)).Msg("request rejected")
	}
}
