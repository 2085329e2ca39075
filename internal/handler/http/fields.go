package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

// maxBodySize bounds request bodies; a batch of records is the largest.
const maxBodySize = 4 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeServiceError answers with the status mapped from err and the
// user-facing message. Internal error text is not exposed.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := service.UserMessage(err)
	if status == http.StatusBadRequest && msg == app.MsgInternalServerError {
		msg = app.MsgInvalidDataProvided
	}
	utils.WriteError(w, msg, status)
}

func (h *Handler) encryptField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.EncryptFieldRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptField").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	env, stored, err := h.services.FieldService.EncryptField(r.Context(), req.PlainText, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.EncryptFieldResponse{Envelope: env, Stored: stored}, http.StatusOK)
}

func (h *Handler) decryptField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.DecryptFieldRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptField").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	plain, err := h.services.FieldService.DecryptField(r.Context(), req.Envelope, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DecryptFieldResponse{PlainText: plain}, http.StatusOK)
}

func (h *Handler) reconcileField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.ReconcileFieldRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.reconcileField").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	field := h.services.Reconciler.ReconcileField(r.Context(), req.Raw, userID)
	_, _ = utils.WriteJSON(w, field, http.StatusOK)
}

func (h *Handler) reconcileRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.ReconcileRecordsRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.reconcileRecords").Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	entries, err := h.services.Reconciler.ReconcileRecords(r.Context(), req.Records, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.reconcileRecords").Msg("reconciliation interrupted")
		writeServiceError(w, err)
		return
	}

	resp := models.ReconcileRecordsResponse{Entries: entries}
	for _, e := range entries {
		if e.IsLegacy {
			resp.Legacy++
		}
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// generatePassword accepts optional options; an empty body uses the
// defaults.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	opts := models.DefaultGeneratorOptions()
	if r.ContentLength != 0 {
		if err := decodeBody(w, r, &opts); err != nil {
			log.Err(err).Str("func", "*Handler.generatePassword").Msg("invalid JSON was passed")
			writeServiceError(w, err)
			return
		}
	}

	password, err := h.services.FieldService.GeneratePassword(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.GeneratePasswordResponse{Password: password}, http.StatusOK)
}
