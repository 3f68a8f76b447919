package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/auth"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/service/assignment"
	"krishak-delivery/internal/storage/photos"
)

// multipart overhead allowed on top of the photo itself
const formSlack = 64 << 10

// AssignmentHandler handles HTTP requests for transporter assignments.
type AssignmentHandler struct {
	usecase assignmentUsecase
	photos  photoStore
	logger  logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase, ps photoStore) *AssignmentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AssignmentHandler{usecase: uc, photos: ps, logger: logger}
}

// Create handles POST /assignments.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req createAssignmentRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	if strings.TrimSpace(req.TransporterID) == "" && actor.Role == domain.RoleTransporter {
		req.TransporterID = actor.ID
	}

	a, err := h.usecase.Create(r.Context(), actor, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/assignments/"+a.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, modelToResponse(a))
}

// Quote handles POST /assignments/quote.
func (h *AssignmentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}
	var req quoteRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	q, err := h.usecase.Quote(req.PickupLocation.toModel(), req.DeliveryLocation.toModel())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteResponse{DistanceKm: q.DistanceKm, TransportFee: q.TransportFee})
}

// List handles GET /assignments.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := domain.AssignmentFilter{
		TransporterID: strings.TrimSpace(q.Get("transporter_id")),
		OrderID:       strings.TrimSpace(q.Get("order_id")),
	}
	if s := strings.TrimSpace(q.Get("status")); s != "" {
		st := domain.AssignmentStatus(s)
		f.Status = &st
	}
	limit, _, err := intQuery(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, _, err := intQuery(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
		return
	}
	f.Limit, f.Offset = limit, offset

	list, err := h.usecase.List(r.Context(), actor, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, modelsToResponse(list))
}

// Get handles GET /assignments/{id}.
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	a, err := h.usecase.Get(r.Context(), actor, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, modelToResponse(a))
}

// History handles GET /assignments/{id}/history.
func (h *AssignmentHandler) History(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	events, err := h.usecase.History(r.Context(), actor, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, historyToResponse(events))
}

// UpdateStatus handles PATCH /assignments/{id}/status.
// It accepts JSON, or a multipart form whose photo is stored before the transition
// and removed again if the transition is rejected.
func (h *AssignmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	var uploaded string
	if isMultipart(r) {
		if uploaded, ok = h.statusFromForm(w, r, actor, id, &req); !ok {
			return
		}
	} else if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	a, err := h.usecase.Transition(r.Context(), actor, id, assignment.TransitionInput{
		Expected: req.ExpectedStatus,
		Target:   req.Status,
		Evidence: req.PhotoURL,
		Reason:   req.Reason,
	})
	if err != nil {
		if uploaded != "" {
			h.discardPhoto(r, uploaded)
		}
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, modelToResponse(a))
}

// Cancel handles POST /assignments/{id}/cancel.
func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var req cancelRequest
	if r.ContentLength != 0 && !decodeJSON(h.logger, w, r, &req) {
		return
	}

	a, err := h.usecase.Cancel(r.Context(), actor, id, req.ExpectedStatus, req.Reason)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, modelToResponse(a))
}

// UploadPhoto handles POST /assignments/{id}/photos.
func (h *AssignmentHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	if !isMultipart(r) {
		writeError(h.logger, w, r, http.StatusBadRequest, "multipart form expected")
		return
	}
	if err := r.ParseMultipartForm(h.photos.MaxBytes() + formSlack); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}
	kind := photos.Kind(strings.TrimSpace(r.FormValue("kind")))
	if !kind.Valid() {
		writeError(h.logger, w, r, http.StatusBadRequest, "kind must be pickup or delivery")
		return
	}
	if _, err := h.usecase.Get(r.Context(), actor, id); err != nil {
		h.fail(w, r, err)
		return
	}

	url, found, err := h.storeFormPhoto(r, id, kind)
	switch {
	case err != nil:
		h.fail(w, r, err)
	case !found:
		writeError(h.logger, w, r, http.StatusBadRequest, "photo is required")
	default:
		writeJSON(h.logger, w, r, http.StatusCreated, photoResponse{URL: url})
	}
}

// statusFromForm fills req from a multipart form and returns the reference of a photo it stored.
func (h *AssignmentHandler) statusFromForm(w http.ResponseWriter, r *http.Request, actor domain.Actor, id uuid.UUID, req *statusRequest) (string, bool) {
	if err := r.ParseMultipartForm(h.photos.MaxBytes() + formSlack); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid multipart form")
		return "", false
	}
	req.ExpectedStatus = domain.AssignmentStatus(strings.TrimSpace(r.FormValue("expected_status")))
	req.Status = domain.AssignmentStatus(strings.TrimSpace(r.FormValue("status")))
	req.Reason = r.FormValue("reason")
	req.PhotoURL = r.FormValue("photo_url")

	if r.MultipartForm == nil || len(r.MultipartForm.File["photo"]) == 0 {
		return "", true
	}

	var kind photos.Kind
	switch req.Status {
	case domain.StatusPicked:
		kind = photos.KindPickup
	case domain.StatusDelivered:
		kind = photos.KindDelivery
	default:
		writeError(h.logger, w, r, http.StatusBadRequest, "photo is only accepted for picked or delivered")
		return "", false
	}

	// authorize before anything is written to storage
	if _, err := h.usecase.Get(r.Context(), actor, id); err != nil {
		h.fail(w, r, err)
		return "", false
	}
	url, _, err := h.storeFormPhoto(r, id, kind)
	if err != nil {
		h.fail(w, r, err)
		return "", false
	}
	req.PhotoURL = url
	return url, true
}

func (h *AssignmentHandler) discardPhoto(r *http.Request, url string) {
	if err := h.photos.Remove(context.WithoutCancel(r.Context()), url); err != nil {
		h.logger.Warn("orphan photo left after rejected transition",
			logx.String("request_id", reqID(r.Context())),
			logx.String("photo", url),
			logx.Err(err),
		)
	}
}

func (h *AssignmentHandler) storeFormPhoto(r *http.Request, id uuid.UUID, kind photos.Kind) (string, bool, error) {
	f, hdr, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.photos.MaxBytes()+1))
	if err != nil {
		return "", false, err
	}
	url, err := h.photos.Store(r.Context(), data, photos.Meta{AssignmentID: id, Kind: kind, Filename: hdr.Filename})
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (h *AssignmentHandler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	a, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
	}
	return a, ok
}

func (h *AssignmentHandler) actorAndID(w http.ResponseWriter, r *http.Request) (domain.Actor, uuid.UUID, bool) {
	actor, ok := h.actor(w, r)
	if !ok {
		return domain.Actor{}, uuid.Nil, false
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return domain.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

// fail maps service errors to HTTP responses.
func (h *AssignmentHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if rej, ok := domain.AsRejection(err); ok {
		status := http.StatusConflict
		if rej.Kind == domain.RejectMissingEvidence {
			status = http.StatusUnprocessableEntity
		}
		writeCodedError(h.logger, w, r, status, string(rej.Kind), rej.Message)
		return
	}

	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, photos.ErrTooLarge):
		writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "photo too large")
	case errors.Is(err, photos.ErrUnsupportedType):
		writeError(h.logger, w, r, http.StatusUnsupportedMediaType, "photo must be jpeg, png or webp")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "assignment not found")
	case errors.Is(err, apperr.ErrForbidden):
		writeError(h.logger, w, r, http.StatusForbidden, "forbidden")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order already has an active assignment")
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
	default:
		h.logger.Error("assignment request failed",
			logx.String("request_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}
