package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"tripbooking/internal/delivery/http/helpers"
	"tripbooking/internal/domain"
)

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterSuccessResponse is the success response envelope for PUT /clients/{id}/trips/{tripID} (200).
type RegisterSuccessResponse struct {
	Data  *domain.Enrollment `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Register godoc
// @Summary Register a client for a trip
// @Description Enrolls the client in the trip. The capacity check and the insert run as one atomic transaction, so concurrent registrations never overshoot max_people.
// @Tags enrollments
// @Produce json
// @Param id path int true "Client ID"
// @Param tripID path int true "Trip ID"
// @Success 200 {object} controllers.RegisterSuccessResponse "registered"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or trip_full"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (client or trip)"
// @Failure 409 {object} helpers.APIResponse "error.code: already_registered"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clients/{id}/trips/{tripID} [put]
func (c *EnrollmentController) Register(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}

	enr, err := c.Service.Register(r.Context(), clientID, tripID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "client not found")
		case errors.Is(err, domain.ErrTripNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeAlreadyRegistered, "client already registered for trip")
		case errors.Is(err, domain.ErrTripFull):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeTripFull, "trip is full")
		case errors.Is(err, domain.ErrStoreUnavailable):
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeStoreUnavailable, "store unavailable")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, enr)
}

// UnregisterSuccessResponse is the success response envelope for DELETE /clients/{id}/trips/{tripID} (200).
type UnregisterSuccessResponse struct {
	Data  string            `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Unregister godoc
// @Summary Remove a client's trip registration
// @Description Deletes the enrollment for the (client, trip) pair. A repeated call after success returns 404 rather than silently succeeding.
// @Tags enrollments
// @Produce json
// @Param id path int true "Client ID"
// @Param tripID path int true "Trip ID"
// @Success 200 {object} controllers.UnregisterSuccessResponse "unregistered"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (enrollment)"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clients/{id}/trips/{tripID} [delete]
func (c *EnrollmentController) Unregister(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}

	if err := c.Service.Unregister(r.Context(), clientID, tripID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEnrollmentNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "enrollment not found")
		case errors.Is(err, domain.ErrStoreUnavailable):
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeStoreUnavailable, "store unavailable")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, "unregistered")
}
