package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tripbooking/internal/delivery/http/helpers"
	"tripbooking/internal/domain"
)

type ClientController struct {
	Logger    *slog.Logger
	Directory domain.DirectoryService
}

func NewClientController(logger *slog.Logger, directory domain.DirectoryService) *ClientController {
	return &ClientController{
		Logger:    logger,
		Directory: directory,
	}
}

// CreateClientRequest is the request body for POST /clients.
type CreateClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Telephone *string `json:"phone,omitempty"`
	Pesel     *string `json:"pesel,omitempty"`
}

// Validate implements helpers.Validator.
func (r *CreateClientRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// CreateClientSuccessResponse is the success response envelope for POST /clients (201).
type CreateClientSuccessResponse struct {
	Data  *domain.Client    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateClient godoc
// @Summary Register a new client
// @Description Creates a client record and returns it with the store-assigned id.
// @Tags clients
// @Accept json
// @Produce json
// @Param body body controllers.CreateClientRequest true "Client fields; firstName, lastName, and email are required"
// @Success 201 {object} controllers.CreateClientSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clients [post]
func (c *ClientController) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	client, err := c.Directory.CreateClient(r.Context(), req.FirstName, req.LastName, req.Email, req.Telephone, req.Pesel)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeStoreUnavailable, "store unavailable")
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, client)
}

// ListClientTripsSuccessResponse is the success response envelope for GET /clients/{id}/trips (200).
type ListClientTripsSuccessResponse struct {
	Data  []*domain.ClientTrip `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListClientTrips godoc
// @Summary List a client's trips
// @Description Returns the trips the client is enrolled in, with registration and payment dates. Returns 404 when the client has no enrollments.
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} controllers.ListClientTripsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clients/{id}/trips [get]
func (c *ClientController) ListClientTrips(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	trips, err := c.Directory.ListTripsForClient(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no trips found for client")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeStoreUnavailable, "store unavailable")
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, trips)
}
