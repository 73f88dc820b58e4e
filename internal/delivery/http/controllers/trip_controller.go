package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"tripbooking/internal/delivery/http/helpers"
	"tripbooking/internal/domain"
)

type TripController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewTripController(logger *slog.Logger, catalog domain.CatalogService) *TripController {
	return &TripController{
		Logger:  logger,
		Catalog: catalog,
	}
}

// ListTripsSuccessResponse is the success response envelope for GET /trips (200).
type ListTripsSuccessResponse struct {
	Data  []*domain.TripWithCountry `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListTrips godoc
// @Summary List all trip offerings
// @Description Returns every trip joined with its country name. A trip spanning several countries appears once per country.
// @Tags trips
// @Produce json
// @Success 200 {object} controllers.ListTripsSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips [get]
func (c *TripController) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := c.Catalog.ListTrips(r.Context())
	if err != nil {
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
