package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tripbooking/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	tripController *controllers.TripController,
	clientController *controllers.ClientController,
	enrollmentController *controllers.EnrollmentController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Trip catalog
	mux.HandleFunc("GET /trips", tripController.ListTrips)

	// Client directory
	mux.HandleFunc("POST /clients", clientController.CreateClient)
	mux.HandleFunc("GET /clients/{id}/trips", clientController.ListClientTrips)

	// Enrollments
	mux.HandleFunc("PUT /clients/{id}/trips/{tripID}", enrollmentController.Register)
	mux.HandleFunc("DELETE /clients/{id}/trips/{tripID}", enrollmentController.Unregister)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
