package main

import (
	"net/http"
	"net/http/httptest"
	"portail-adherents-backend/handlers"
	"testing"

	"github.com/gorilla/mux"
)

func noopMiddleware(next http.Handler) http.Handler {
	return next
}

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	registerRoutes(router, routeHandlers{
		auth:         &handlers.AuthHandler{},
		house:        &handlers.HouseHandler{},
		event:        &handlers.EventHandler{},
		hotel:        &handlers.HotelHandler{},
		convention:   &handlers.ConventionHandler{},
		booking:      &handlers.BookingHandler{},
		contact:      &handlers.ContactHandler{},
		admin:        &handlers.AdminHandler{},
		notification: &handlers.NotificationHandler{},
		fcm:          &handlers.FCMHandler{},
		health:       &handlers.HealthHandler{},
	}, noopMiddleware, noopMiddleware, noopMiddleware, "", "uploads")
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		nom     string
		methode string
		chemin  string
		monte   bool
	}{
		{"login", http.MethodPost, "/auth/login", true},
		{"register", http.MethodPost, "/auth/register", true},
		{"check-auth", http.MethodGet, "/auth/check-auth", true},
		{"logout", http.MethodPost, "/auth/logout", true},
		{"login ancien préfixe", http.MethodPost, "/api/auth/login", true},
		{"détails maison", http.MethodGet, "/responsible/house/get/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"détails maison alias", http.MethodGet, "/responsible/house/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"détails activité", http.MethodGet, "/responsible/events/get/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"détails hôtel", http.MethodGet, "/responsible/hotel/get/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"détails convention", http.MethodGet, "/responsible/convention/get/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"détails réservation", http.MethodGet, "/responsible/booking/get/details/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"liste maisons", http.MethodGet, "/responsible/house/getAll", true},
		{"création réservation", http.MethodPost, "/responsible/booking/Add", true},
		{"statut réservation", http.MethodPut, "/responsible/booking/statuschange/6543a1b2c3d4e5f6a7b8c9d0", true},
		{"chemin inconnu", http.MethodGet, "/responsible/house/nope", false},
		{"mauvaise méthode sur login", http.MethodDelete, "/auth/login", false},
	}

	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			req := httptest.NewRequest(tt.methode, tt.chemin, nil)
			var match mux.RouteMatch
			// Un mauvais verbe matche quand même côté mux, avec MatchErr positionné
			got := router.Match(req, &match) && match.MatchErr == nil
			if got != tt.monte {
				t.Errorf("Match(%s %s) = %v, attendu %v", tt.methode, tt.chemin, got, tt.monte)
			}
		})
	}
}
