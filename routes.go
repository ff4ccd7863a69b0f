package main

import (
	"net/http"
	"portail-adherents-backend/handlers"
	"portail-adherents-backend/utils"

	"github.com/gorilla/mux"
)

// routeHandlers regroupe les handlers montés sur le routeur
type routeHandlers struct {
	auth         *handlers.AuthHandler
	house        *handlers.HouseHandler
	event        *handlers.EventHandler
	hotel        *handlers.HotelHandler
	convention   *handlers.ConventionHandler
	booking      *handlers.BookingHandler
	contact      *handlers.ContactHandler
	admin        *handlers.AdminHandler
	notification *handlers.NotificationHandler
	fcm          *handlers.FCMHandler
	health       *handlers.HealthHandler
}

// registerRoutes monte la table de routes. Les middlewares sont injectés
// pour que la table puisse être construite sans connexion à la base.
func registerRoutes(router *mux.Router, h routeHandlers, guest, auth, responsable mux.MiddlewareFunc, fcmVAPIDKey, filesDir string) {
	// Routes publiques d'authentification. Le client nomme /auth/...,
	// l'ancien préfixe /api/auth reste servi.
	for _, prefix := range []string{"/auth", "/api/auth"} {
		router.Handle(prefix+"/register", guest(http.HandlerFunc(h.auth.Register))).Methods("POST", "OPTIONS")
		router.Handle(prefix+"/login", guest(http.HandlerFunc(h.auth.Login))).Methods("POST", "OPTIONS")
		router.HandleFunc(prefix+"/check-auth", h.auth.CheckAuth).Methods("GET", "OPTIONS")
		router.HandleFunc(prefix+"/logout", h.auth.Logout).Methods("POST", "OPTIONS")
	}

	// Health check
	router.HandleFunc("/api/health", h.health.Health).Methods("GET")

	// Formulaire de contact (public)
	router.HandleFunc("/api/contact/send", h.contact.Send).Methods("POST", "OPTIONS")

	// Notifications Web Push (publiques)
	router.HandleFunc("/api/notifications/vapid-public-key", h.notification.GetVAPIDPublicKey).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/notifications/subscribe", h.notification.Subscribe).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/notifications/unsubscribe", h.notification.Unsubscribe).Methods("POST", "OPTIONS")

	// Firebase Cloud Messaging (publiques)
	router.HandleFunc("/api/fcm/vapid-key", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"vapidKey": fcmVAPIDKey,
		})
	}).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/fcm/subscribe", h.fcm.Subscribe).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/fcm/unsubscribe", h.fcm.Unsubscribe).Methods("POST", "OPTIONS")

	// Fichiers uploadés (images, logos, conventions PDF)
	router.PathPrefix("/files/").Handler(
		http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))),
	).Methods("GET", "OPTIONS")

	// Routes protégées (authentification requise)
	protected := router.PathPrefix("/responsible").Subrouter()
	protected.Use(auth)

	// Consultation : accessible à tout adhérent connecté. Le chemin de
	// détail est get/details/{id}, details/{id} reste servi en alias.
	protected.HandleFunc("/house/getAll", h.house.GetAll).Methods("GET", "OPTIONS")
	protected.HandleFunc("/house/get/details/{id}", h.house.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/house/details/{id}", h.house.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/events/getAll", h.event.GetAll).Methods("GET", "OPTIONS")
	protected.HandleFunc("/events/get/details/{id}", h.event.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/events/details/{id}", h.event.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/hotel/getAll", h.hotel.GetAll).Methods("GET", "OPTIONS")
	protected.HandleFunc("/hotel/get/details/{id}", h.hotel.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/hotel/details/{id}", h.hotel.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/convention/getAll", h.convention.GetAll).Methods("GET", "OPTIONS")
	protected.HandleFunc("/convention/get/details/{id}", h.convention.GetDetails).Methods("GET", "OPTIONS")
	protected.HandleFunc("/convention/details/{id}", h.convention.GetDetails).Methods("GET", "OPTIONS")

	// Réservations : l'adhérent réserve et consulte les siennes
	protected.HandleFunc("/booking/Add", h.booking.Add).Methods("POST", "OPTIONS")
	protected.HandleFunc("/booking/mine", h.booking.GetMine).Methods("GET", "OPTIONS")
	protected.HandleFunc("/booking/recap/{id}", h.booking.Recap).Methods("GET", "OPTIONS")

	// Gestion : réservée aux responsables
	manage := protected.NewRoute().Subrouter()
	manage.Use(responsable)

	manage.HandleFunc("/house/add", h.house.Add).Methods("POST", "OPTIONS")
	manage.HandleFunc("/house/update/{id}", h.house.Update).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/house/delete/{id}", h.house.Delete).Methods("DELETE", "OPTIONS")

	manage.HandleFunc("/events/add", h.event.Add).Methods("POST", "OPTIONS")
	manage.HandleFunc("/events/update/{id}", h.event.Update).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/events/delete/{id}", h.event.Delete).Methods("DELETE", "OPTIONS")

	manage.HandleFunc("/hotel/add", h.hotel.Add).Methods("POST", "OPTIONS")
	manage.HandleFunc("/hotel/update/{id}", h.hotel.Update).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/hotel/delete/{id}", h.hotel.Delete).Methods("DELETE", "OPTIONS")

	manage.HandleFunc("/convention/add", h.convention.Add).Methods("POST", "OPTIONS")
	manage.HandleFunc("/convention/update/{id}", h.convention.Update).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/convention/delete/{id}", h.convention.Delete).Methods("DELETE", "OPTIONS")

	manage.HandleFunc("/booking/getAll", h.booking.GetAll).Methods("GET", "OPTIONS")
	manage.HandleFunc("/booking/get/details/{id}", h.booking.GetDetails).Methods("GET", "OPTIONS")
	manage.HandleFunc("/booking/details/{id}", h.booking.GetDetails).Methods("GET", "OPTIONS")
	manage.HandleFunc("/booking/statuschange/{id}", h.booking.StatusChange).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/booking/delete/{id}", h.booking.Delete).Methods("DELETE", "OPTIONS")

	manage.HandleFunc("/users/getAll", h.admin.GetUsers).Methods("GET", "OPTIONS")
	manage.HandleFunc("/users/update/{id}", h.admin.UpdateUser).Methods("PUT", "OPTIONS")
	manage.HandleFunc("/users/delete/{id}", h.admin.DeleteUser).Methods("DELETE", "OPTIONS")
	manage.HandleFunc("/stats", h.admin.GetStats).Methods("GET", "OPTIONS")
	manage.HandleFunc("/notifications/announce", h.notification.SendAnnouncement).Methods("POST", "OPTIONS")
	manage.HandleFunc("/fcm/send", h.fcm.SendNotification).Methods("POST", "OPTIONS")
	manage.HandleFunc("/fcm/send-to-user", h.fcm.SendToUser).Methods("POST", "OPTIONS")
}
