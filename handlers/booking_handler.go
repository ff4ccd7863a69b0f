package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/middleware"
	"portail-adherents-backend/models"
	"portail-adherents-backend/services"
	"portail-adherents-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingHandler gère les requêtes de réservation
type BookingHandler struct {
	bookingRepo *database.BookingRepository
	houseRepo   *database.HouseRepository
	eventRepo   *database.EventRepository
	userRepo    *database.UserRepository
	pushService *services.PushService
}

// NewBookingHandler crée une nouvelle instance de BookingHandler
func NewBookingHandler(db *mongo.Database, pushService *services.PushService) *BookingHandler {
	return &BookingHandler{
		bookingRepo: database.NewBookingRepository(db),
		houseRepo:   database.NewHouseRepository(db),
		eventRepo:   database.NewEventRepository(db),
		userRepo:    database.NewUserRepository(db),
		pushService: pushService,
	}
}

// Add crée une réservation pour l'adhérent connecté. Les échecs métier
// (période invalide, maison indisponible, chevauchement) sont des
// résultats normalisés, pas des erreurs serveur.
func (h *BookingHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrInvalidToken)
		return
	}

	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	activityID, err := primitive.ObjectIDFromHex(req.ActivityID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	if req.ActivityCategory != models.CategorieMaison && req.ActivityCategory != models.CategorieActivite {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if !req.Periode.IsValid() {
		respondActionError(w, http.StatusBadRequest, constants.ErrTypeInvalidPeriod)
		return
	}

	// Disponibilité de l'activité sur la période demandée
	if req.ActivityCategory == models.CategorieMaison {
		ok, err := h.houseAvailable(activityID, req.Periode)
		if err != nil {
			log.Printf("Erreur lors de la vérification de disponibilité: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
			return
		}
		if !ok {
			respondActionError(w, http.StatusConflict, constants.ErrTypeHouseUnavailable)
			return
		}
	} else {
		event, err := h.eventRepo.FindByID(activityID)
		if err != nil {
			log.Printf("Erreur lors de la recherche de l'activité: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
			return
		}
		if event == nil {
			utils.RespondError(w, http.StatusNotFound, constants.ErrEventNotFound)
			return
		}
		if event.MaxParticipants > 0 && event.Participants >= event.MaxParticipants {
			respondActionError(w, http.StatusConflict, constants.ErrTypeEventFull)
			return
		}
	}

	// Chevauchement avec les réservations actives de l'adhérent, toutes
	// activités confondues
	active, err := h.bookingRepo.FindActiveByUser(userID)
	if err != nil {
		log.Printf("Erreur lors de la recherche des réservations actives: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	for _, b := range active {
		if b.Periode.Overlaps(req.Periode) {
			respondActionError(w, http.StatusConflict, constants.ErrTypeOverlappingBooking)
			return
		}
	}

	booking := &models.Booking{
		UserID:             userID,
		ActivityID:         activityID,
		ActivityCategory:   req.ActivityCategory,
		Periode:            req.Periode,
		NombreParticipants: req.Participants,
	}

	if err := h.bookingRepo.Create(booking); err != nil {
		log.Printf("Erreur lors de la création de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if req.ActivityCategory == models.CategorieActivite {
		if err := h.eventRepo.IncrementParticipants(activityID, max(req.Participants, 1)); err != nil {
			log.Printf("Erreur lors de l'incrémentation des participants: %v", err)
		}
	}

	log.Printf("✓ Réservation créée: %s (adhérent: %s)", booking.ID.Hex(), userID.Hex())

	h.notifyResponsables(booking)

	utils.RespondJSON(w, http.StatusCreated, models.ActionResult{
		Success: true,
		Message: "Réservation enregistrée",
		Data:    booking,
	})
}

// GetAll retourne toutes les réservations, enrichies des entités liées
// (réservé aux responsables)
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	bookings, err := h.bookingRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des réservations: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	enriched := make([]models.BookingWithRefs, 0, len(bookings))
	for _, b := range bookings {
		enriched = append(enriched, h.withRefs(b))
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": enriched,
		"total":    len(enriched),
	})
}

// GetMine retourne les réservations de l'adhérent connecté
func (h *BookingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrInvalidToken)
		return
	}

	bookings, err := h.bookingRepo.FindByUser(userID)
	if err != nil {
		log.Printf("Erreur lors de la récupération des réservations: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	enriched := make([]models.BookingWithRefs, 0, len(bookings))
	for _, b := range bookings {
		enriched = append(enriched, h.withRefs(b))
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": enriched,
		"total":    len(enriched),
	})
}

// GetDetails retourne une réservation par ID
func (h *BookingHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if booking == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrBookingNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.withRefs(*booking))
}

// StatusChange change le statut d'une réservation. Toute valeur de
// l'ensemble des statuts est acceptée ; l'adhérent est notifié.
func (h *BookingHandler) StatusChange(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	var req models.StatusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if !models.IsValidBookingStatus(req.Status) {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Statut invalide: %s", req.Status))
		return
	}

	booking, err := h.bookingRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if booking == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrBookingNotFound)
		return
	}

	if err := h.bookingRepo.UpdateStatus(id, req.Status); err != nil {
		log.Printf("Erreur lors du changement de statut: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	title, body := services.BookingStatusMessage(h.activityTitle(*booking), req.Status)
	h.pushService.NotifyUser(booking.UserID.Hex(), title, body, map[string]string{
		"action":     "booking_status",
		"booking_id": booking.ID.Hex(),
		"status":     req.Status,
	})

	log.Printf("✓ Statut de la réservation %s: %s → %s", id.Hex(), booking.Status, req.Status)
	utils.RespondSuccess(w, "Statut mis à jour", nil)
}

// Delete supprime une réservation
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if booking == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrBookingNotFound)
		return
	}

	if err := h.bookingRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Réservation supprimée: %s", id.Hex())
	utils.RespondSuccess(w, "Réservation supprimée avec succès", nil)
}

// Recap génère le récapitulatif PDF d'une réservation
func (h *BookingHandler) Recap(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la réservation: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if booking == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrBookingNotFound)
		return
	}

	// Un adhérent ne peut télécharger que ses propres récapitulatifs
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}
	if claims.Role != models.RoleResponsable && claims.UserID != booking.UserID.Hex() {
		utils.RespondError(w, http.StatusForbidden, "Accès refusé")
		return
	}

	user, err := h.userRepo.FindByID(booking.UserID)
	if err != nil || user == nil {
		log.Printf("Erreur lors de la recherche de l'adhérent: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	data := services.RecapPDFData{
		BookingID:     booking.ID.Hex(),
		AdherentNom:   fmt.Sprintf("%s %s", user.Firstname, user.Lastname),
		AdherentEmail: user.Email,
		ActivityTitre: h.activityTitle(*booking),
		Categorie:     booking.ActivityCategory,
		PeriodeDebut:  booking.Periode.Debut.Format("02/01/2006"),
		PeriodeFin:    booking.Periode.Fin.Format("02/01/2006"),
		Participants:  booking.NombreParticipants,
		Status:        booking.Status,
	}

	pdfBytes, err := services.GenerateBookingRecapPDF(data)
	if err != nil {
		log.Printf("Erreur lors de la génération du PDF: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"reservation_%s.pdf\"", booking.ID.Hex()))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// houseAvailable vérifie qu'une maison peut accueillir la période :
// disponible, période incluse dans la fenêtre de disponibilité et
// aucune réservation active qui chevauche
func (h *BookingHandler) houseAvailable(houseID primitive.ObjectID, periode models.Periode) (bool, error) {
	house, err := h.houseRepo.FindByID(houseID)
	if err != nil {
		return false, err
	}
	if house == nil || !house.Disponible {
		return false, nil
	}

	if house.PeriodeDisponible != nil && !house.PeriodeDisponible.Contains(periode) {
		return false, nil
	}

	for _, d := range house.DatesIndisponibles {
		day := models.Periode{Debut: d, Fin: d}
		if periode.Overlaps(day) {
			return false, nil
		}
	}

	active, err := h.bookingRepo.FindActiveByActivity(houseID)
	if err != nil {
		return false, err
	}
	for _, b := range active {
		if b.Periode.Overlaps(periode) {
			return false, nil
		}
	}

	return true, nil
}

// activityTitle retourne le titre de l'activité référencée par la réservation
func (h *BookingHandler) activityTitle(booking models.Booking) string {
	switch booking.ActivityCategory {
	case models.CategorieMaison:
		house, err := h.houseRepo.FindByID(booking.ActivityID)
		if err == nil && house != nil {
			return house.Titre
		}
	case models.CategorieActivite:
		event, err := h.eventRepo.FindByID(booking.ActivityID)
		if err == nil && event != nil {
			return event.Titre
		}
	}
	return "Activité"
}

// notifyResponsables prévient les responsables qu'une réservation vient
// d'être déposée. L'échec d'une notification ne bloque pas la réservation.
func (h *BookingHandler) notifyResponsables(booking *models.Booking) {
	responsables, err := h.userRepo.FindResponsables()
	if err != nil {
		log.Printf("Erreur lors de la recherche des responsables: %v", err)
		return
	}

	titre := h.activityTitle(*booking)
	for _, responsable := range responsables {
		h.pushService.NotifyUser(
			responsable.ID.Hex(),
			"📋 Nouvelle réservation",
			fmt.Sprintf("Une réservation vient d'être déposée pour « %s ».", titre),
			map[string]string{
				"action":     "new_booking",
				"booking_id": booking.ID.Hex(),
			},
		)
	}
}

// withRefs joint l'adhérent et l'activité liés à la réservation
func (h *BookingHandler) withRefs(booking models.Booking) models.BookingWithRefs {
	out := models.BookingWithRefs{Booking: booking}

	if user, err := h.userRepo.FindByID(booking.UserID); err == nil {
		out.User = user
	}

	switch booking.ActivityCategory {
	case models.CategorieMaison:
		if house, err := h.houseRepo.FindByID(booking.ActivityID); err == nil {
			out.Maison = house
		}
	case models.CategorieActivite:
		if event, err := h.eventRepo.FindByID(booking.ActivityID); err == nil {
			out.Activite = event
		}
	}

	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
