package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"portail-adherents-backend/utils"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminHandler gère l'administration des adhérents et les statistiques
// (réservé aux responsables)
type AdminHandler struct {
	userRepo         *database.UserRepository
	houseRepo        *database.HouseRepository
	eventRepo        *database.EventRepository
	bookingRepo      *database.BookingRepository
	subscriptionRepo *database.SubscriptionRepository
	fcmTokenRepo     *database.FCMTokenRepository
}

// NewAdminHandler crée une nouvelle instance de AdminHandler
func NewAdminHandler(db *mongo.Database) *AdminHandler {
	return &AdminHandler{
		userRepo:         database.NewUserRepository(db),
		houseRepo:        database.NewHouseRepository(db),
		eventRepo:        database.NewEventRepository(db),
		bookingRepo:      database.NewBookingRepository(db),
		subscriptionRepo: database.NewSubscriptionRepository(db),
		fcmTokenRepo:     database.NewFCMTokenRepository(db),
	}
}

// GetUsers retourne tous les adhérents
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	users, err := h.userRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des utilisateurs: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

// UpdateUser modifie un adhérent (rôle et statut compris)
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if user == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrUserNotFound)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	update := bson.M{}
	if req.Firstname != "" {
		update["firstname"] = req.Firstname
	}
	if req.Lastname != "" {
		update["lastname"] = req.Lastname
	}
	if req.Email != "" {
		if err := utils.ValidateEmail(req.Email); err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		update["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Role != "" {
		if req.Role != models.RoleAdherent && req.Role != models.RoleResponsable {
			utils.RespondError(w, http.StatusBadRequest, "Rôle invalide")
			return
		}
		update["role"] = req.Role
	}
	if req.Status != "" {
		if req.Status != models.StatusActif && req.Status != models.StatusInactif {
			utils.RespondError(w, http.StatusBadRequest, "Statut invalide")
			return
		}
		update["status"] = req.Status
	}

	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Aucune modification fournie")
		return
	}

	if err := h.userRepo.Update(id, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Utilisateur mis à jour: %s", id.Hex())
	utils.RespondSuccess(w, "Utilisateur mis à jour avec succès", nil)
}

// DeleteUser supprime un adhérent
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if user == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrUserNotFound)
		return
	}

	if err := h.userRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Purger les enregistrements de notification de l'adhérent supprimé
	if err := h.subscriptionRepo.DeleteByUserID(id.Hex()); err != nil {
		log.Printf("Erreur lors de la purge des abonnements push: %v", err)
	}
	if err := h.fcmTokenRepo.DeleteByUserID(id.Hex()); err != nil {
		log.Printf("Erreur lors de la purge des tokens FCM: %v", err)
	}

	log.Printf("✓ Utilisateur supprimé: %s (%s)", id.Hex(), user.Email)
	utils.RespondSuccess(w, "Utilisateur supprimé avec succès", nil)
}

// GetStats retourne les statistiques globales du portail
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	adherents, err := h.userRepo.CountByRole(models.RoleAdherent)
	if err != nil {
		log.Printf("Erreur lors du comptage des adhérents: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	responsables, err := h.userRepo.CountByRole(models.RoleResponsable)
	if err != nil {
		log.Printf("Erreur lors du comptage des responsables: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	maisons, err := h.houseRepo.CountAll()
	if err != nil {
		log.Printf("Erreur lors du comptage des maisons: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	activites, err := h.eventRepo.CountAll()
	if err != nil {
		log.Printf("Erreur lors du comptage des activités: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	reservations, err := h.bookingRepo.CountAll()
	if err != nil {
		log.Printf("Erreur lors du comptage des réservations: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	actives, err := h.bookingRepo.CountActive()
	if err != nil {
		log.Printf("Erreur lors du comptage des réservations actives: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.StatsResponse{
		TotalAdherents:      int(adherents),
		TotalResponsables:   int(responsables),
		TotalMaisons:        int(maisons),
		TotalActivites:      int(activites),
		TotalReservations:   int(reservations),
		ReservationsActives: int(actives),
	})
}
