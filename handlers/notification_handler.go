package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"portail-adherents-backend/services"
	"portail-adherents-backend/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationHandler gère les abonnements Web Push et les annonces
type NotificationHandler struct {
	subscriptionRepo *database.SubscriptionRepository
	pushService      *services.PushService
	vapidPublicKey   string
}

// NewNotificationHandler crée une nouvelle instance de NotificationHandler
func NewNotificationHandler(db *mongo.Database, pushService *services.PushService, vapidPublicKey string) *NotificationHandler {
	return &NotificationHandler{
		subscriptionRepo: database.NewSubscriptionRepository(db),
		pushService:      pushService,
		vapidPublicKey:   vapidPublicKey,
	}
}

// Subscribe permet à un adhérent de s'abonner aux notifications
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Données invalides")
		return
	}

	// Vérifier si l'abonnement existe déjà
	existing, err := h.subscriptionRepo.FindByEndpoint(req.Subscription.Endpoint)
	if err != nil {
		log.Printf("Erreur lors de la vérification de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur serveur")
		return
	}

	if existing != nil {
		utils.RespondSuccess(w, "Abonnement déjà existant", nil)
		return
	}

	subscription := &models.PushSubscription{
		UserID:   req.UserID,
		Endpoint: req.Subscription.Endpoint,
		Keys:     req.Subscription.Keys,
	}

	if err := h.subscriptionRepo.Create(subscription); err != nil {
		log.Printf("Erreur lors de la création de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de l'abonnement")
		return
	}

	log.Printf("✓ Nouvel abonnement créé pour: %s", req.UserID)
	utils.RespondSuccess(w, "Abonnement créé avec succès", subscription)
}

// Unsubscribe permet à un adhérent de se désabonner
func (h *NotificationHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	var req struct {
		Endpoint string `json:"endpoint"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Données invalides")
		return
	}

	if err := h.subscriptionRepo.Delete(req.Endpoint); err != nil {
		log.Printf("Erreur lors de la suppression de l'abonnement: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur serveur")
		return
	}

	log.Printf("✓ Abonnement supprimé: %s", req.Endpoint)
	utils.RespondSuccess(w, "Désabonnement réussi", nil)
}

// SendAnnouncement diffuse une annonce à tous les abonnés (responsables uniquement)
func (h *NotificationHandler) SendAnnouncement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	var req models.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Données invalides")
		return
	}

	title := req.Title
	if title == "" {
		title = "Annonce de l'association"
	}

	message := req.Message
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "Le message est requis")
		return
	}

	sent, failed := h.pushService.NotifyAll(title, message, req.Data)

	utils.RespondSuccess(w, "Annonce envoyée", map[string]interface{}{
		"sent":   sent,
		"failed": failed,
	})
}

// GetVAPIDPublicKey retourne la clé publique VAPID
func (h *NotificationHandler) GetVAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"publicKey": h.vapidPublicKey,
	})
}
