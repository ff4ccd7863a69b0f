package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/services"
	"portail-adherents-backend/utils"
)

// ContactHandler relaie les messages du formulaire de contact
type ContactHandler struct {
	slackService *services.SlackService
}

// NewContactHandler crée une nouvelle instance de ContactHandler
func NewContactHandler(slackService *services.SlackService) *ContactHandler {
	return &ContactHandler{
		slackService: slackService,
	}
}

// ContactRequest représente un message du formulaire de contact
type ContactRequest struct {
	Nom     string `json:"name"`
	Email   string `json:"email"`
	Sujet   string `json:"subject"`
	Message string `json:"message"`
}

// Send valide et relaie un message de contact
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if err := utils.ValidateRequired("name", req.Nom); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateRequired("message", req.Message); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sujet := req.Sujet
	if sujet == "" {
		sujet = "Message du portail"
	}

	if err := h.slackService.SendContactMessage(req.Nom, req.Email, sujet, req.Message); err != nil {
		log.Printf("Erreur lors du relais du message de contact: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "Impossible d'envoyer le message pour le moment")
		return
	}

	utils.RespondSuccess(w, "Message envoyé. Nous vous répondrons au plus vite.", nil)
}
