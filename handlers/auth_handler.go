package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"portail-adherents-backend/services"
	"portail-adherents-backend/utils"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthHandler gère les requêtes d'authentification
type AuthHandler struct {
	userRepo       *database.UserRepository
	jwtSecret      string
	captchaService *services.CaptchaService
}

// NewAuthHandler crée une nouvelle instance de AuthHandler
func NewAuthHandler(db *mongo.Database, jwtSecret string, captchaService *services.CaptchaService) *AuthHandler {
	return &AuthHandler{
		userRepo:       database.NewUserRepository(db),
		jwtSecret:      jwtSecret,
		captchaService: captchaService,
	}
}

// respondActionError écrit un échec métier normalisé : le client se
// branche sur errorType, le message est la version localisée.
func respondActionError(w http.ResponseWriter, statusCode int, errorType string) {
	utils.RespondJSON(w, statusCode, models.ActionResult{
		Success:   false,
		ErrorType: errorType,
		Message:   constants.MessageForErrorType(errorType),
	})
}

// Register gère la création de compte d'un adhérent
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	if err := h.validateRegisterRequest(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Vérifier l'unicité du matricule puis de l'email
	matriculeTaken, err := h.userRepo.MatriculeExists(req.Matricule)
	if err != nil {
		log.Printf("Erreur lors de la vérification du matricule: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if matriculeTaken {
		respondActionError(w, http.StatusConflict, constants.ErrTypeDuplicateMatricule)
		return
	}

	emailTaken, err := h.userRepo.EmailExists(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		log.Printf("Erreur lors de la vérification de l'email: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if emailTaken {
		respondActionError(w, http.StatusConflict, constants.ErrTypeDuplicateEmail)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Erreur lors du hachage du mot de passe: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	user := &models.User{
		Matricule: strings.TrimSpace(req.Matricule),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Password:  hashedPassword,
	}

	if err := h.userRepo.Create(user); err != nil {
		log.Printf("Erreur lors de la création de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création du compte")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.jwtSecret)
	if err != nil {
		log.Printf("Erreur lors de la génération du token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Nouvel adhérent inscrit: %s (matricule: %s)", user.Email, user.Matricule)

	utils.RespondJSON(w, http.StatusCreated, models.ActionResult{
		Success: true,
		Data:    models.AuthResponse{Token: token, User: *user},
	})
}

// Login gère la connexion d'un adhérent. Le token CAPTCHA est vérifié
// en premier : il est consommé même si les identifiants sont faux.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	captchaOK, err := h.captchaService.Verify(req.CaptchaToken, r.RemoteAddr)
	if err != nil {
		log.Printf("Erreur lors de la vérification CAPTCHA: %v", err)
		respondActionError(w, http.StatusBadGateway, constants.ErrTypeNetworkError)
		return
	}
	if !captchaOK {
		respondActionError(w, http.StatusBadRequest, constants.ErrTypeCaptchaFailed)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := h.userRepo.FindByEmail(email)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if user == nil {
		respondActionError(w, http.StatusUnauthorized, constants.ErrTypeUserNotFound)
		return
	}

	if user.Status != models.StatusActif {
		respondActionError(w, http.StatusForbidden, constants.ErrTypeInactiveAccount)
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		respondActionError(w, http.StatusUnauthorized, constants.ErrTypeInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.jwtSecret)
	if err != nil {
		log.Printf("Erreur lors de la génération du token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Adhérent connecté: %s (ID: %s)", user.Email, user.ID.Hex())

	utils.RespondJSON(w, http.StatusOK, models.ActionResult{
		Success: true,
		Data:    models.AuthResponse{Token: token, User: *user},
	})
}

// CheckAuth reconstruit l'état de session depuis le token. Un token
// absent ou invalide n'est pas une erreur : la session est simplement
// non authentifiée.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.RespondJSON(w, http.StatusOK, models.SessionResponse{Authenticated: false})
		return
	}

	claims, err := utils.ValidateToken(parts[1], h.jwtSecret)
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, models.SessionResponse{Authenticated: false})
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, models.SessionResponse{Authenticated: false})
		return
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'utilisateur: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if user == nil || user.Status != models.StatusActif {
		utils.RespondJSON(w, http.StatusOK, models.SessionResponse{Authenticated: false})
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.SessionResponse{
		Authenticated: true,
		User:          user,
	})
}

// Logout termine la session côté client. Le token étant porté par le
// client, le serveur n'a pas d'état à invalider.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	utils.RespondSuccess(w, "Déconnexion réussie", nil)
}

// validateRegisterRequest valide les données d'inscription
func (h *AuthHandler) validateRegisterRequest(req *models.RegisterRequest) error {
	if err := utils.ValidateRequired("matricule", req.Matricule); err != nil {
		return err
	}
	if err := utils.ValidateRequired("prenom", req.Firstname); err != nil {
		return err
	}
	if err := utils.ValidateRequired("nom", req.Lastname); err != nil {
		return err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.Phone != "" {
		if err := utils.ValidatePhone(req.Phone); err != nil {
			return err
		}
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return err
	}
	return nil
}
