package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rôles utilisateur
const (
	RoleAdherent    = "adherent"
	RoleResponsable = "responsable"
)

// Statuts de compte
const (
	StatusActif   = "actif"
	StatusInactif = "inactif"
)

// User représente un adhérent ou un responsable de l'association
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Matricule string             `json:"matricule" bson:"matricule"`
	Firstname string             `json:"prenom" bson:"firstname"`
	Lastname  string             `json:"nom" bson:"lastname"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"telephone" bson:"phone"`
	Password  string             `json:"-" bson:"password"` // Le "-" empêche la sérialisation du mot de passe
	Role      string             `json:"role" bson:"role"`  // "adherent" ou "responsable"
	Status    string             `json:"status" bson:"status"`
	FCMToken  string             `json:"fcm_token,omitempty" bson:"fcm_token,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// RegisterRequest représente la requête de création de compte
type RegisterRequest struct {
	Matricule string `json:"matricule"`
	Firstname string `json:"prenom"`
	Lastname  string `json:"nom"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"telephone"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest représente la requête de connexion.
// Le token CAPTCHA est à usage unique : il est consommé à chaque tentative.
type LoginRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	CaptchaToken string `json:"captchaToken"`
}

// UpdateUserRequest représente la requête de modification d'utilisateur (responsable)
type UpdateUserRequest struct {
	Firstname string `json:"prenom,omitempty"`
	Lastname  string `json:"nom,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telephone,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
}

// AuthResponse représente la réponse d'authentification
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionResponse représente l'état de session renvoyé par check-auth.
// La session est reconstruite depuis le token à chaque appel, jamais
// depuis un état local.
type SessionResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// ErrorResponse représente une réponse d'erreur
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse représente une réponse de succès générique
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ActionResult représente le résultat normalisé d'une action métier.
// Les échecs attendus ne lèvent pas d'exception : l'appelant se branche
// sur Success et ErrorType.
type ActionResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	ErrorType string      `json:"errorType,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// StatsResponse représente les statistiques globales du portail
type StatsResponse struct {
	TotalAdherents     int `json:"total_adherents"`
	TotalResponsables  int `json:"total_responsables"`
	TotalMaisons       int `json:"total_maisons"`
	TotalActivites     int `json:"total_activites"`
	TotalReservations  int `json:"total_reservations"`
	ReservationsActives int `json:"reservations_actives"`
}
