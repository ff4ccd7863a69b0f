package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts de réservation. Les transitions ne sont pas contraintes
// au-delà de l'appartenance à cet ensemble : seul le cron fait
// basculer automatiquement en "terminé".
const (
	BookingEnAttente = "en attente"
	BookingConfirme  = "confirmé"
	BookingAnnule    = "annulé"
	BookingTermine   = "terminé"
)

// BookingStatuses liste les statuts valides
var BookingStatuses = []string{BookingEnAttente, BookingConfirme, BookingAnnule, BookingTermine}

// IsValidBookingStatus retourne true si le statut fait partie de l'ensemble
func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Catégories d'activité référencées par une réservation : la catégorie
// indique dans quelle collection pointe la référence d'activité.
const (
	CategorieMaison   = "maison"
	CategorieActivite = "activite"
)

// Booking représente une réservation d'un adhérent
type Booking struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID             primitive.ObjectID `json:"userId" bson:"user_id"`
	ActivityID         primitive.ObjectID `json:"activity" bson:"activity_id"`
	ActivityCategory   string             `json:"activityCategory" bson:"activity_category"`
	Periode            Periode            `json:"bookingPeriod" bson:"booking_period"`
	NombreParticipants int                `json:"participants,omitempty" bson:"participants,omitempty"`
	Status             string             `json:"status" bson:"status"`
	ReminderSent       bool               `json:"-" bson:"reminder_sent,omitempty"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsActive retourne true si la réservation occupe encore sa période
// (ni annulée ni terminée)
func (b Booking) IsActive() bool {
	return b.Status == BookingEnAttente || b.Status == BookingConfirme
}

// CreateBookingRequest représente la requête de création de réservation.
// L'adhérent est celui du token : un éventuel userId dans le corps est ignoré.
type CreateBookingRequest struct {
	ActivityID       string  `json:"activity"`
	ActivityCategory string  `json:"activityCategory"`
	Periode          Periode `json:"bookingPeriod"`
	Participants     int     `json:"participants,omitempty"`
}

// StatusChangeRequest représente la requête de changement de statut
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// BookingWithRefs contient la réservation enrichie des entités liées,
// jointes côté serveur par lookup d'ID
type BookingWithRefs struct {
	Booking
	User     *User  `json:"user,omitempty"`
	Maison   *House `json:"house,omitempty"`
	Activite *Event `json:"event,omitempty"`
}
