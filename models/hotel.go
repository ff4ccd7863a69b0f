package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel représente un hôtel partenaire (fiche titre / lien / logo)
type Hotel struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Titre     string             `json:"title" bson:"title"`
	Lien      string             `json:"link" bson:"link"`
	Logo      string             `json:"logo" bson:"logo"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// HotelRequest représente la requête de création/modification d'hôtel
type HotelRequest struct {
	Titre string `json:"title"`
	Lien  string `json:"link"`
}

// Validate vérifie les champs requis
func (r *HotelRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Titre == "" {
		errs = append(errs, FieldError{Field: "title", Message: "le titre est requis"})
	}
	if r.Lien == "" {
		errs = append(errs, FieldError{Field: "link", Message: "le lien est requis"})
	}
	return errs
}
