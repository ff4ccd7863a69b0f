package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Convention représente une convention de l'association (titre,
// description et fichier PDF associé)
type Convention struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Titre       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Fichier     string             `json:"filePath" bson:"file_path"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ConventionRequest représente la requête de création/modification de convention
type ConventionRequest struct {
	Titre       string `json:"title"`
	Description string `json:"description"`
}

// Validate vérifie les champs requis
func (r *ConventionRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Titre == "" {
		errs = append(errs, FieldError{Field: "title", Message: "le titre est requis"})
	}
	if r.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "la description est requise"})
	}
	return errs
}
