package models

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Periode représente un intervalle de dates [debut, fin]
type Periode struct {
	Debut FlexibleTime `json:"start" bson:"start"`
	Fin   FlexibleTime `json:"end" bson:"end"`
}

// Overlaps retourne true si les deux périodes se chevauchent.
// Les bornes sont inclusives : deux périodes qui partagent un jour se chevauchent.
func (p Periode) Overlaps(other Periode) bool {
	return !p.Debut.After(other.Fin.Time) && !other.Debut.After(p.Fin.Time)
}

// Contains retourne true si la période other est entièrement incluse dans p.
func (p Periode) Contains(other Periode) bool {
	return !other.Debut.Before(p.Debut.Time) && !other.Fin.After(p.Fin.Time)
}

// IsValid retourne true si debut <= fin et qu'aucune borne n'est vide.
func (p Periode) IsValid() bool {
	if p.Debut.IsZero() || p.Fin.IsZero() {
		return false
	}
	return !p.Debut.After(p.Fin.Time)
}

// Tarif représente une ligne de tarification : une période et son prix
type Tarif struct {
	Periode Periode `json:"period" bson:"period"`
	Prix    float64 `json:"price" bson:"price"`
}

// House représente une maison de l'association
type House struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Titre              string             `json:"title" bson:"title"`
	Adresse            string             `json:"address" bson:"address"`
	Description        string             `json:"description" bson:"description"`
	Localisation       string             `json:"location" bson:"location"` // région
	Tarifs             []Tarif            `json:"rates" bson:"rates"`
	Chambres           int                `json:"rooms" bson:"rooms"`
	SallesDeBain       int                `json:"bathrooms" bson:"bathrooms"`
	Commodites         []string           `json:"amenities" bson:"amenities"`
	Images             []string           `json:"images" bson:"images"`
	Disponible         bool               `json:"available" bson:"available"`
	PeriodeDisponible  *Periode           `json:"availablePeriod,omitempty" bson:"available_period,omitempty"`
	DatesIndisponibles []FlexibleTime     `json:"unavailableDates,omitempty" bson:"unavailable_dates,omitempty"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// PrixMin retourne le prix minimum parmi les lignes de tarif (0 si aucune)
func (h House) PrixMin() float64 {
	if len(h.Tarifs) == 0 {
		return 0
	}
	min := h.Tarifs[0].Prix
	for _, t := range h.Tarifs[1:] {
		if t.Prix < min {
			min = t.Prix
		}
	}
	return min
}

// PrixMax retourne le prix maximum parmi les lignes de tarif (0 si aucune)
func (h House) PrixMax() float64 {
	if len(h.Tarifs) == 0 {
		return 0
	}
	max := h.Tarifs[0].Prix
	for _, t := range h.Tarifs[1:] {
		if t.Prix > max {
			max = t.Prix
		}
	}
	return max
}

// HouseRequest représente le contenu scalaire du formulaire maison.
// Les tarifs et commodités arrivent en champs JSON sérialisés dans le
// multipart, les prix en chaînes : le parsing numérique fait partie de
// la passe de validation procédurale.
type HouseRequest struct {
	Titre              string         `json:"title"`
	Adresse            string         `json:"address"`
	Description        string         `json:"description"`
	Localisation       string         `json:"location"`
	Tarifs             []TarifRow     `json:"rates"`
	Chambres           int            `json:"rooms"`
	SallesDeBain       int            `json:"bathrooms"`
	Commodites         []string       `json:"amenities"`
	Disponible         bool           `json:"available"`
	PeriodeDisponible  *Periode       `json:"availablePeriod,omitempty"`
	DatesIndisponibles []FlexibleTime `json:"unavailableDates,omitempty"`
}

// TarifRow est une ligne de tarif telle que soumise par le formulaire,
// avec le prix en chaîne
type TarifRow struct {
	Debut FlexibleTime `json:"start"`
	Fin   FlexibleTime `json:"end"`
	Prix  string       `json:"price"`
}

// Validate effectue la validation déclarative des champs requis.
// Les erreurs sont rattachées au chemin du champ fautif.
func (r *HouseRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Titre == "" {
		errs = append(errs, FieldError{Field: "title", Message: "le titre est requis"})
	}
	if r.Adresse == "" {
		errs = append(errs, FieldError{Field: "address", Message: "l'adresse est requise"})
	}
	if r.Localisation == "" {
		errs = append(errs, FieldError{Field: "location", Message: "la localisation est requise"})
	}
	if len(r.Tarifs) == 0 {
		errs = append(errs, FieldError{Field: "rates", Message: "au moins une ligne de tarif est requise"})
	}
	if r.Chambres < 0 {
		errs = append(errs, FieldError{Field: "rooms", Message: "le nombre de chambres doit être positif"})
	}
	if r.SallesDeBain < 0 {
		errs = append(errs, FieldError{Field: "bathrooms", Message: "le nombre de salles de bain doit être positif"})
	}
	return errs
}

// ValidateTarifs est la passe procédurale : cohérence temporelle et
// numérique des lignes de tarif, que la validation déclarative ne
// couvre pas. Retourne une erreur unique et actionnable.
func (r *HouseRequest) ValidateTarifs() ([]Tarif, error) {
	tarifs := make([]Tarif, 0, len(r.Tarifs))
	for i, row := range r.Tarifs {
		if row.Debut.IsZero() || row.Fin.IsZero() {
			return nil, fmt.Errorf("tarif %d : les dates de début et de fin sont requises", i+1)
		}
		if row.Debut.After(row.Fin.Time) {
			return nil, fmt.Errorf("tarif %d : la date de début doit précéder la date de fin", i+1)
		}
		prix, err := strconv.ParseFloat(row.Prix, 64)
		if err != nil {
			return nil, fmt.Errorf("tarif %d : le prix n'est pas un nombre valide", i+1)
		}
		if prix < 0 {
			return nil, fmt.Errorf("tarif %d : le prix doit être positif ou nul", i+1)
		}
		tarifs = append(tarifs, Tarif{
			Periode: Periode{Debut: row.Debut, Fin: row.Fin},
			Prix:    prix,
		})
	}
	return tarifs, nil
}

// FieldError représente une erreur de validation rattachée à un champ
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
