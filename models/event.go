package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Types d'activité. Le type discrimine la variante : chaque variante
// porte ses propres champs requis.
const (
	TypeVoyage    = "Voyage"
	TypeExcursion = "Excursion"
	TypeClub      = "Club"
	TypeActivite  = "Activité"
	TypeEvenement = "Évènement"
)

// EventTypes liste les types d'activité valides
var EventTypes = []string{TypeVoyage, TypeExcursion, TypeClub, TypeActivite, TypeEvenement}

// IsValidEventType retourne true si le type fait partie des variantes connues
func IsValidEventType(t string) bool {
	for _, v := range EventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DetailsVoyage porte les champs propres aux voyages
type DetailsVoyage struct {
	VilleDepart string `json:"departureCity" bson:"departure_city"`
	Transport   string `json:"transport" bson:"transport"`
	Hebergement string `json:"accommodation" bson:"accommodation"`
}

// DetailsExcursion porte les champs propres aux excursions
type DetailsExcursion struct {
	LieuDepart string `json:"departurePlace" bson:"departure_place"`
	Transport  string `json:"transport" bson:"transport"`
}

// CreneauHebdo représente un créneau hebdomadaire d'un club
type CreneauHebdo struct {
	Jour  string `json:"day" bson:"day"`
	Debut string `json:"startTime" bson:"start_time"`
	Fin   string `json:"endTime" bson:"end_time"`
}

// DetailsClub porte les champs propres aux clubs
type DetailsClub struct {
	Adresse  string         `json:"address" bson:"address"`
	Horaires []CreneauHebdo `json:"schedule" bson:"schedule"`
}

// DetailsActivite porte les champs communs aux activités et évènements ponctuels
type DetailsActivite struct {
	Lieu string `json:"place" bson:"place"`
}

// Event représente une activité de l'association. C'est une union
// étiquetée : Type sélectionne la variante de détails renseignée, les
// autres restent nil.
type Event struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Titre            string             `json:"title" bson:"title"`
	Description      string             `json:"description" bson:"description"`
	Type             string             `json:"type" bson:"type"`
	Periode          Periode            `json:"period" bson:"period"`
	PrixBase         float64            `json:"basePrice" bson:"base_price"`
	PresenceConjoint bool               `json:"cojoinPresence" bson:"cojoin_presence"`
	PrixConjoint     float64            `json:"cojoinPrice,omitempty" bson:"cojoin_price,omitempty"`
	PresenceEnfant   bool               `json:"childPresence" bson:"child_presence"`
	PrixEnfant       float64            `json:"childPrice,omitempty" bson:"child_price,omitempty"`
	MaxParticipants  int                `json:"maxParticipants" bson:"max_participants"`
	Participants     int                `json:"participants" bson:"participants"`
	Images           []string           `json:"images" bson:"images"`
	Voyage           *DetailsVoyage     `json:"voyage,omitempty" bson:"voyage,omitempty"`
	Excursion        *DetailsExcursion  `json:"excursion,omitempty" bson:"excursion,omitempty"`
	Club             *DetailsClub       `json:"club,omitempty" bson:"club,omitempty"`
	Activite         *DetailsActivite   `json:"activite,omitempty" bson:"activite,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

// EventRequest représente l'état brut du formulaire activité, tel que
// soumis. Les prix conditionnels arrivent en chaînes : ils ne sont
// parsés que si le drapeau de présence correspondant est vrai.
type EventRequest struct {
	Titre            string       `json:"title"`
	Description      string       `json:"description"`
	Type             string       `json:"type"`
	Debut            FlexibleTime `json:"startDate"`
	Fin              FlexibleTime `json:"endDate"`
	PrixBase         string       `json:"basePrice"`
	PresenceConjoint bool         `json:"cojoinPresence"`
	PrixConjoint     string       `json:"cojoinPrice"`
	PresenceEnfant   bool         `json:"childPresence"`
	PrixEnfant       string       `json:"childPrice"`
	MaxParticipants  int          `json:"maxParticipants"`

	// Champs de variante, tous présents dans le formulaire ; seuls ceux
	// de la variante sélectionnée par Type sont exigés
	VilleDepart string         `json:"departureCity"`
	Transport   string         `json:"transport"`
	Hebergement string         `json:"accommodation"`
	LieuDepart  string         `json:"departurePlace"`
	Adresse     string         `json:"address"`
	Horaires    []CreneauHebdo `json:"schedule"`
	Lieu        string         `json:"place"`
}

// Validate applique les règles communes puis délègue à la variante
// sélectionnée par Type. Un champ propre à une autre variante n'est
// jamais exigé : soumettre un Club sans ville de départ ne produit
// aucune erreur sur departureCity.
func (r *EventRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Titre == "" {
		errs = append(errs, FieldError{Field: "title", Message: "le titre est requis"})
	}
	if !IsValidEventType(r.Type) {
		errs = append(errs, FieldError{Field: "type", Message: "type d'activité inconnu"})
		return errs
	}
	if r.Debut.IsZero() {
		errs = append(errs, FieldError{Field: "startDate", Message: "la date de début est requise"})
	}
	if r.Fin.IsZero() {
		errs = append(errs, FieldError{Field: "endDate", Message: "la date de fin est requise"})
	}
	if !r.Debut.IsZero() && !r.Fin.IsZero() && r.Fin.Before(r.Debut.Time) {
		errs = append(errs, FieldError{Field: "endDate", Message: "la date de fin doit être postérieure à la date de début"})
	}
	if r.PrixBase == "" {
		errs = append(errs, FieldError{Field: "basePrice", Message: "le prix de base est requis"})
	}

	// Prix conditionnels : requis uniquement si le drapeau est levé
	if r.PresenceConjoint && r.PrixConjoint == "" {
		errs = append(errs, FieldError{Field: "cojoinPrice", Message: "le prix conjoint est requis"})
	}
	if r.PresenceEnfant && r.PrixEnfant == "" {
		errs = append(errs, FieldError{Field: "childPrice", Message: "le prix enfant est requis"})
	}

	errs = append(errs, r.validateVariant()...)
	return errs
}

// validateVariant n'exige que les champs de la variante correspondant à Type
func (r *EventRequest) validateVariant() []FieldError {
	var errs []FieldError
	switch r.Type {
	case TypeVoyage:
		if r.VilleDepart == "" {
			errs = append(errs, FieldError{Field: "departureCity", Message: "la ville de départ est requise"})
		}
		if r.Transport == "" {
			errs = append(errs, FieldError{Field: "transport", Message: "le transport est requis"})
		}
		if r.Hebergement == "" {
			errs = append(errs, FieldError{Field: "accommodation", Message: "l'hébergement est requis"})
		}
	case TypeExcursion:
		if r.LieuDepart == "" {
			errs = append(errs, FieldError{Field: "departurePlace", Message: "le lieu de départ est requis"})
		}
	case TypeClub:
		if r.Adresse == "" {
			errs = append(errs, FieldError{Field: "address", Message: "l'adresse est requise"})
		}
		if len(r.Horaires) == 0 {
			errs = append(errs, FieldError{Field: "schedule", Message: "au moins un créneau hebdomadaire est requis"})
		}
	case TypeActivite, TypeEvenement:
		if r.Lieu == "" {
			errs = append(errs, FieldError{Field: "place", Message: "le lieu est requis"})
		}
	}
	return errs
}

// Details construit la variante de détails correspondant à Type.
// L'adaptateur ne copie que les champs de la variante sélectionnée.
func (r *EventRequest) Details() (voyage *DetailsVoyage, excursion *DetailsExcursion, club *DetailsClub, activite *DetailsActivite) {
	switch r.Type {
	case TypeVoyage:
		voyage = &DetailsVoyage{
			VilleDepart: r.VilleDepart,
			Transport:   r.Transport,
			Hebergement: r.Hebergement,
		}
	case TypeExcursion:
		excursion = &DetailsExcursion{
			LieuDepart: r.LieuDepart,
			Transport:  r.Transport,
		}
	case TypeClub:
		club = &DetailsClub{
			Adresse:  r.Adresse,
			Horaires: r.Horaires,
		}
	case TypeActivite, TypeEvenement:
		activite = &DetailsActivite{Lieu: r.Lieu}
	}
	return
}
