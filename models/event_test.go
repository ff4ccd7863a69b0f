package models

import (
	"encoding/json"
	"testing"
)

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func requeteValide(typeActivite string) EventRequest {
	var debut, fin FlexibleTime
	json.Unmarshal([]byte(`"2026-07-01T10:00:00"`), &debut)
	json.Unmarshal([]byte(`"2026-07-10T18:00:00"`), &fin)

	req := EventRequest{
		Titre:    "Sortie estivale",
		Type:     typeActivite,
		Debut:    debut,
		Fin:      fin,
		PrixBase: "120",
	}
	switch typeActivite {
	case TypeVoyage:
		req.VilleDepart = "Lyon"
		req.Transport = "Car"
		req.Hebergement = "Hôtel"
	case TypeExcursion:
		req.LieuDepart = "Place Bellecour"
	case TypeClub:
		req.Adresse = "12 rue des Lilas"
		req.Horaires = []CreneauHebdo{{Jour: "mardi", Debut: "18:00", Fin: "20:00"}}
	case TypeActivite, TypeEvenement:
		req.Lieu = "Salle des fêtes"
	}
	return req
}

func TestEventRequestValidateParVariante(t *testing.T) {
	for _, typ := range EventTypes {
		t.Run(typ, func(t *testing.T) {
			req := requeteValide(typ)
			if errs := req.Validate(); len(errs) != 0 {
				t.Errorf("Validate() = %v, attendu aucune erreur", errs)
			}
		})
	}
}

func TestEventRequestVilleDepartRequiseSeulementPourVoyage(t *testing.T) {
	// Voyage sans ville de départ : erreur rattachée à departureCity
	voyage := requeteValide(TypeVoyage)
	voyage.VilleDepart = ""
	errs := voyage.Validate()
	if !hasFieldError(errs, "departureCity") {
		t.Errorf("Voyage sans ville de départ : erreurs = %v, attendu departureCity", errs)
	}

	// Le même champ vide sur un Club ne produit aucune erreur sur
	// departureCity : la variante ne l'exige pas
	club := requeteValide(TypeClub)
	club.VilleDepart = ""
	errs = club.Validate()
	if hasFieldError(errs, "departureCity") {
		t.Errorf("Club : departureCity ne doit pas être exigé, erreurs = %v", errs)
	}
	if len(errs) != 0 {
		t.Errorf("Club valide : erreurs = %v", errs)
	}
}

func TestEventRequestPrixConditionnels(t *testing.T) {
	tests := []struct {
		name     string
		presence bool
		prix     string
		wantErr  bool
	}{
		{"présence conjoint sans prix", true, "", true},
		{"présence conjoint avec prix", true, "50", false},
		{"absence conjoint sans prix", false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requeteValide(TypeExcursion)
			req.PresenceConjoint = tt.presence
			req.PrixConjoint = tt.prix
			errs := req.Validate()
			if hasFieldError(errs, "cojoinPrice") != tt.wantErr {
				t.Errorf("erreurs = %v, wantErr cojoinPrice = %v", errs, tt.wantErr)
			}
		})
	}
}

func TestEventRequestOrdreDesDates(t *testing.T) {
	req := requeteValide(TypeExcursion)
	req.Debut, req.Fin = req.Fin, req.Debut
	errs := req.Validate()
	if !hasFieldError(errs, "endDate") {
		t.Errorf("fin avant début : erreurs = %v, attendu endDate", errs)
	}
}

func TestEventRequestTypeInconnu(t *testing.T) {
	req := requeteValide(TypeVoyage)
	req.Type = "Croisière"
	errs := req.Validate()
	if !hasFieldError(errs, "type") {
		t.Errorf("type inconnu : erreurs = %v", errs)
	}
}

func TestEventRequestDetails(t *testing.T) {
	t.Run("Voyage", func(t *testing.T) {
		req := requeteValide(TypeVoyage)
		voyage, excursion, club, activite := req.Details()
		if voyage == nil || voyage.VilleDepart != "Lyon" {
			t.Errorf("Details() voyage = %v", voyage)
		}
		if excursion != nil || club != nil || activite != nil {
			t.Error("seule la variante sélectionnée doit être renseignée")
		}
	})

	t.Run("Club", func(t *testing.T) {
		req := requeteValide(TypeClub)
		voyage, _, club, _ := req.Details()
		if club == nil || len(club.Horaires) != 1 {
			t.Errorf("Details() club = %v", club)
		}
		if voyage != nil {
			t.Error("la variante voyage ne doit pas être renseignée pour un club")
		}
	})
}
