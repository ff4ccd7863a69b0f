package models

import (
	"encoding/json"
	"testing"
)

func ft(t *testing.T, s string) FlexibleTime {
	t.Helper()
	var v FlexibleTime
	if err := json.Unmarshal([]byte(`"`+s+`"`), &v); err != nil {
		t.Fatalf("date de test invalide %q: %v", s, err)
	}
	return v
}

func TestHouseRequestValidate(t *testing.T) {
	req := HouseRequest{
		Titre:        "Chalet",
		Adresse:      "1 route des cimes",
		Localisation: "Savoie",
		Tarifs:       []TarifRow{{Prix: "100"}},
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v", errs)
	}

	vide := HouseRequest{}
	errs := vide.Validate()
	for _, champ := range []string{"title", "address", "location", "rates"} {
		if !hasFieldError(errs, champ) {
			t.Errorf("champ %s manquant non signalé, erreurs = %v", champ, errs)
		}
	}
}

func TestHouseRequestValidateTarifs(t *testing.T) {
	debut := "2026-06-01T00:00:00"
	fin := "2026-06-30T00:00:00"

	tests := []struct {
		name    string
		rows    []TarifRow
		wantErr bool
	}{
		{
			"ligne valide",
			[]TarifRow{{Debut: ft(t, debut), Fin: ft(t, fin), Prix: "150"}},
			false,
		},
		{
			"début après fin",
			[]TarifRow{{Debut: ft(t, fin), Fin: ft(t, debut), Prix: "150"}},
			true,
		},
		{
			"prix non numérique",
			[]TarifRow{{Debut: ft(t, debut), Fin: ft(t, fin), Prix: "abc"}},
			true,
		},
		{
			"prix négatif",
			[]TarifRow{{Debut: ft(t, debut), Fin: ft(t, fin), Prix: "-10"}},
			true,
		},
		{
			"dates manquantes",
			[]TarifRow{{Prix: "100"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := HouseRequest{Tarifs: tt.rows}
			tarifs, err := req.ValidateTarifs()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTarifs() erreur = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(tarifs) != len(tt.rows) {
				t.Errorf("ValidateTarifs() = %d tarifs, attendu %d", len(tarifs), len(tt.rows))
			}
		})
	}
}

func TestHousePrixMinMax(t *testing.T) {
	h := House{Tarifs: []Tarif{{Prix: 200}, {Prix: 80}, {Prix: 150}}}
	if h.PrixMin() != 80 {
		t.Errorf("PrixMin() = %v", h.PrixMin())
	}
	if h.PrixMax() != 200 {
		t.Errorf("PrixMax() = %v", h.PrixMax())
	}

	vide := House{}
	if vide.PrixMin() != 0 || vide.PrixMax() != 0 {
		t.Error("maison sans tarif : prix min/max = 0")
	}
}

func TestPeriodeOverlaps(t *testing.T) {
	p := Periode{Debut: ft(t, "2026-06-01T00:00:00"), Fin: ft(t, "2026-06-10T00:00:00")}

	tests := []struct {
		name  string
		other Periode
		want  bool
	}{
		{"incluse", Periode{Debut: ft(t, "2026-06-03T00:00:00"), Fin: ft(t, "2026-06-05T00:00:00")}, true},
		{"chevauche le début", Periode{Debut: ft(t, "2026-05-28T00:00:00"), Fin: ft(t, "2026-06-02T00:00:00")}, true},
		{"bornes partagées", Periode{Debut: ft(t, "2026-06-10T00:00:00"), Fin: ft(t, "2026-06-15T00:00:00")}, true},
		{"disjointe avant", Periode{Debut: ft(t, "2026-05-01T00:00:00"), Fin: ft(t, "2026-05-20T00:00:00")}, false},
		{"disjointe après", Periode{Debut: ft(t, "2026-07-01T00:00:00"), Fin: ft(t, "2026-07-10T00:00:00")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, attendu %v", got, tt.want)
			}
		})
	}
}

func TestPeriodeIsValid(t *testing.T) {
	valide := Periode{Debut: ft(t, "2026-06-01T00:00:00"), Fin: ft(t, "2026-06-10T00:00:00")}
	if !valide.IsValid() {
		t.Error("période valide refusée")
	}

	inversee := Periode{Debut: valide.Fin, Fin: valide.Debut}
	if inversee.IsValid() {
		t.Error("période inversée acceptée")
	}

	var vide Periode
	if vide.IsValid() {
		t.Error("période vide acceptée")
	}
}
