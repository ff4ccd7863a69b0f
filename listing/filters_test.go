package listing

import (
	"testing"

	"portail-adherents-backend/models"
)

func maison(titre, localisation string, prix float64, chambres int, commodites ...string) models.House {
	return models.House{
		Titre:        titre,
		Localisation: localisation,
		Chambres:     chambres,
		Commodites:   commodites,
		Tarifs: []models.Tarif{
			{Prix: prix},
		},
	}
}

func float(v float64) *float64 { return &v }

func TestFilterHousesRecherche(t *testing.T) {
	houses := []models.House{
		maison("Chalet des Alpes", "Savoie", 100, 3),
		maison("Villa Méditerranée", "Var", 200, 4),
		maison("Gîte du Limousin", "Limousin", 80, 2),
	}

	tests := []struct {
		name      string
		recherche string
		want      int
	}{
		{"recherche vide ne filtre pas", "", 3},
		{"sous-chaîne du titre", "chalet", 1},
		{"insensible à la casse", "VILLA", 1},
		{"correspond à la localisation", "limousin", 1},
		{"aucune correspondance", "bretagne", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterHouses(houses, HouseFilters{Recherche: tt.recherche})
			if len(got) != tt.want {
				t.Errorf("FilterHouses() = %d résultats, attendu %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterHousesCommoditesIntersection(t *testing.T) {
	houses := []models.House{
		maison("A", "X", 100, 2, "piscine"),
		maison("B", "X", 100, 2, "piscine", "wifi"),
		maison("C", "X", 100, 2, "wifi", "parking"),
	}

	// Sémantique d'intersection : {piscine, wifi} exclut une maison
	// qui n'a que piscine
	got := FilterHouses(houses, HouseFilters{Commodites: []string{"piscine", "wifi"}})
	if len(got) != 1 || got[0].Titre != "B" {
		t.Errorf("FilterHouses(commodites) = %v, attendu uniquement B", got)
	}
}

func TestFilterHousesPrix(t *testing.T) {
	houses := []models.House{
		{Titre: "basse saison", Tarifs: []models.Tarif{{Prix: 50}, {Prix: 120}}},
		{Titre: "haute saison", Tarifs: []models.Tarif{{Prix: 300}, {Prix: 500}}},
	}

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want []string
	}{
		{"sans bornes", nil, nil, []string{"basse saison", "haute saison"}},
		{"min seul (demi-ouvert)", float(200), nil, []string{"haute saison"}},
		{"max seul (demi-ouvert)", nil, float(100), []string{"basse saison"}},
		{"intersection des intervalles", float(100), float(350), []string{"basse saison", "haute saison"}},
		{"aucune intersection", float(600), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterHouses(houses, HouseFilters{PrixMin: tt.min, PrixMax: tt.max})
			if len(got) != len(tt.want) {
				t.Fatalf("FilterHouses() = %d résultats, attendu %d", len(got), len(tt.want))
			}
			for i, h := range got {
				if h.Titre != tt.want[i] {
					t.Errorf("résultat[%d] = %s, attendu %s", i, h.Titre, tt.want[i])
				}
			}
		})
	}
}

// Propriété : le résultat est un sous-ensemble de la source et chaque
// élément retenu satisfait tous les prédicats actifs.
func TestFilterHousesSousEnsemble(t *testing.T) {
	houses := []models.House{
		maison("Chalet", "Savoie", 150, 3, "wifi", "piscine"),
		maison("Villa", "Var", 400, 5, "wifi"),
		maison("Gîte", "Savoie", 90, 2, "piscine"),
		maison("Studio", "Var", 60, 1),
	}
	f := HouseFilters{
		Localisation: "Savoie",
		PrixMin:      float(100),
		Commodites:   []string{"wifi"},
	}

	got := FilterHouses(houses, f)
	if len(got) >= len(houses) {
		t.Errorf("le résultat doit être un sous-ensemble strict ici, got %d", len(got))
	}
	for _, h := range got {
		if h.Localisation != "Savoie" {
			t.Errorf("%s ne satisfait pas le filtre localisation", h.Titre)
		}
		if h.PrixMax() < 100 {
			t.Errorf("%s ne satisfait pas le filtre prix", h.Titre)
		}
		found := false
		for _, c := range h.Commodites {
			if c == "wifi" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s ne satisfait pas le filtre commodités", h.Titre)
		}
	}
}

func TestFilterEvents(t *testing.T) {
	events := []models.Event{
		{Titre: "Voyage à Rome", Type: models.TypeVoyage},
		{Titre: "Club échecs", Type: models.TypeClub},
		{Titre: "Excursion Mont Blanc", Type: models.TypeExcursion},
	}

	got := FilterEvents(events, EventFilters{Type: models.TypeClub})
	if len(got) != 1 || got[0].Titre != "Club échecs" {
		t.Errorf("FilterEvents(type) = %v", got)
	}

	got = FilterEvents(events, EventFilters{Recherche: "mont"})
	if len(got) != 1 || got[0].Type != models.TypeExcursion {
		t.Errorf("FilterEvents(recherche) = %v", got)
	}
}

func TestSortHouses(t *testing.T) {
	houses := []models.House{
		maison("Beta", "X", 300, 2),
		maison("alpha", "X", 100, 5),
		maison("Gamma", "X", 200, 3),
	}

	t.Run("prix croissant par prix minimum", func(t *testing.T) {
		hs := append([]models.House(nil), houses...)
		SortHouses(hs, TriPrixCroissant)
		if hs[0].PrixMin() != 100 || hs[2].PrixMin() != 300 {
			t.Errorf("ordre = %v, %v, %v", hs[0].PrixMin(), hs[1].PrixMin(), hs[2].PrixMin())
		}
	})

	t.Run("chambres décroissant", func(t *testing.T) {
		hs := append([]models.House(nil), houses...)
		SortHouses(hs, TriChambresDecroissant)
		if hs[0].Chambres != 5 || hs[2].Chambres != 2 {
			t.Errorf("ordre = %d, %d, %d", hs[0].Chambres, hs[1].Chambres, hs[2].Chambres)
		}
	})

	t.Run("titre lexicographique", func(t *testing.T) {
		hs := append([]models.House(nil), houses...)
		SortHouses(hs, TriTitre)
		if hs[0].Titre != "alpha" || hs[2].Titre != "Gamma" {
			t.Errorf("ordre = %s, %s, %s", hs[0].Titre, hs[1].Titre, hs[2].Titre)
		}
	})

	t.Run("clé inconnue laisse l'ordre", func(t *testing.T) {
		hs := append([]models.House(nil), houses...)
		SortHouses(hs, "inconnue")
		if hs[0].Titre != "Beta" {
			t.Errorf("ordre modifié par une clé inconnue")
		}
	})
}
