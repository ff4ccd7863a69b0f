// Package listing implémente le moteur de filtrage, tri et pagination
// des collections du portail. Les filtres sont une chaîne de prédicats
// appliquée en mémoire à la collection complète : le résultat est
// toujours un sous-ensemble de la source et chaque élément retenu
// satisfait tous les prédicats actifs.
package listing

import (
	"sort"
	"strings"

	"portail-adherents-backend/models"
)

// HouseFilters représente l'état des filtres de la liste des maisons.
// Un champ vide (ou nil pour les bornes de prix) désactive son prédicat.
type HouseFilters struct {
	Recherche    string
	Localisation string
	PrixMin      *float64
	PrixMax      *float64
	Commodites   []string
}

// Active retourne true si au moins un prédicat est actif
func (f HouseFilters) Active() bool {
	return f.Recherche != "" || f.Localisation != "" ||
		f.PrixMin != nil || f.PrixMax != nil || len(f.Commodites) > 0
}

// FilterHouses applique la chaîne de prédicats à la collection.
// Aucun effet de bord sur la source.
func FilterHouses(houses []models.House, f HouseFilters) []models.House {
	result := make([]models.House, 0, len(houses))
	for _, h := range houses {
		if !matchesSearch(f.Recherche, h.Titre, h.Localisation) {
			continue
		}
		if !matchesCategory(f.Localisation, h.Localisation) {
			continue
		}
		if !priceRangeIntersects(h.PrixMin(), h.PrixMax(), f.PrixMin, f.PrixMax) {
			continue
		}
		if !containsAll(h.Commodites, f.Commodites) {
			continue
		}
		result = append(result, h)
	}
	return result
}

// EventFilters représente l'état des filtres de la liste des activités
type EventFilters struct {
	Recherche string
	Type      string
}

// FilterEvents applique recherche textuelle et filtre de type
func FilterEvents(events []models.Event, f EventFilters) []models.Event {
	result := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !matchesSearch(f.Recherche, e.Titre, e.Description) {
			continue
		}
		if !matchesCategory(f.Type, e.Type) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// matchesSearch : sous-chaîne insensible à la casse sur un ou
// plusieurs champs texte ; recherche vide = pas de filtre
func matchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesCategory : égalité stricte ; sélection vide = pas de filtre
func matchesCategory(selected, value string) bool {
	return selected == "" || selected == value
}

// priceRangeIntersects : l'élément passe si son intervalle de prix
// [itemMin, itemMax] intersecte l'intervalle demandé. Les bornes
// ouvertes (min seul ou max seul) sont supportées.
func priceRangeIntersects(itemMin, itemMax float64, min, max *float64) bool {
	if min != nil && itemMax < *min {
		return false
	}
	if max != nil && itemMin > *max {
		return false
	}
	return true
}

// containsAll : sémantique d'intersection, l'élément doit posséder
// TOUTES les commodités sélectionnées
func containsAll(have, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Clés de tri. Un seul discriminant, pas de tri multi-clés.
const (
	TriPrixCroissant       = "prix-croissant"
	TriChambresDecroissant = "chambres-decroissant"
	TriTitre               = "titre"
)

// SortHouses trie la collection en place selon la clé demandée ;
// une clé inconnue laisse l'ordre d'origine
func SortHouses(houses []models.House, key string) {
	switch key {
	case TriPrixCroissant:
		sort.SliceStable(houses, func(i, j int) bool {
			return houses[i].PrixMin() < houses[j].PrixMin()
		})
	case TriChambresDecroissant:
		sort.SliceStable(houses, func(i, j int) bool {
			return houses[i].Chambres > houses[j].Chambres
		})
	case TriTitre:
		sort.SliceStable(houses, func(i, j int) bool {
			return strings.ToLower(houses[i].Titre) < strings.ToLower(houses[j].Titre)
		})
	}
}
