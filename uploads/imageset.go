// Package uploads gère les images attachées aux fiches maison et
// activité : suivi du diff conservées / supprimées / nouvelles, et
// persistance des fichiers sous le répertoire d'uploads.
package uploads

import (
	"fmt"
	"strings"
)

// FileMeta identifie un nouveau fichier soumis dans le multipart
type FileMeta struct {
	Name         string
	Size         int64
	LastModified int64
}

// ImageSet suit le diff d'images d'un formulaire : la liste initiale
// d'URLs, les URLs retirées et les nouveaux fichiers. Les conservées
// sont initial − retirées, dans l'ordre d'origine.
type ImageSet struct {
	initial       []string
	removed       map[string]bool
	nouveaux      []FileMeta
	lastSignature string
}

// NewImageSet crée un ImageSet à partir des URLs initiales
func NewImageSet(initial []string) *ImageSet {
	s := &ImageSet{
		initial: append([]string(nil), initial...),
		removed: make(map[string]bool),
	}
	// L'état initial ne compte pas comme un changement
	s.lastSignature = s.Signature()
	return s
}

// RemoveInitial marque une URL initiale comme retirée
func (s *ImageSet) RemoveInitial(url string) {
	for _, u := range s.initial {
		if u == url {
			s.removed[url] = true
			return
		}
	}
}

// RestoreInitial annule le retrait d'une URL initiale. Le couple
// retrait / restauration est idempotent : la liste conservée retrouve
// exactement son état d'origine.
func (s *ImageSet) RestoreInitial(url string) {
	delete(s.removed, url)
}

// AddFile ajoute un nouveau fichier
func (s *ImageSet) AddFile(f FileMeta) {
	s.nouveaux = append(s.nouveaux, f)
}

// RemoveFile retire un nouveau fichier par nom
func (s *ImageSet) RemoveFile(name string) {
	kept := s.nouveaux[:0]
	for _, f := range s.nouveaux {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	s.nouveaux = kept
}

// Kept retourne les URLs initiales conservées (initial − retirées),
// dans l'ordre d'origine
func (s *ImageSet) Kept() []string {
	kept := make([]string, 0, len(s.initial))
	for _, u := range s.initial {
		if !s.removed[u] {
			kept = append(kept, u)
		}
	}
	return kept
}

// Removed retourne les URLs initiales retirées, dans l'ordre d'origine
func (s *ImageSet) Removed() []string {
	removed := make([]string, 0, len(s.removed))
	for _, u := range s.initial {
		if s.removed[u] {
			removed = append(removed, u)
		}
	}
	return removed
}

// Files retourne les nouveaux fichiers
func (s *ImageSet) Files() []FileMeta {
	return s.nouveaux
}

// Signature retourne la signature de contenu de l'état courant :
// jointure des URLs conservées et des tuples name:size:lastModified
// des nouveaux fichiers
func (s *ImageSet) Signature() string {
	parts := s.Kept()
	for _, f := range s.nouveaux {
		parts = append(parts, fmt.Sprintf("%s:%d:%d", f.Name, f.Size, f.LastModified))
	}
	return strings.Join(parts, "|")
}

// Changed retourne true si la signature a changé depuis le dernier
// appel, puis mémorise la nouvelle. Deux mutations aboutissant au même
// état ne signalent donc qu'un seul changement.
func (s *ImageSet) Changed() bool {
	sig := s.Signature()
	if sig == s.lastSignature {
		return false
	}
	s.lastSignature = sig
	return true
}
