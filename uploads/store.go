package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persiste les fichiers uploadés sous un répertoire local. Les
// chemins retournés sont relatifs : le client les résout contre l'URL
// de base publique.
type Store struct {
	dir string
}

// NewStore crée le répertoire d'uploads s'il n'existe pas
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erreur lors de la création du répertoire d'uploads: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir retourne le répertoire d'uploads
func (s *Store) Dir() string {
	return s.dir
}

// Save écrit le fichier multipart sous un nom unique et retourne son
// chemin relatif
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("erreur lors de l'ouverture du fichier: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeName(fh.Filename))
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("erreur lors de la création du fichier: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("erreur lors de l'écriture du fichier: %w", err)
	}

	return name, nil
}

// SaveAll persiste tous les fichiers d'un champ multipart et retourne
// leurs chemins relatifs
func (s *Store) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Delete supprime un fichier par chemin relatif. Un fichier déjà
// absent n'est pas une erreur.
func (s *Store) Delete(relPath string) error {
	// Refuser toute traversée hors du répertoire d'uploads
	clean := filepath.Clean(relPath)
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("chemin de fichier invalide: %s", relPath)
	}

	err := os.Remove(filepath.Join(s.dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erreur lors de la suppression du fichier: %w", err)
	}
	return nil
}

// DeleteAll supprime une liste de fichiers ; les échecs individuels
// sont journalisés sans interrompre le reste
func (s *Store) DeleteAll(relPaths []string) {
	for _, p := range relPaths {
		if err := s.Delete(p); err != nil {
			log.Printf("⚠️  Erreur suppression fichier %s: %v", p, err)
		}
	}
}

// sanitizeName retire les séparateurs de chemin du nom de fichier soumis
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
