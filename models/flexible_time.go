package models

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexibleTime porte les dates de séjour et d'activité du portail. Le
// formulaire côté client envoie ces dates sous plusieurs formats selon le
// champ (date seule, datetime-local, ISO complet) : on les accepte tous.
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON accepte les différents formats de dates envoyés par le portail
func (ft *FlexibleTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		ft.Time = time.Time{}
		return nil
	}

	// Charger la timezone de Paris
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		paris = time.FixedZone("CET", 2*3600) // Fallback: UTC+2
	}

	// Tous les formats sont interprétés en heure française : les périodes
	// de séjour sont saisies et affichées en heure locale de l'association
	formats := []string{
		"2006-01-02T15:04:05", // "2026-07-14T20:00:00"
		"2006-01-02T15:04",    // "2026-07-14T20:00"
		time.RFC3339,          // "2026-07-14T20:00:00Z" (le Z est ignoré)
		time.RFC3339Nano,      // Avec nanosecondes
	}

	for _, layout := range formats {
		parsedTime, parseErr := time.ParseInLocation(layout, s, paris)
		if parseErr == nil {
			ft.Time = parsedTime
			return nil
		}
	}

	return fmt.Errorf("format de date invalide: %s", s)
}

// MarshalJSON retourne la date en heure française, même si MongoDB stocke en UTC
func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	if ft.Time.IsZero() {
		return []byte("null"), nil
	}

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		paris = time.FixedZone("CET", 2*3600)
	}

	frenchTime := ft.Time.In(paris)

	// Sans le Z : le client réinjecte la valeur telle quelle dans ses champs
	return []byte("\"" + frenchTime.Format("2006-01-02T15:04:05") + "\""), nil
}

// MarshalBSONValue stocke FlexibleTime comme une date MongoDB (pas un document)
func (ft *FlexibleTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if ft == nil || ft.Time.IsZero() {
		return bsontype.Null, nil, nil
	}

	// Millisecondes depuis Unix epoch, int64 little-endian
	timestampMs := ft.Time.UnixMilli()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(timestampMs))

	return bsontype.DateTime, buf, nil
}

// UnmarshalBSONValue décode une date MongoDB en FlexibleTime
func (ft *FlexibleTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.DateTime {
		if len(data) < 8 {
			return fmt.Errorf("invalid DateTime data: need 8 bytes, got %d", len(data))
		}

		// Timestamp MongoDB : int64 little-endian, millisecondes depuis Unix epoch
		timestampMs := int64(binary.LittleEndian.Uint64(data[:8]))

		seconds := timestampMs / 1000
		nanos := (timestampMs % 1000) * 1000000

		ft.Time = time.Unix(seconds, nanos)
		return nil
	}

	if t == bsontype.Null {
		ft.Time = time.Time{}
		return nil
	}

	return fmt.Errorf("cannot decode %v into FlexibleTime (expected DateTime, got %v)", t, t)
}
