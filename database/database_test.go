package database

import (
	"testing"
)

func TestPing_sansConnexion(t *testing.T) {
	// Sauvegarder l'état actuel : les autres tests du paquet ne doivent
	// pas hériter d'un client nil
	oldClient := Client
	Client = nil
	defer func() { Client = oldClient }()

	err := Ping()
	if err == nil {
		t.Error("Ping() devrait échouer quand le portail n'est pas connecté à MongoDB")
	}
	if err != nil && err.Error() != "client MongoDB non initialisé" {
		t.Errorf("Ping() erreur = %v", err)
	}
}
