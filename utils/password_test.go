package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "sejour-ete-2026"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() erreur = %v", err)
	}
	if hash == "" {
		t.Error("HashPassword() ne doit pas retourner un hash vide")
	}
	if hash == password {
		t.Error("HashPassword() ne doit pas retourner le mot de passe en clair")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "sejour-ete-2026"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() erreur = %v", err)
	}

	if !CheckPassword(hash, password) {
		t.Error("CheckPassword() doit accepter le bon mot de passe")
	}
	if CheckPassword(hash, "mauvais-mot-de-passe") {
		t.Error("CheckPassword() doit refuser un mauvais mot de passe")
	}
	if CheckPassword(hash, "") {
		t.Error("CheckPassword() doit refuser un mot de passe vide")
	}
}
