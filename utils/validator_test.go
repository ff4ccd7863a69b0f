package utils

import (
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"email valide", "adherent@association.fr", false},
		{"email valide avec sous-domaine", "adherent@mail.association.fr", false},
		{"email vide", "", true},
		{"email sans @", "adherentassociation.fr", true},
		{"email sans domaine", "adherent@", true},
		{"email format invalide", "invalide", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) erreur = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"mot de passe valide", "portail2026", false},
		{"mot de passe de 6 caractères", "123456", false},
		{"mot de passe vide", "", true},
		{"mot de passe trop court", "12345", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() erreur = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"matricule rempli", "matricule", "A12345", false},
		{"prénom vide", "prenom", "", true},
		{"nom espaces uniquement", "nom", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() erreur = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"numéro national", "0612345678", false},
		{"numéro avec espaces", "06 12 34 56 78", false},
		{"numéro international", "+33612345678", false},
		{"numéro vide", "", true},
		{"numéro trop court", "0612", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) erreur = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}
