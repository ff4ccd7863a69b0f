package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hache le mot de passe d'un adhérent avec bcrypt.
// Seul le hash est stocké en base.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword vérifie le mot de passe saisi au login contre le hash stocké
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
