package constants

import "testing"

func TestMessageForErrorType(t *testing.T) {
	tests := []struct {
		nom       string
		errorType string
		attendu   string
	}{
		{"chevauchement", ErrTypeOverlappingBooking, "Vous avez déjà une réservation pour cette période."},
		{"période invalide", ErrTypeInvalidPeriod, MsgInvalidPeriod},
		{"maison indisponible", ErrTypeHouseUnavailable, MsgHouseUnavailable},
		{"activité complète", ErrTypeEventFull, "Cette activité est complète."},
		{"identifiants invalides", ErrTypeInvalidCredentials, MsgInvalidCredentials},
		{"utilisateur inconnu même message que identifiants", ErrTypeUserNotFound, MsgInvalidCredentials},
		{"compte inactif", ErrTypeInactiveAccount, MsgInactiveAccount},
		{"captcha échoué", ErrTypeCaptchaFailed, MsgCaptchaFailed},
		{"email en double", ErrTypeDuplicateEmail, MsgDuplicateEmail},
		{"matricule en double", ErrTypeDuplicateMatricule, MsgDuplicateMatricule},
		{"type inconnu", "quelque_chose", ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			if got := MessageForErrorType(tt.errorType); got != tt.attendu {
				t.Errorf("MessageForErrorType(%q) = %q, attendu %q", tt.errorType, got, tt.attendu)
			}
		})
	}
}
