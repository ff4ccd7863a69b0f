package constants

// Messages d'erreur HTTP courants
const (
	ErrMethodNotAllowed   = "Méthode non autorisée"
	ErrServerError        = "Erreur serveur"
	ErrInvalidData        = "Données invalides"
	ErrNotAuthenticated   = "Non authentifié"
	ErrInvalidToken       = "Token invalide"
	ErrInvalidID          = "ID invalide"
	ErrHouseNotFound      = "Maison non trouvée"
	ErrEventNotFound      = "Activité non trouvée"
	ErrHotelNotFound      = "Hôtel non trouvé"
	ErrConventionNotFound = "Convention non trouvée"
	ErrBookingNotFound    = "Réservation non trouvée"
	ErrUserNotFound       = "Utilisateur introuvable"
	ErrResponsableOnly    = "Accès refusé. Réservé aux responsables"
)

// Types d'erreur métier retournés au client dans le champ errorType.
// Le client se branche sur ces valeurs pour afficher le message localisé.
const (
	ErrTypeOverlappingBooking = "overlapping_booking"
	ErrTypeInvalidPeriod      = "invalid_period"
	ErrTypeHouseUnavailable   = "house_unavailable"
	ErrTypeEventFull          = "event_full"
	ErrTypeInvalidCredentials = "invalid_credentials"
	ErrTypeUserNotFound       = "user_not_found"
	ErrTypeInactiveAccount    = "inactive_account"
	ErrTypeCaptchaFailed      = "captcha_failed"
	ErrTypeDuplicateEmail     = "duplicate_email"
	ErrTypeDuplicateMatricule = "duplicate_matricule"
	ErrTypeNetworkError       = "network_error"
	ErrTypeServerError        = "server_error"
)

// Messages localisés associés aux types d'erreur métier
const (
	MsgOverlappingBooking = "Vous avez déjà une réservation pour cette période."
	MsgInvalidPeriod      = "La période de réservation est invalide."
	MsgHouseUnavailable   = "Cette maison n'est pas disponible sur la période demandée."
	MsgEventFull          = "Cette activité est complète."
	MsgInvalidCredentials = "Email ou mot de passe incorrect"
	MsgInactiveAccount    = "Votre compte est inactif. Contactez un responsable."
	MsgCaptchaFailed      = "La vérification CAPTCHA a échoué. Veuillez réessayer."
	MsgDuplicateEmail     = "Cet email est déjà utilisé"
	MsgDuplicateMatricule = "Ce matricule est déjà utilisé"
)

// MessageForErrorType retourne le message localisé d'un type d'erreur métier.
func MessageForErrorType(errorType string) string {
	switch errorType {
	case ErrTypeOverlappingBooking:
		return MsgOverlappingBooking
	case ErrTypeInvalidPeriod:
		return MsgInvalidPeriod
	case ErrTypeHouseUnavailable:
		return MsgHouseUnavailable
	case ErrTypeEventFull:
		return MsgEventFull
	case ErrTypeInvalidCredentials, ErrTypeUserNotFound:
		return MsgInvalidCredentials
	case ErrTypeInactiveAccount:
		return MsgInactiveAccount
	case ErrTypeCaptchaFailed:
		return MsgCaptchaFailed
	case ErrTypeDuplicateEmail:
		return MsgDuplicateEmail
	case ErrTypeDuplicateMatricule:
		return MsgDuplicateMatricule
	default:
		return ErrServerError
	}
}

// En-têtes HTTP
const (
	HeaderContentType     = "Content-Type"
	HeaderApplicationJSON = "application/json"
)
