package middleware

import (
	"log"
	"net/http"
	"portail-adherents-backend/services"
	"strconv"
	"time"
)

// responseWriter wrapper pour capturer le code de statut
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// isCriticalError retourne true pour les erreurs à remonter sur Slack :
// les 5xx et les 403 (CORS mal configuré ou accès responsable refusé).
// Les erreurs utilisateur (400, 401, 404) restent dans les logs.
func isCriticalError(statusCode int) bool {
	if statusCode >= http.StatusInternalServerError {
		return true
	}
	return statusCode == http.StatusForbidden
}

// Logging trace les requêtes du portail et remonte les erreurs critiques
// sur Slack
func Logging(slackService *services.SlackService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Créer un wrapper pour capturer le code de statut
			rw := newResponseWriter(w)

			// Traiter la requête
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := rw.statusCode

			// Logger toutes les erreurs
			if statusCode >= http.StatusBadRequest {
				log.Printf(
					"⚠️ %s %s -> %d (%s)",
					r.Method,
					r.RequestURI,
					statusCode,
					duration,
				)

				// Envoyer une notification Slack uniquement pour les erreurs critiques
				if isCriticalError(statusCode) && slackService != nil {
					origin := r.Header.Get("Origin")
					userAgent := r.Header.Get("User-Agent")
					statusCodeStr := strconv.Itoa(statusCode)

					// Déterminer le type d'erreur et envoyer la notification appropriée
					if statusCode >= http.StatusInternalServerError {
						// Erreur serveur (5xx)
						errorMessage := http.StatusText(statusCode)
						slackService.SendCriticalError(r.Method, r.RequestURI, statusCodeStr, errorMessage, origin, userAgent)
					} else if statusCode == http.StatusForbidden {
						// Erreur 403 - peut être CORS ou accès refusé
						if origin != "" {
							// Probablement une erreur CORS
							slackService.SendCORSError(r.Method, r.RequestURI, origin, userAgent)
						} else {
							// Accès refusé (pas CORS)
							slackService.SendCriticalError(r.Method, r.RequestURI, statusCodeStr, "Accès refusé", origin, userAgent)
						}
					}
				}
			}
		})
	}
}
