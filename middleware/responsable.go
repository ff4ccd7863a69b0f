package middleware

import (
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"portail-adherents-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequireResponsable vérifie que l'utilisateur connecté a le rôle responsable
func RequireResponsable(db *mongo.Database) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Récupérer les claims depuis le contexte (mis par le middleware Auth)
			claims := GetUserFromContext(r.Context())
			if claims == nil {
				utils.RespondError(w, http.StatusUnauthorized, "Non authentifié")
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Identifiant utilisateur invalide")
				return
			}

			// Recharger l'utilisateur depuis la base : le rôle peut avoir
			// changé depuis l'émission du token
			userRepo := database.NewUserRepository(db)
			user, err := userRepo.FindByID(userID)
			if err != nil || user == nil {
				log.Printf("Utilisateur non trouvé: %v", err)
				utils.RespondError(w, http.StatusUnauthorized, "Utilisateur non trouvé")
				return
			}

			if user.Status != models.StatusActif {
				utils.RespondError(w, http.StatusForbidden, constants.MsgInactiveAccount)
				return
			}

			if user.Role != models.RoleResponsable {
				log.Printf("⚠️  Accès responsable refusé pour: %s (role=%s)", user.Email, user.Role)
				utils.RespondError(w, http.StatusForbidden, constants.ErrResponsableOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
