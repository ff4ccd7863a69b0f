package handlers

import (
	"net/http"

	"portail-adherents-backend/constants"
	"portail-adherents-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireMethod vérifie que la méthode HTTP est correcte. Retourne false et écrit l'erreur si non.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		utils.RespondError(w, http.StatusMethodNotAllowed, constants.ErrMethodNotAllowed)
		return false
	}
	return true
}

// ParseID extrait et valide le paramètre id depuis les vars de l'URL.
func ParseID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}
