package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"portail-adherents-backend/uploads"
	"portail-adherents-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HotelHandler gère les requêtes sur les hôtels partenaires
type HotelHandler struct {
	hotelRepo *database.HotelRepository
	store     *uploads.Store
	publicURL string
}

// NewHotelHandler crée une nouvelle instance de HotelHandler
func NewHotelHandler(db *mongo.Database, store *uploads.Store, publicURL string) *HotelHandler {
	return &HotelHandler{
		hotelRepo: database.NewHotelRepository(db),
		store:     store,
		publicURL: publicURL,
	}
}

// GetAll retourne tous les hôtels partenaires
func (h *HotelHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	hotels, err := h.hotelRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des hôtels: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"hotels": hotels,
		"total":  len(hotels),
	})
}

// GetDetails retourne un hôtel par ID
func (h *HotelHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	hotel, err := h.hotelRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if hotel == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHotelNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, hotel)
}

// Add crée un hôtel : champ "data" JSON + fichier "logo"
func (h *HotelHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"errors":  errs,
		})
		return
	}

	logoURL, err := h.saveLogo(r)
	if err != nil {
		log.Printf("Erreur lors de l'enregistrement du logo: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du logo")
		return
	}

	hotel := &models.Hotel{
		Titre: req.Titre,
		Lien:  req.Lien,
		Logo:  logoURL,
	}

	if err := h.hotelRepo.Create(hotel); err != nil {
		log.Printf("Erreur lors de la création de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Hôtel créé: %s (ID: %s)", hotel.Titre, hotel.ID.Hex())
	utils.RespondSuccess(w, "Hôtel créé avec succès", hotel)
}

// Update modifie un hôtel. Le logo n'est remplacé que si un nouveau
// fichier est fourni.
func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	hotel, err := h.hotelRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if hotel == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHotelNotFound)
		return
	}

	req, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"errors":  errs,
		})
		return
	}

	update := bson.M{
		"title": req.Titre,
		"link":  req.Lien,
	}

	logoURL, err := h.saveLogo(r)
	if err != nil {
		log.Printf("Erreur lors de l'enregistrement du logo: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du logo")
		return
	}
	if logoURL != "" {
		update["logo"] = logoURL
	}

	if err := h.hotelRepo.Update(id, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if logoURL != "" && hotel.Logo != "" {
		h.store.DeleteAll(stripPublicURL([]string{hotel.Logo}, h.publicURL))
	}

	log.Printf("✓ Hôtel mis à jour: %s", id.Hex())
	utils.RespondSuccess(w, "Hôtel mis à jour avec succès", nil)
}

// Delete supprime un hôtel et son logo
func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	hotel, err := h.hotelRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if hotel == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHotelNotFound)
		return
	}

	if err := h.hotelRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de l'hôtel: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if hotel.Logo != "" {
		h.store.DeleteAll(stripPublicURL([]string{hotel.Logo}, h.publicURL))
	}

	log.Printf("✓ Hôtel supprimé: %s", id.Hex())
	utils.RespondSuccess(w, "Hôtel supprimé avec succès", nil)
}

func (h *HotelHandler) parseForm(w http.ResponseWriter, r *http.Request) (*models.HotelRequest, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		log.Printf("Erreur parsing form: %v", err)
		utils.RespondError(w, http.StatusBadRequest, "Erreur lors du parsing du formulaire")
		return nil, false
	}

	var req models.HotelRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return nil, false
	}

	return &req, true
}

// saveLogo enregistre le fichier "logo" s'il est présent
func (h *HotelHandler) saveLogo(r *http.Request) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["logo"]) == 0 {
		return "", nil
	}

	relPath, err := h.store.Save(r.MultipartForm.File["logo"][0])
	if err != nil {
		return "", err
	}

	return h.publicURL + "/" + relPath, nil
}
