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

// ConventionHandler gère les requêtes sur les conventions
type ConventionHandler struct {
	conventionRepo *database.ConventionRepository
	store          *uploads.Store
	publicURL      string
}

// NewConventionHandler crée une nouvelle instance de ConventionHandler
func NewConventionHandler(db *mongo.Database, store *uploads.Store, publicURL string) *ConventionHandler {
	return &ConventionHandler{
		conventionRepo: database.NewConventionRepository(db),
		store:          store,
		publicURL:      publicURL,
	}
}

// GetAll retourne toutes les conventions
func (h *ConventionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	conventions, err := h.conventionRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des conventions: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"conventions": conventions,
		"total":       len(conventions),
	})
}

// GetDetails retourne une convention par ID
func (h *ConventionHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	convention, err := h.conventionRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la convention: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if convention == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrConventionNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, convention)
}

// Add crée une convention : champ "data" JSON + fichier "file" (PDF)
func (h *ConventionHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	fileURL, err := h.saveFile(r)
	if err != nil {
		log.Printf("Erreur lors de l'enregistrement du fichier: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du fichier")
		return
	}
	if fileURL == "" {
		utils.RespondError(w, http.StatusBadRequest, "Le fichier PDF est requis")
		return
	}

	convention := &models.Convention{
		Titre:       req.Titre,
		Description: req.Description,
		Fichier:     fileURL,
	}

	if err := h.conventionRepo.Create(convention); err != nil {
		log.Printf("Erreur lors de la création de la convention: %v", err)
		h.store.DeleteAll(stripPublicURL([]string{fileURL}, h.publicURL))
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Convention créée: %s (ID: %s)", convention.Titre, convention.ID.Hex())
	utils.RespondSuccess(w, "Convention créée avec succès", convention)
}

// Update modifie une convention. Le fichier n'est remplacé que si un
// nouveau PDF est fourni.
func (h *ConventionHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	convention, err := h.conventionRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la convention: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if convention == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrConventionNotFound)
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
		"title":       req.Titre,
		"description": req.Description,
	}

	fileURL, err := h.saveFile(r)
	if err != nil {
		log.Printf("Erreur lors de l'enregistrement du fichier: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du fichier")
		return
	}
	if fileURL != "" {
		update["file_path"] = fileURL
	}

	if err := h.conventionRepo.Update(id, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de la convention: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if fileURL != "" && convention.Fichier != "" {
		h.store.DeleteAll(stripPublicURL([]string{convention.Fichier}, h.publicURL))
	}

	log.Printf("✓ Convention mise à jour: %s", id.Hex())
	utils.RespondSuccess(w, "Convention mise à jour avec succès", nil)
}

// Delete supprime une convention et son fichier
func (h *ConventionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	convention, err := h.conventionRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la convention: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if convention == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrConventionNotFound)
		return
	}

	if err := h.conventionRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de la convention: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	if convention.Fichier != "" {
		h.store.DeleteAll(stripPublicURL([]string{convention.Fichier}, h.publicURL))
	}

	log.Printf("✓ Convention supprimée: %s", id.Hex())
	utils.RespondSuccess(w, "Convention supprimée avec succès", nil)
}

func (h *ConventionHandler) parseForm(w http.ResponseWriter, r *http.Request) (*models.ConventionRequest, bool) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		log.Printf("Erreur parsing form: %v", err)
		utils.RespondError(w, http.StatusBadRequest, "Erreur lors du parsing du formulaire")
		return nil, false
	}

	var req models.ConventionRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return nil, false
	}

	return &req, true
}

// saveFile enregistre le fichier "file" s'il est présent, en refusant
// tout autre format que le PDF
func (h *ConventionHandler) saveFile(r *http.Request) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["file"]) == 0 {
		return "", nil
	}

	fh := r.MultipartForm.File["file"][0]
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		return "", errNotPDF
	}

	relPath, err := h.store.Save(fh)
	if err != nil {
		return "", err
	}

	return h.publicURL + "/" + relPath, nil
}

var errNotPDF = &utils.ValidationError{Field: "file", Message: "seul le format PDF est accepté"}
