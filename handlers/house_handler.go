package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"portail-adherents-backend/constants"
	"portail-adherents-backend/database"
	"portail-adherents-backend/listing"
	"portail-adherents-backend/models"
	"portail-adherents-backend/uploads"
	"portail-adherents-backend/utils"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HouseHandler gère les requêtes sur les maisons
type HouseHandler struct {
	houseRepo *database.HouseRepository
	store     *uploads.Store
	publicURL string
}

// NewHouseHandler crée une nouvelle instance de HouseHandler
func NewHouseHandler(db *mongo.Database, store *uploads.Store, publicURL string) *HouseHandler {
	return &HouseHandler{
		houseRepo: database.NewHouseRepository(db),
		store:     store,
		publicURL: publicURL,
	}
}

// GetAll retourne les maisons filtrées, triées et paginées.
// Le filtrage se fait côté serveur : le client n'envoie que les critères.
func (h *HouseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	houses, err := h.houseRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des maisons: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	q := r.URL.Query()
	filters := listing.HouseFilters{
		Recherche:    q.Get("search"),
		Localisation: q.Get("location"),
	}
	if v := q.Get("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PrixMin = &f
		}
	}
	if v := q.Get("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PrixMax = &f
		}
	}
	if v := q.Get("amenities"); v != "" {
		filters.Commodites = strings.Split(v, ",")
	}

	filtered := listing.FilterHouses(houses, filters)
	listing.SortHouses(filtered, q.Get("sort"))

	pageSize := 9
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
		pageSize = v
	}
	pager := listing.NewPager(len(filtered), pageSize)
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		pager.GoTo(v)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"houses":     listing.Page(pager, filtered),
		"total":      len(filtered),
		"page":       pager.Current(),
		"totalPages": pager.TotalPages(),
	})
}

// GetDetails retourne une maison par ID
func (h *HouseHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	house, err := h.houseRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la maison: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if house == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHouseNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, house)
}

// Add crée une maison depuis le formulaire multipart : le champ "data"
// porte le JSON du formulaire, les fichiers arrivent sous "images"
func (h *HouseHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	// Deux passes : validation déclarative des champs, puis passe
	// procédurale sur les tarifs
	if errs := req.Validate(); len(errs) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"errors":  errs,
		})
		return
	}

	tarifs, err := req.ValidateTarifs()
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	imageURLs, err := h.saveImages(r)
	if err != nil {
		log.Printf("Erreur lors de l'enregistrement des images: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement des images")
		return
	}

	house := &models.House{
		Titre:              req.Titre,
		Adresse:            req.Adresse,
		Description:        req.Description,
		Localisation:       req.Localisation,
		Tarifs:             tarifs,
		Chambres:           req.Chambres,
		SallesDeBain:       req.SallesDeBain,
		Commodites:         req.Commodites,
		Images:             imageURLs,
		Disponible:         req.Disponible,
		PeriodeDisponible:  req.PeriodeDisponible,
		DatesIndisponibles: req.DatesIndisponibles,
	}

	if err := h.houseRepo.Create(house); err != nil {
		log.Printf("Erreur lors de la création de la maison: %v", err)
		h.store.DeleteAll(stripPublicURL(imageURLs, h.publicURL))
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Maison créée: %s (ID: %s)", house.Titre, house.ID.Hex())
	utils.RespondSuccess(w, "Maison créée avec succès", house)
}

// Update modifie une maison. Les images suivent le protocole du
// formulaire : "keptImages" liste les URLs initiales conservées, les
// nouveaux fichiers arrivent sous "images", le reste est supprimé.
func (h *HouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	house, err := h.houseRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la maison: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if house == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHouseNotFound)
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

	tarifs, err := req.ValidateTarifs()
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	images, removed, err := h.diffImages(r, house.Images)
	if err != nil {
		log.Printf("Erreur lors du traitement des images: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement des images")
		return
	}

	update := bson.M{
		"title":       req.Titre,
		"address":     req.Adresse,
		"description": req.Description,
		"location":    req.Localisation,
		"rates":       tarifs,
		"rooms":       req.Chambres,
		"bathrooms":   req.SallesDeBain,
		"amenities":   req.Commodites,
		"images":      images,
		"available":   req.Disponible,
	}
	if req.PeriodeDisponible != nil {
		update["available_period"] = req.PeriodeDisponible
	}
	if req.DatesIndisponibles != nil {
		update["unavailable_dates"] = req.DatesIndisponibles
	}

	if err := h.houseRepo.Update(id, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de la maison: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	// Les fichiers retirés ne sont supprimés qu'une fois la mise à jour
	// persistée
	h.store.DeleteAll(stripPublicURL(removed, h.publicURL))

	log.Printf("✓ Maison mise à jour: %s", id.Hex())
	utils.RespondSuccess(w, "Maison mise à jour avec succès", nil)
}

// Delete supprime une maison et ses images
func (h *HouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	house, err := h.houseRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de la maison: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if house == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrHouseNotFound)
		return
	}

	if err := h.houseRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de la maison: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	h.store.DeleteAll(stripPublicURL(house.Images, h.publicURL))

	log.Printf("✓ Maison supprimée: %s", id.Hex())
	utils.RespondSuccess(w, "Maison supprimée avec succès", nil)
}

// parseForm décode le champ "data" du formulaire multipart
func (h *HouseHandler) parseForm(w http.ResponseWriter, r *http.Request) (*models.HouseRequest, bool) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("Erreur parsing form: %v", err)
		utils.RespondError(w, http.StatusBadRequest, "Erreur lors du parsing du formulaire")
		return nil, false
	}

	var req models.HouseRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return nil, false
	}

	return &req, true
}

// saveImages enregistre les fichiers "images" et retourne leurs URLs publiques
func (h *HouseHandler) saveImages(r *http.Request) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	relPaths, err := h.store.SaveAll(r.MultipartForm.File["images"])
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(relPaths))
	for _, p := range relPaths {
		urls = append(urls, h.publicURL+"/"+p)
	}
	return urls, nil
}

// diffImages applique le protocole conservées / retirées / nouvelles :
// les URLs initiales absentes de keptImages sont retirées, les
// nouveaux fichiers sont enregistrés à la suite
func (h *HouseHandler) diffImages(r *http.Request, initial []string) (images []string, removed []string, err error) {
	set := uploads.NewImageSet(initial)

	var kept []string
	if raw := r.FormValue("keptImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &kept); err != nil {
			return nil, nil, err
		}
	}

	keptSet := make(map[string]bool, len(kept))
	for _, u := range kept {
		keptSet[u] = true
	}
	for _, u := range initial {
		if !keptSet[u] {
			set.RemoveInitial(u)
		}
	}

	newURLs, err := h.saveImages(r)
	if err != nil {
		return nil, nil, err
	}

	images = append(set.Kept(), newURLs...)
	return images, set.Removed(), nil
}

// stripPublicURL ramène des URLs publiques aux chemins relatifs du store
func stripPublicURL(urls []string, publicURL string) []string {
	paths := make([]string, 0, len(urls))
	for _, u := range urls {
		paths = append(paths, strings.TrimPrefix(strings.TrimPrefix(u, publicURL), "/"))
	}
	return paths
}
