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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventHandler gère les requêtes sur les activités
type EventHandler struct {
	eventRepo *database.EventRepository
	store     *uploads.Store
	publicURL string
}

// NewEventHandler crée une nouvelle instance de EventHandler
func NewEventHandler(db *mongo.Database, store *uploads.Store, publicURL string) *EventHandler {
	return &EventHandler{
		eventRepo: database.NewEventRepository(db),
		store:     store,
		publicURL: publicURL,
	}
}

// GetAll retourne les activités filtrées par recherche et type, paginées
func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	events, err := h.eventRepo.FindAll()
	if err != nil {
		log.Printf("Erreur lors de la récupération des activités: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	q := r.URL.Query()
	filtered := listing.FilterEvents(events, listing.EventFilters{
		Recherche: q.Get("search"),
		Type:      q.Get("type"),
	})

	pageSize := 9
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
		pageSize = v
	}
	pager := listing.NewPager(len(filtered), pageSize)
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		pager.GoTo(v)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"events":     listing.Page(pager, filtered),
		"total":      len(filtered),
		"page":       pager.Current(),
		"totalPages": pager.TotalPages(),
	})
}

// GetDetails retourne une activité par ID
func (h *EventHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	event, err := h.eventRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'activité: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if event == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrEventNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, event)
}

// Add crée une activité. La validation ne porte que sur les champs de
// la variante sélectionnée par le type.
func (h *EventHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	event, err := h.buildEvent(req)
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
	event.Images = imageURLs

	if err := h.eventRepo.Create(event); err != nil {
		log.Printf("Erreur lors de la création de l'activité: %v", err)
		h.store.DeleteAll(stripPublicURL(imageURLs, h.publicURL))
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	log.Printf("✓ Activité créée: %s [%s] (ID: %s)", event.Titre, event.Type, event.ID.Hex())
	utils.RespondSuccess(w, "Activité créée avec succès", event)
}

// Update modifie une activité, images comprises (protocole conservées /
// retirées / nouvelles)
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	existing, err := h.eventRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'activité: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if existing == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrEventNotFound)
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

	event, err := h.buildEvent(req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	images, removed, err := h.diffImages(r, existing.Images)
	if err != nil {
		log.Printf("Erreur lors du traitement des images: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement des images")
		return
	}

	// Changer le type remplace la variante : les détails des autres
	// variantes sont remis à nil
	update := bson.M{
		"title":            event.Titre,
		"description":      event.Description,
		"type":             event.Type,
		"period":           event.Periode,
		"base_price":       event.PrixBase,
		"cojoin_presence":  event.PresenceConjoint,
		"cojoin_price":     event.PrixConjoint,
		"child_presence":   event.PresenceEnfant,
		"child_price":      event.PrixEnfant,
		"max_participants": event.MaxParticipants,
		"images":           images,
		"voyage":           event.Voyage,
		"excursion":        event.Excursion,
		"club":             event.Club,
		"activite":         event.Activite,
	}

	if err := h.eventRepo.Update(id, update); err != nil {
		log.Printf("Erreur lors de la mise à jour de l'activité: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	h.store.DeleteAll(stripPublicURL(removed, h.publicURL))

	log.Printf("✓ Activité mise à jour: %s", id.Hex())
	utils.RespondSuccess(w, "Activité mise à jour avec succès", nil)
}

// Delete supprime une activité et ses images
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := ParseID(w, r)
	if !ok {
		return
	}

	event, err := h.eventRepo.FindByID(id)
	if err != nil {
		log.Printf("Erreur lors de la recherche de l'activité: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}
	if event == nil {
		utils.RespondError(w, http.StatusNotFound, constants.ErrEventNotFound)
		return
	}

	if err := h.eventRepo.Delete(id); err != nil {
		log.Printf("Erreur lors de la suppression de l'activité: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	h.store.DeleteAll(stripPublicURL(event.Images, h.publicURL))

	log.Printf("✓ Activité supprimée: %s", id.Hex())
	utils.RespondSuccess(w, "Activité supprimée avec succès", nil)
}

// parseForm décode le champ "data" du formulaire multipart
func (h *EventHandler) parseForm(w http.ResponseWriter, r *http.Request) (*models.EventRequest, bool) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("Erreur parsing form: %v", err)
		utils.RespondError(w, http.StatusBadRequest, "Erreur lors du parsing du formulaire")
		return nil, false
	}

	var req models.EventRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return nil, false
	}

	return &req, true
}

// buildEvent convertit le formulaire validé en activité : parse les
// prix et ne copie que la variante de détails sélectionnée par le type
func (h *EventHandler) buildEvent(req *models.EventRequest) (*models.Event, error) {
	prixBase, err := strconv.ParseFloat(req.PrixBase, 64)
	if err != nil {
		return nil, errInvalidPrice("basePrice")
	}

	var prixConjoint, prixEnfant float64
	if req.PresenceConjoint {
		if prixConjoint, err = strconv.ParseFloat(req.PrixConjoint, 64); err != nil {
			return nil, errInvalidPrice("cojoinPrice")
		}
	}
	if req.PresenceEnfant {
		if prixEnfant, err = strconv.ParseFloat(req.PrixEnfant, 64); err != nil {
			return nil, errInvalidPrice("childPrice")
		}
	}

	voyage, excursion, club, activite := req.Details()

	return &models.Event{
		Titre:            req.Titre,
		Description:      req.Description,
		Type:             req.Type,
		Periode:          models.Periode{Debut: req.Debut, Fin: req.Fin},
		PrixBase:         prixBase,
		PresenceConjoint: req.PresenceConjoint,
		PrixConjoint:     prixConjoint,
		PresenceEnfant:   req.PresenceEnfant,
		PrixEnfant:       prixEnfant,
		MaxParticipants:  req.MaxParticipants,
		Voyage:           voyage,
		Excursion:        excursion,
		Club:             club,
		Activite:         activite,
	}, nil
}

// saveImages enregistre les fichiers "images" et retourne leurs URLs publiques
func (h *EventHandler) saveImages(r *http.Request) ([]string, error) {
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

// diffImages applique le protocole conservées / retirées / nouvelles
func (h *EventHandler) diffImages(r *http.Request, initial []string) (images []string, removed []string, err error) {
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

type priceError struct {
	field string
}

func (e priceError) Error() string {
	return "le champ " + e.field + " n'est pas un prix valide"
}

func errInvalidPrice(field string) error {
	return priceError{field: field}
}
