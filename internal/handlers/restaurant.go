package handlers

import (
	"net/http"
	"strings"

	"kobowave-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

// RestaurantHandler serves the static restaurant listing source.
type RestaurantHandler struct {
	listings []models.Restaurant
}

func NewRestaurantHandler(listings []models.Restaurant) *RestaurantHandler {
	return &RestaurantHandler{listings: listings}
}

// --- GET /api/restaurants ---

func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.listings, len(h.listings))
}

// --- GET /api/restaurants/search ---

func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
	if query == "" {
		writeList(w, h.listings, len(h.listings))
		return
	}

	matches := make([]models.Restaurant, 0, len(h.listings))
	for _, listing := range h.listings {
		if strings.Contains(strings.ToLower(listing.Name), query) ||
			strings.Contains(strings.ToLower(listing.Cuisine), query) ||
			strings.Contains(strings.ToLower(listing.Location), query) {
			matches = append(matches, listing)
		}
	}
	writeList(w, matches, len(matches))
}

// --- GET /api/restaurants/{id} ---

func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, listing := range h.listings {
		if listing.ID == id {
			writeData(w, http.StatusOK, listing)
			return
		}
	}
	writeError(w, http.StatusNotFound, "restaurant not found")
}
