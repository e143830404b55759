package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kobowave-backend/internal/middleware"
	"kobowave-backend/internal/models"
	"kobowave-backend/internal/notify"
	"kobowave-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type ReviewHandler struct {
	store    repository.ReviewStore
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewReviewHandler(store repository.ReviewStore, notifier notify.Notifier, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// --- GET /api/reviews ---

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.Filter{
		Type:     q.Get("type"),
		ItemID:   q.Get("itemId"),
		AuthorID: q.Get("authorId"),
	}

	reviews, err := h.store.List(r.Context(), filter)
	if err != nil {
		h.respondError(w, err, "failed to fetch reviews")
		return
	}
	writeList(w, reviews, len(reviews))
}

// --- GET /api/reviews/movie/{movieId} ---

func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListByMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		h.respondError(w, err, "failed to fetch movie reviews")
		return
	}
	writeList(w, reviews, len(reviews))
}

// --- GET /api/reviews/restaurant/{restaurantId} ---

func (h *ReviewHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListByRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		h.respondError(w, err, "failed to fetch restaurant reviews")
		return
	}
	writeList(w, reviews, len(reviews))
}

// --- GET /api/reviews/{id} ---

func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	review, err := h.store.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "failed to fetch review")
		return
	}
	writeData(w, http.StatusOK, review)
}

// --- POST /api/reviews ---

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An authenticated caller's identity backfills what the payload omits.
	if strings.TrimSpace(in.AuthorID) == "" {
		in.AuthorID = middleware.GetUserID(r.Context())
	}
	if strings.TrimSpace(in.Author) == "" {
		in.Author = middleware.GetUserName(r.Context())
	}

	created, err := h.store.Create(r.Context(), &in)
	if err != nil {
		h.respondError(w, err, "failed to create review")
		return
	}

	go func() {
		if err := h.notifier.ReviewCreated(context.Background(), created); err != nil {
			h.log.Warn().Err(err).Msg("review notification failed")
		}
	}()

	writeData(w, http.StatusCreated, created)
}

// --- PUT /api/reviews/{id} ---

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.authorizeOwner(w, r, id) {
		return
	}

	var patch models.ReviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.store.Update(r.Context(), id, &patch)
	if err != nil {
		h.respondError(w, err, "failed to update review")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// --- DELETE /api/reviews/{id} ---

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.authorizeOwner(w, r, id) {
		return
	}

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "failed to delete review")
		return
	}
	writeData(w, http.StatusOK, deleted)
}

// authorizeOwner rejects mutations of someone else's review when the caller
// is authenticated. Anonymous reviews and anonymous callers keep the open
// behavior; the store itself never authenticates.
func (h *ReviewHandler) authorizeOwner(w http.ResponseWriter, r *http.Request, id string) bool {
	callerID := middleware.GetUserID(r.Context())
	if callerID == "" {
		return true
	}

	review, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "failed to fetch review")
		return false
	}
	if review.AuthorID != models.AnonymousAuthorID && review.AuthorID != callerID {
		writeError(w, http.StatusForbidden, "you can only modify your own reviews")
		return false
	}
	return true
}

// respondError maps the store's typed outcomes to wire responses. Store
// failures surface as a generic message with no internal detail.
func (h *ReviewHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	var verr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "review not found")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":    false,
			"error":      "validation failed",
			"violations": verr.Violations,
		})
	default:
		h.log.Error().Err(err).Msg(fallback)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
