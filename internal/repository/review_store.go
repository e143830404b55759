package repository

import (
	"context"

	"kobowave-backend/internal/models"
)

// Filter narrows a review listing. Zero-value fields are ignored; set
// fields combine with AND semantics.
type Filter struct {
	Type     string
	ItemID   string
	AuthorID string
}

// ReviewStore is the contract of the review collection adapter. Handlers
// depend on this interface so an in-memory double can stand in for Mongo
// in tests.
type ReviewStore interface {
	List(ctx context.Context, f Filter) ([]*models.Review, error)
	ListByMovie(ctx context.Context, itemID string) ([]*models.Review, error)
	ListByRestaurant(ctx context.Context, itemID string) ([]*models.Review, error)
	FindByID(ctx context.Context, id string) (*models.Review, error)
	Create(ctx context.Context, in *models.ReviewInput) (*models.Review, error)
	Update(ctx context.Context, id string, patch *models.ReviewPatch) (*models.Review, error)
	Delete(ctx context.Context, id string) (*models.Review, error)
}
