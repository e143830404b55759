package repository

import (
	"context"
	"errors"
	"strings"

	"kobowave-backend/internal/database"
	"kobowave-backend/internal/models"
	"kobowave-backend/internal/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ReviewRepo is the only component that reads or writes the reviews
// collection. It holds no state besides the collection handle; concurrent
// mutations of the same document are serialized by the store.
type ReviewRepo struct {
	collection *mongo.Collection
}

var _ ReviewStore = (*ReviewRepo)(nil)

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{
		collection: database.GetCollection("reviews"),
	}
}

// reviewDoc is the stored shape. Timestamps decode loosely because a
// document may carry either a native datetime or a legacy string value.
type reviewDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Type      string        `bson:"type"`
	ItemID    string        `bson:"item_id"`
	ItemTitle string        `bson:"item_title"`
	Content   string        `bson:"content"`
	Rating    int           `bson:"rating"`
	Author    string        `bson:"author"`
	AuthorID  string        `bson:"author_id"`
	CreatedAt interface{}   `bson:"created_at"`
	UpdatedAt interface{}   `bson:"updated_at"`
}

func toReview(doc *reviewDoc) *models.Review {
	return &models.Review{
		ID:        doc.ID,
		Type:      doc.Type,
		ItemID:    doc.ItemID,
		ItemTitle: doc.ItemTitle,
		Content:   doc.Content,
		Rating:    doc.Rating,
		Author:    doc.Author,
		AuthorID:  doc.AuthorID,
		CreatedAt: wireTimestampString(doc.CreatedAt),
		UpdatedAt: wireTimestampString(doc.UpdatedAt),
	}
}

// buildListFilter composes equality predicates with AND semantics. The
// bootstrap marker shares the collection and is never a review.
func buildListFilter(f Filter) bson.D {
	filter := bson.D{{Key: "_id", Value: bson.M{"$ne": bootstrapMarkerID}}}
	if f.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: f.Type})
	}
	if f.ItemID != "" {
		filter = append(filter, bson.E{Key: "item_id", Value: f.ItemID})
	}
	if f.AuthorID != "" {
		filter = append(filter, bson.E{Key: "author_id", Value: f.AuthorID})
	}
	return filter
}

// listSort orders newest first; _id breaks created_at ties so two documents
// written in the same millisecond keep a stable relative order.
func listSort() bson.D {
	return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
}

func (r *ReviewRepo) List(ctx context.Context, f Filter) ([]*models.Review, error) {
	cursor, err := r.collection.Find(ctx, buildListFilter(f), options.Find().SetSort(listSort()))
	if err != nil {
		return nil, &StoreError{Op: "list reviews", Err: err}
	}

	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StoreError{Op: "list reviews", Err: err}
	}

	reviews := make([]*models.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, toReview(&docs[i]))
	}
	return reviews, nil
}

func (r *ReviewRepo) ListByMovie(ctx context.Context, itemID string) ([]*models.Review, error) {
	return r.List(ctx, Filter{Type: models.TypeMovie, ItemID: itemID})
}

func (r *ReviewRepo) ListByRestaurant(ctx context.Context, itemID string) ([]*models.Review, error) {
	return r.List(ctx, Filter{Type: models.TypeRestaurant, ItemID: itemID})
}

func (r *ReviewRepo) FindByID(ctx context.Context, id string) (*models.Review, error) {
	doc, err := r.findDoc(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReview(doc), nil
}

func (r *ReviewRepo) findDoc(ctx context.Context, id string) (*reviewDoc, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never name an existing document.
		return nil, ErrNotFound
	}

	var doc reviewDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "find review", Err: err}
	}
	return &doc, nil
}

// Create validates the payload, persists it with server-assigned timestamps
// and re-reads the committed document. The re-read is required: the
// timestamp sentinel is not resolved until the store commits it.
func (r *ReviewRepo) Create(ctx context.Context, in *models.ReviewInput) (*models.Review, error) {
	if violations := validation.ForCreate(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	authorID := strings.TrimSpace(in.AuthorID)
	if authorID == "" {
		authorID = models.AnonymousAuthorID
	}

	id := bson.NewObjectID()
	update := bson.M{
		"$set": bson.M{
			"type":       in.Type,
			"item_id":    in.ItemID,
			"item_title": in.ItemTitle,
			"content":    in.Content,
			"rating":     in.Rating,
			"author":     in.Author,
			"author_id":  authorID,
		},
		"$currentDate": serverTimestamp("created_at", "updated_at"),
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, &StoreError{Op: "create review", Err: err}
	}

	doc, err := r.findDoc(ctx, id.Hex())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The document was just committed; absence means the store
			// misbehaved, not that the caller targeted a missing review.
			return nil, &StoreError{Op: "read back created review", Err: err}
		}
		return nil, err
	}
	return toReview(doc), nil
}

// buildPatchUpdate merges only the supplied fields and always reassigns
// updated_at. type, item_id and author are immutable for the review's
// entire lifetime.
func buildPatchUpdate(patch *models.ReviewPatch) bson.M {
	update := bson.M{"$currentDate": serverTimestamp("updated_at")}
	set := bson.M{}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Rating != nil {
		set["rating"] = *patch.Rating
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}

func (r *ReviewRepo) Update(ctx context.Context, id string, patch *models.ReviewPatch) (*models.Review, error) {
	existing, err := r.findDoc(ctx, id)
	if err != nil {
		return nil, err
	}

	if violations := validation.ForUpdate(patch); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": existing.ID}, buildPatchUpdate(patch)); err != nil {
		return nil, &StoreError{Op: "update review", Err: err}
	}

	doc, err := r.findDoc(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReview(doc), nil
}

// Delete removes the review and returns its last-known state; callers
// depend on receiving the content of what was removed.
func (r *ReviewRepo) Delete(ctx context.Context, id string) (*models.Review, error) {
	doc, err := r.findDoc(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": doc.ID}); err != nil {
		return nil, &StoreError{Op: "delete review", Err: err}
	}
	return toReview(doc), nil
}

// EnsureIndexes creates the indexes backing filtered, ordered listing.
func (r *ReviewRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "item_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
