package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"kobowave-backend/internal/models"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return at
}

func filterElements(f bson.D) map[string]interface{} {
	out := make(map[string]interface{}, len(f))
	for _, e := range f {
		out[e.Key] = e.Value
	}
	return out
}

func TestBuildListFilter_EmptyFilterOnlyExcludesMarker(t *testing.T) {
	f := buildListFilter(Filter{})
	require.Len(t, f, 1)
	assert.Equal(t, "_id", f[0].Key)
}

func TestBuildListFilter_ComposesEqualityPredicates(t *testing.T) {
	f := buildListFilter(Filter{Type: models.TypeMovie, ItemID: "tt0848228", AuthorID: "u1"})
	elems := filterElements(f)

	assert.Equal(t, models.TypeMovie, elems["type"])
	assert.Equal(t, "tt0848228", elems["item_id"])
	assert.Equal(t, "u1", elems["author_id"])
}

func TestBuildListFilter_CommutativeComposition(t *testing.T) {
	// Application order of the filters must not change the predicate set.
	a := filterElements(buildListFilter(Filter{Type: models.TypeMovie, AuthorID: "u1"}))
	b := filterElements(buildListFilter(Filter{AuthorID: "u1", Type: models.TypeMovie}))
	assert.Equal(t, a, b)
}

func TestListSort_NewestFirstWithStableTieBreak(t *testing.T) {
	sort := listSort()
	require.Len(t, sort, 2)
	assert.Equal(t, bson.E{Key: "created_at", Value: -1}, sort[0])
	assert.Equal(t, bson.E{Key: "_id", Value: -1}, sort[1])
}

func TestBuildPatchUpdate_AlwaysReassignsUpdatedAt(t *testing.T) {
	update := buildPatchUpdate(&models.ReviewPatch{})

	assert.Equal(t, bson.M{"updated_at": true}, update["$currentDate"])
	_, hasSet := update["$set"]
	assert.False(t, hasSet, "empty patch must not produce a $set stage")
}

func TestBuildPatchUpdate_MergesOnlySuppliedFields(t *testing.T) {
	rating := 4
	update := buildPatchUpdate(&models.ReviewPatch{Rating: &rating})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"rating": 4}, set)
}

func TestBuildPatchUpdate_ContentAndRating(t *testing.T) {
	content := "a completely rewritten review body"
	rating := 2
	update := buildPatchUpdate(&models.ReviewPatch{Content: &content, Rating: &rating})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, content, set["content"])
	assert.Equal(t, 2, set["rating"])
	// createdAt is immutable; the patch path must never touch it.
	assert.NotContains(t, set, "created_at")
	assert.NotContains(t, update["$currentDate"].(bson.M), "created_at")
}

func TestToReview_NormalizesMixedTimestampShapes(t *testing.T) {
	id := bson.NewObjectID()
	doc := &reviewDoc{
		ID:        id,
		Type:      models.TypeRestaurant,
		ItemID:    "2",
		ItemTitle: "Thaba-Bosiu Cultural Restaurant",
		Content:   "Authentic food and great performances.",
		Rating:    5,
		Author:    "FoodExplorer",
		AuthorID:  "user3",
		CreatedAt: "2024-01-13T19:20:00Z",
		UpdatedAt: bson.NewDateTimeFromTime(mustParse(t, "2024-01-14T08:00:00Z")),
	}

	review := toReview(doc)
	assert.Equal(t, id, review.ID)
	assert.Equal(t, "2024-01-13T19:20:00Z", review.CreatedAt)
	assert.Equal(t, "2024-01-14T08:00:00Z", review.UpdatedAt)
	assert.Equal(t, 5, review.Rating)
}

func TestUpdate_MalformedIDIsNotFound(t *testing.T) {
	// The lookup rejects a malformed id before any write, so the update
	// filter is always built from a parsed document id.
	repo := &ReviewRepo{}
	content := "an updated review body long enough"

	review, err := repo.Update(context.Background(), "not-a-hex-id", &models.ReviewPatch{Content: &content})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_MalformedIDIsNotFound(t *testing.T) {
	repo := &ReviewRepo{}

	review, err := repo.Delete(context.Background(), "not-a-hex-id")
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkerDoc_RecordsInitialization(t *testing.T) {
	marker := markerDoc("reviews")

	assert.Equal(t, true, marker["initialized"])
	assert.NotEmpty(t, marker["bootstrap_id"])
	assert.NotEmpty(t, marker["created_at"])
	assert.Contains(t, marker["message"], "reviews")
}
