package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kobowave-backend/internal/models"
)

func validInput() *models.ReviewInput {
	return &models.ReviewInput{
		Type:      models.TypeMovie,
		ItemID:    "tt0848228",
		ItemTitle: "The Avengers",
		Content:   "Amazing movie with incredible plot twists!",
		Rating:    5,
		Author:    "MovieLover123",
	}
}

func TestForCreate_ValidPayload(t *testing.T) {
	assert.Empty(t, ForCreate(validInput()))
}

func TestForCreate_ValidRestaurantPayload(t *testing.T) {
	in := validInput()
	in.Type = models.TypeRestaurant
	in.ItemID = "1"
	in.ItemTitle = "Maseru Steakhouse"
	assert.Empty(t, ForCreate(in))
}

func TestForCreate_EmptyPayloadReportsEveryViolation(t *testing.T) {
	violations := ForCreate(&models.ReviewInput{})
	require.Len(t, violations, 6)

	// All fields reported at once, in declaration order.
	assert.Equal(t, []string{
		`type must be either "movie" or "restaurant"`,
		"itemId is required",
		"itemTitle is required",
		"content must be at least 10 characters long",
		"rating must be between 1 and 5",
		"author name is required",
	}, violations)
}

func TestForCreate_InvalidType(t *testing.T) {
	in := validInput()
	in.Type = "book"
	violations := ForCreate(in)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "movie")
}

func TestForCreate_RatingBounds(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 100} {
		in := validInput()
		in.Rating = rating
		violations := ForCreate(in)
		require.Len(t, violations, 1, "rating %d", rating)
		assert.Contains(t, violations[0], "rating")
	}
	for rating := 1; rating <= 5; rating++ {
		in := validInput()
		in.Rating = rating
		assert.Empty(t, ForCreate(in), "rating %d", rating)
	}
}

func TestForCreate_ContentTooShortAfterTrim(t *testing.T) {
	in := validInput()
	in.Content = "  short   "
	violations := ForCreate(in)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "content")
}

func TestForCreate_BlankTitleAndAuthor(t *testing.T) {
	in := validInput()
	in.ItemTitle = "   "
	in.Author = "\t"
	violations := ForCreate(in)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "itemTitle")
	assert.Contains(t, violations[1], "author")
}

func TestForUpdate_NothingSuppliedIsValid(t *testing.T) {
	assert.Empty(t, ForUpdate(&models.ReviewPatch{}))
}

func TestForUpdate_SuppliedFieldsChecked(t *testing.T) {
	short := "short"
	rating := 6
	violations := ForUpdate(&models.ReviewPatch{Content: &short, Rating: &rating})
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "content")
	assert.Contains(t, violations[1], "rating")
}

func TestForUpdate_SuppliedZeroValuesAreStillChecked(t *testing.T) {
	empty := ""
	zero := 0
	violations := ForUpdate(&models.ReviewPatch{Content: &empty, Rating: &zero})
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "content")
	assert.Contains(t, violations[1], "rating")
}

func TestForUpdate_PartialPatchValid(t *testing.T) {
	rating := 4
	assert.Empty(t, ForUpdate(&models.ReviewPatch{Rating: &rating}))

	content := "updated review text that is long enough"
	assert.Empty(t, ForUpdate(&models.ReviewPatch{Content: &content}))
}
