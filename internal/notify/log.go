package notify

import (
	"context"

	"github.com/rs/zerolog"

	"kobowave-backend/internal/models"
)

// LogNotifier implements Notifier by writing a structured log line.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReviewCreated(ctx context.Context, review *models.Review) error {
	n.log.Info().
		Str("review_id", review.ID.Hex()).
		Str("type", review.Type).
		Str("item_title", review.ItemTitle).
		Int("rating", review.Rating).
		Str("author", review.Author).
		Msg("new review posted")
	return nil
}
