package notify

import (
	"context"

	"kobowave-backend/internal/models"
)

// Notifier is told about newly posted reviews. The abstraction allows
// swapping the log-backed implementation for a real channel without
// touching the handlers.
type Notifier interface {
	ReviewCreated(ctx context.Context, review *models.Review) error
}
