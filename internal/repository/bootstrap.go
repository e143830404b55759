package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// bootstrapMarkerID is the fixed id of the document written into an empty
// collection so that "empty but initialized" is distinguishable from
// "never touched".
const bootstrapMarkerID = "init"

// markerStore abstracts the two store calls bootstrapping performs, so the
// ensure logic is testable without a live store.
type markerStore interface {
	hasAnyDocument(ctx context.Context, collection string) (bool, error)
	writeMarker(ctx context.Context, collection string, marker bson.M) error
}

// mongoMarkerStore is the production markerStore.
type mongoMarkerStore struct {
	db *mongo.Database
}

func (s *mongoMarkerStore) hasAnyDocument(ctx context.Context, collection string) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, bson.D{}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// writeMarker collapses concurrent writers on the fixed marker id, so even
// two processes racing here cannot produce a duplicate.
func (s *mongoMarkerStore) writeMarker(ctx context.Context, collection string, marker bson.M) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": bootstrapMarkerID},
		bson.M{"$setOnInsert": marker},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

// Bootstrapper idempotently ensures the well-known collections exist before
// the service accepts review traffic.
type Bootstrapper struct {
	store markerStore
	log   zerolog.Logger
}

func NewBootstrapper(db *mongo.Database, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{store: &mongoMarkerStore{db: db}, log: log}
}

// EnsureCollections handles each collection independently: a failure is
// logged as a warning and does not abort bootstrapping of the others, and
// never prevents the process from serving traffic.
func (b *Bootstrapper) EnsureCollections(ctx context.Context, names []string) {
	for _, name := range names {
		if err := b.ensureCollection(ctx, name); err != nil {
			b.log.Warn().Err(err).Str("collection", name).Msg("collection bootstrap failed")
			continue
		}
		b.log.Debug().Str("collection", name).Msg("collection ready")
	}
}

func (b *Bootstrapper) ensureCollection(ctx context.Context, name string) error {
	exists, err := b.store.hasAnyDocument(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return b.store.writeMarker(ctx, name, markerDoc(name))
}

func markerDoc(name string) bson.M {
	return bson.M{
		"initialized":  true,
		"bootstrap_id": uuid.NewString(),
		"created_at":   time.Now().UTC().Format(time.RFC3339Nano),
		"message":      fmt.Sprintf("collection %s initialized", name),
	}
}
