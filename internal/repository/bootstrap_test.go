package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeMarkerStore emulates the store's fixed-id upsert: writing twice to the
// same collection can never leave a second marker.
type fakeMarkerStore struct {
	markers    map[string][]bson.M
	lookupErrs map[string]error
	writeErrs  map[string]error
	writeCalls map[string]int
}

func newFakeMarkerStore() *fakeMarkerStore {
	return &fakeMarkerStore{
		markers:    map[string][]bson.M{},
		lookupErrs: map[string]error{},
		writeErrs:  map[string]error{},
		writeCalls: map[string]int{},
	}
}

func (s *fakeMarkerStore) hasAnyDocument(ctx context.Context, collection string) (bool, error) {
	if err := s.lookupErrs[collection]; err != nil {
		return false, err
	}
	return len(s.markers[collection]) > 0, nil
}

func (s *fakeMarkerStore) writeMarker(ctx context.Context, collection string, marker bson.M) error {
	if err := s.writeErrs[collection]; err != nil {
		return err
	}
	s.writeCalls[collection]++
	if len(s.markers[collection]) == 0 {
		s.markers[collection] = append(s.markers[collection], marker)
	}
	return nil
}

func newTestBootstrapper(store markerStore) *Bootstrapper {
	return &Bootstrapper{store: store, log: zerolog.Nop()}
}

func TestEnsureCollections_DoubleRunLeavesExactlyOneMarker(t *testing.T) {
	store := newFakeMarkerStore()
	b := newTestBootstrapper(store)

	b.EnsureCollections(context.Background(), []string{"reviews"})
	b.EnsureCollections(context.Background(), []string{"reviews"})

	require.Len(t, store.markers["reviews"], 1)
	// The second run found the first run's marker and never wrote again.
	assert.Equal(t, 1, store.writeCalls["reviews"])
}

func TestEnsureCollections_NonEmptyCollectionLeftUntouched(t *testing.T) {
	store := newFakeMarkerStore()
	store.markers["reviews"] = []bson.M{{"_id": bson.NewObjectID()}}
	b := newTestBootstrapper(store)

	b.EnsureCollections(context.Background(), []string{"reviews"})

	assert.Zero(t, store.writeCalls["reviews"])
}

func TestEnsureCollections_LookupFailureDoesNotAbortOthers(t *testing.T) {
	store := newFakeMarkerStore()
	store.lookupErrs["movies"] = errors.New("connection reset")
	b := newTestBootstrapper(store)

	b.EnsureCollections(context.Background(), []string{"reviews", "movies", "restaurants", "users"})

	assert.Len(t, store.markers["reviews"], 1)
	assert.Empty(t, store.markers["movies"])
	assert.Len(t, store.markers["restaurants"], 1)
	assert.Len(t, store.markers["users"], 1)
}

func TestEnsureCollections_WriteFailureIsIsolatedToo(t *testing.T) {
	store := newFakeMarkerStore()
	store.writeErrs["reviews"] = errors.New("write concern error")
	b := newTestBootstrapper(store)

	b.EnsureCollections(context.Background(), []string{"reviews", "users"})

	assert.Empty(t, store.markers["reviews"])
	assert.Len(t, store.markers["users"], 1)
}
