package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-fac/pkg/cache"
	"github.com/sirosfoundation/go-fac/pkg/message"
)

var _ cache.Store = (*Store)(nil)

func testConfig(t *testing.T) *Config {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	return &Config{
		URI:      uri,
		Database: "fac_test_" + uuid.NewString()[:8],
	}
}

func openStore(t *testing.T, cfg *Config) *Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := NewStore(ctx, cfg)
	require.NoError(t, err)
	return store
}

func testStore(t *testing.T) *Store {
	t.Helper()

	store := openStore(t, testConfig(t))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.bucket.Drop()
		_ = store.Close(ctx)
	})
	return store
}

func TestNewStore_RequiresURI(t *testing.T) {
	_, err := NewStore(context.Background(), &Config{})
	assert.Error(t, err)

	_, err = NewStore(context.Background(), nil)
	assert.Error(t, err)
}

func TestStore_SaveLoad(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "AuthorizeRequest_T1.xml", []byte("<AuthorizeRequest/>")))

	data, err := store.Load(ctx, "AuthorizeRequest_T1.xml")
	require.NoError(t, err)
	assert.Equal(t, "<AuthorizeRequest/>", string(data))
}

func TestStore_LatestRevisionWins(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "x.xml", []byte("first")))
	require.NoError(t, store.Save(ctx, "x.xml", []byte("second")))

	data, err := store.Load(ctx, "x.xml")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_LoadMissing(t *testing.T) {
	store := testStore(t)

	_, err := store.Load(context.Background(), "missing.xml")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_WithWriter(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	w := cache.NewWriter(store, nil)
	require.True(t, w.SaveResponse(ctx, message.Authorize, "T9", []byte("<AuthorizeResponse/>")))

	data, err := store.Load(ctx, "AuthorizeResponse_T9.xml")
	require.NoError(t, err)
	assert.Equal(t, "<AuthorizeResponse/>", string(data))
}

func TestStore_SaveReportsFlushFailure(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	// The live store owns cleanup of the test database
	live := openStore(t, cfg)
	t.Cleanup(func() {
		_ = live.bucket.Drop()
		_ = live.Close(ctx)
	})

	// The first save runs the bucket's index check, so later uploads only
	// touch the server when the stream is closed
	closed := openStore(t, cfg)
	require.NoError(t, closed.Save(ctx, "AuthorizeRequest_T1.xml", []byte("<AuthorizeRequest/>")))
	require.NoError(t, closed.Close(ctx))

	err := closed.Save(ctx, "AuthorizeRequest_T2.xml", []byte("<AuthorizeRequest/>"))
	assert.Error(t, err)

	w := cache.NewWriter(closed, nil)
	assert.False(t, w.SaveRequest(ctx, message.Authorize, "T3", []byte("<AuthorizeRequest/>")))

	_, err = live.Load(ctx, "AuthorizeRequest_T2.xml")
	assert.ErrorIs(t, err, ErrNotFound)
}
