package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wizards/internal/data"
	"github.com/udisondev/wizards/internal/game/layered"
	"github.com/udisondev/wizards/internal/testutil"
)

func newTestRepository(t *testing.T) *EffectRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	return NewEffectRepository(testutil.SetupTestDB(t))
}

func TestEffectRepository_UpsertAndLoad(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	pump := data.EffectEntry{
		Name:       "pump",
		Definition: layered.NewEffectDefinition(layered.AttributePower, layered.OperationAdd, 3, 7),
		Duration:   2 * time.Second,
	}
	require.NoError(t, repo.Upsert(ctx, pump))

	catalog, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	got, err := catalog.Get("pump")
	require.NoError(t, err)
	assert.Equal(t, pump, got)

	// Upsert replaces in place.
	pump.Definition = layered.NewEffectDefinition(layered.AttributePower, layered.OperationMultiply, 2, 7)
	pump.Duration = 0
	require.NoError(t, repo.Upsert(ctx, pump))

	catalog, err = repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
	got, err = catalog.Get("pump")
	require.NoError(t, err)
	assert.Equal(t, layered.OperationMultiply, got.Definition.Operation())
	assert.Zero(t, got.Duration)
}

func TestEffectRepository_ImportCatalog(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	source, err := data.LoadEffectCatalog("../data/testdata/effects.yaml")
	require.NoError(t, err)
	require.NoError(t, repo.ImportCatalog(ctx, source))

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, source.Entries(), loaded.Entries())

	// Importing twice is idempotent.
	require.NoError(t, repo.ImportCatalog(ctx, source))
	loaded, err = repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Len(), loaded.Len())

	testutil.TruncateContent(t, repo.db)
	loaded, err = repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}

func TestEffectRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, data.EffectEntry{
		Name:       "paint",
		Definition: layered.NewEffectDefinition(layered.AttributeColor, layered.OperationSet, 8, 5),
	}))

	deleted, err := repo.Delete(ctx, "paint")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "paint")
	require.NoError(t, err)
	assert.False(t, deleted)

	catalog, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestEffectRepository_LoadRejectsBadRows(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.db.Exec(ctx, `
		INSERT INTO effect_definitions (name, attribute, operation, modification, layer)
		VALUES ('broken', 'mana', 'add', 1, 1)`)
	require.NoError(t, err)

	_, err = repo.LoadCatalog(ctx)
	assert.ErrorIs(t, err, layered.ErrUnknownAttribute)
}
