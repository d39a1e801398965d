package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func seeded(t *testing.T) *MemoryPickupRepository {
	t.Helper()
	repo := NewMemoryPickupRepository()
	require.NoError(t, repo.Seed(context.Background(), DemoPickups()))
	return repo
}

func TestMemoryListKeepsSeedOrder(t *testing.T) {
	repo := seeded(t)
	pickups, err := repo.ListPickups(context.Background())
	require.NoError(t, err)
	require.Len(t, pickups, len(DemoPickups()))
	for i, want := range DemoPickups() {
		assert.Equal(t, want.ID, pickups[i].ID)
	}
}

func TestMemorySeedIsIdempotent(t *testing.T) {
	repo := seeded(t)
	require.NoError(t, repo.Seed(context.Background(), DemoPickups()))
	pickups, err := repo.ListPickups(context.Background())
	require.NoError(t, err)
	assert.Len(t, pickups, len(DemoPickups()))
}

func TestMemoryGetUnknown(t *testing.T) {
	repo := seeded(t)
	_, err := repo.GetPickup(context.Background(), "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.SavePickup(context.Background(), model.Pickup{ID: "nope", Status: model.PickupStatusScheduled})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemoryDoesNotLeakMutations(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)

	got, err := repo.GetPickup(ctx, "PU-1004")
	require.NoError(t, err)
	got.Items[0].Name = "mutated"
	got.Items = append(got.Items, model.ScrapItem{ID: "x", Name: "x", Quantity: "1", Price: decimal.NewFromInt(1)})

	again, err := repo.GetPickup(ctx, "PU-1004")
	require.NoError(t, err)
	assert.Equal(t, "Copper Wire", again.Items[0].Name)
	assert.Len(t, again.Items, 2)
}

func TestMemorySavePersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)

	got, err := repo.GetPickup(ctx, "PU-1001")
	require.NoError(t, err)
	got.Status = model.PickupStatusAccepted
	require.NoError(t, repo.SavePickup(ctx, *got))

	got.Status = model.PickupStatusCancelled
	again, err := repo.GetPickup(ctx, "PU-1001")
	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusAccepted, again.Status)
}

func TestMemorySaveRejectsUnknownStatus(t *testing.T) {
	repo := seeded(t)
	err := repo.SavePickup(context.Background(), model.Pickup{ID: "PU-1001", Status: "LOST"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
}
