package catalogrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
)

func TestSeedMissing_Idempotent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	added, err := repo.SeedMissing(ctx, catalog.DefaultActions())
	require.NoError(t, err)
	require.Equal(t, len(catalog.DefaultActions()), added)

	added, err = repo.SeedMissing(ctx, catalog.DefaultActions())
	require.NoError(t, err)
	require.Zero(t, added)

	actions, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, actions, len(catalog.DefaultActions()))
}

func TestListActive_PreservesSeedOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.SeedMissing(ctx, catalog.DefaultActions())
	require.NoError(t, err)

	actions, err := repo.ListActive(ctx)
	require.NoError(t, err)
	for i, want := range catalog.DefaultActions() {
		require.Equal(t, want.Name, actions[i].Name)
	}
}

func TestListActive_SkipsInactive(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	seed := []catalog.Action{
		{ID: "a", Name: "active one", Category: catalog.CategoryEnergy, Active: true},
		{ID: "b", Name: "inactive one", Category: catalog.CategoryEnergy, Active: false},
	}
	_, err := repo.SeedMissing(ctx, seed)
	require.NoError(t, err)

	actions, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.Equal(t, "active one", actions[0].Name)
}

func TestSeedMissing_AssignsIDs(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.SeedMissing(context.Background(), []catalog.Action{{Name: "no id yet", Active: true}})
	require.NoError(t, err)

	actions, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, actions[0].ID)
}
