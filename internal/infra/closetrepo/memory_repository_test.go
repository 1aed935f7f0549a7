package closetrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := testGarment(7, "Black tee", "#000000")
	second := testGarment(7, "White tee", "#FFFFFF")
	other := testGarment(99, "Stranger's tee", "#000000")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	got, found, err := repo.Get(ctx, 7, first.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, got)

	_, found, err = repo.Get(ctx, 7, other.ID)
	require.NoError(t, err)
	require.False(t, found)

	list, err := repo.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)

	first.Name = "Black crew tee"
	require.NoError(t, repo.Update(ctx, first))
	got, found, err = repo.Get(ctx, 7, first.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Black crew tee", got.Name)

	deleted, err := repo.Delete(ctx, 7, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = repo.Delete(ctx, 7, first.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = repo.Delete(ctx, 7, other.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestMemoryRepositoryNearestByColor(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	anchor := testGarment(7, "Black tee", "#000000")
	charcoal := testGarment(7, "Charcoal tee", "#36454F")
	white := testGarment(7, "White tee", "#FFFFFF")
	require.NoError(t, repo.Create(ctx, anchor))
	require.NoError(t, repo.Create(ctx, white))
	require.NoError(t, repo.Create(ctx, charcoal))

	matches, err := repo.NearestByColor(ctx, 7, anchor.Color, anchor.ID, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, charcoal.ID, matches[0].Garment.ID)
	require.Equal(t, white.ID, matches[1].Garment.ID)
	require.Less(t, matches[0].Distance, matches[1].Distance)

	matches, err = repo.NearestByColor(ctx, 7, anchor.Color, anchor.ID, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, charcoal.ID, matches[0].Garment.ID)
}

func TestMemoryProfileRepository(t *testing.T) {
	repo := NewMemoryProfileRepository()
	ctx := context.Background()

	_, found, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.False(t, found)

	profile := closet.DefaultProfile(7)
	profile.BodyType = outfit.BodyHourglass
	profile.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Save(ctx, profile))

	got, found, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, profile, got)

	require.NoError(t, repo.Delete(ctx, 7))
	_, found, err = repo.Get(ctx, 7)
	require.NoError(t, err)
	require.False(t, found)
}

func testGarment(userID int64, name, hex string) closet.Garment {
	color := outfit.MustHex(hex)
	now := time.Now().UTC()
	return closet.Garment{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      outfit.GarmentTop,
		Color:     color,
		ColorHex:  color.Hex(),
		ColorName: outfit.NameOf(color),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
