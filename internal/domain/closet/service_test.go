package closet

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
)

func TestAddGarmentWithExplicitColor(t *testing.T) {
	env := newTestEnv()

	garment, err := env.svc.AddGarment(context.Background(), 7, AddGarmentRequest{
		Name:     "  Linen shirt ",
		Type:     "top",
		ColorHex: "#C0392B",
		Tags:     []string{"summer", " summer ", "", "casual"},
	})
	require.NoError(t, err)
	require.Equal(t, "Linen shirt", garment.Name)
	require.Equal(t, outfit.GarmentTop, garment.Type)
	require.Equal(t, "#C0392B", garment.ColorHex)
	require.Equal(t, "red", garment.ColorName)
	require.Equal(t, []string{"summer", "casual"}, garment.Tags)
	require.Empty(t, garment.PhotoKey)

	stored, found, err := env.garments.Get(context.Background(), 7, garment.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, garment, stored)
}

func TestAddGarmentFromPhoto(t *testing.T) {
	env := newTestEnv()
	env.extractor.color = outfit.MustHex("#1F3A5F")

	photo := []byte("fake-jpeg-bytes")
	garment, err := env.svc.AddGarment(context.Background(), 7, AddGarmentRequest{
		Name:      "Denim jacket",
		Type:      "outerwear",
		Photo:     photo,
		PhotoMime: "image/jpeg",
	})
	require.NoError(t, err)
	require.Equal(t, "navy", garment.ColorName)
	require.NotEmpty(t, garment.PhotoKey)
	require.Equal(t, photo, env.photos.data[garment.PhotoKey])
	require.Equal(t, photo, env.extractor.lastData)
}

func TestAddGarmentValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "", Type: "top", ColorHex: "#000000"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Hat", Type: "hat", ColorHex: "#000000"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Shirt", Type: "top", ColorHex: "#ZZZZZZ"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Shirt", Type: "top"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestUpdateGarmentRecomputesColorName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	garment, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Shirt", Type: "top", ColorHex: "#000000"})
	require.NoError(t, err)
	require.Equal(t, "black", garment.ColorName)

	hex := "#FFFFFF"
	updated, err := env.svc.UpdateGarment(ctx, 7, garment.ID, UpdateGarmentRequest{ColorHex: &hex})
	require.NoError(t, err)
	require.Equal(t, "white", updated.ColorName)

	// An explicit name edit wins and may diverge from the color.
	name := "ivory"
	updated, err = env.svc.UpdateGarment(ctx, 7, garment.ID, UpdateGarmentRequest{ColorName: &name})
	require.NoError(t, err)
	require.Equal(t, "ivory", updated.ColorName)
	require.Equal(t, "#FFFFFF", updated.ColorHex)
}

func TestDeleteGarmentRemovesPhoto(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	garment, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{
		Name:  "Jacket",
		Type:  "outerwear",
		Photo: []byte("img"),
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteGarment(ctx, 7, garment.ID))
	require.NotContains(t, env.photos.data, garment.PhotoKey)

	err = env.svc.DeleteGarment(ctx, 7, garment.ID)
	require.True(t, apperrors.IsCode(err, "garment_not_found"))
}

func TestSimilarGarments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	anchor, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Black tee", Type: "top", ColorHex: "#000000"})
	require.NoError(t, err)
	charcoal, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Charcoal tee", Type: "top", ColorHex: "#36454F"})
	require.NoError(t, err)
	white, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "White tee", Type: "top", ColorHex: "#FFFFFF"})
	require.NoError(t, err)
	_, err = env.svc.AddGarment(ctx, 99, AddGarmentRequest{Name: "Other user", Type: "top", ColorHex: "#000000"})
	require.NoError(t, err)

	matches, err := env.svc.SimilarGarments(ctx, 7, anchor.ID, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, charcoal.ID, matches[0].Garment.ID)
	require.Equal(t, white.ID, matches[1].Garment.ID)
	require.Less(t, matches[0].Distance, matches[1].Distance)
}

func TestSimilarGarmentsConfiguredDefaultLimit(t *testing.T) {
	env := newTestEnv()
	env.svc = NewService(Config{SimilarLimit: 1}, env.garments, env.profiles, env.photos, env.extractor, env.engine, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	anchor, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Black tee", Type: "top", ColorHex: "#000000"})
	require.NoError(t, err)
	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Charcoal tee", Type: "top", ColorHex: "#36454F"})
	require.NoError(t, err)
	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "White tee", Type: "top", ColorHex: "#FFFFFF"})
	require.NoError(t, err)

	matches, err := env.svc.SimilarGarments(ctx, 7, anchor.ID, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1, "an unset limit must use the configured default")

	matches, err = env.svc.SimilarGarments(ctx, 7, anchor.ID, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2, "an explicit limit overrides the configured default")
}

func TestProfileDefaultsAndUpdates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	profile, err := env.svc.Profile(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, DefaultProfile(7), profile)

	bodyType := "hourglass"
	undertone := "cool"
	formality := 4
	updated, err := env.svc.UpdateProfile(ctx, 7, UpdateProfileRequest{
		BodyType:       &bodyType,
		Undertone:      &undertone,
		FavoriteColors: []string{"black", "white"},
		Formality:      &formality,
	})
	require.NoError(t, err)
	require.Equal(t, outfit.BodyHourglass, updated.BodyType)
	require.Equal(t, outfit.UndertoneCool, updated.Undertone)
	require.Equal(t, []string{"black", "white"}, updated.FavoriteColors)
	require.Equal(t, 4, updated.Formality)

	reloaded, err := env.svc.Profile(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, updated, reloaded)

	require.NoError(t, env.svc.ResetProfile(ctx, 7))
	profile, err = env.svc.Profile(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, DefaultProfile(7), profile)
}

func TestUpdateProfileValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	bad := "pear"
	_, err := env.svc.UpdateProfile(ctx, 7, UpdateProfileRequest{BodyType: &bad})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = env.svc.UpdateProfile(ctx, 7, UpdateProfileRequest{Undertone: &bad})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	formality := 6
	_, err = env.svc.UpdateProfile(ctx, 7, UpdateProfileRequest{Formality: &formality})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSuggestOutfitsFeedsEngineSnapshot(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	top, err := env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Tee", Type: "top", ColorHex: "#000000"})
	require.NoError(t, err)
	_, err = env.svc.AddGarment(ctx, 7, AddGarmentRequest{Name: "Jeans", Type: "bottom", ColorHex: "#FFFFFF"})
	require.NoError(t, err)

	undertone := "neutral"
	_, err = env.svc.UpdateProfile(ctx, 7, UpdateProfileRequest{Undertone: &undertone})
	require.NoError(t, err)

	resp, err := env.svc.SuggestOutfits(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, env.engine.result, resp.Outfits)
	require.Len(t, env.engine.lastWardrobe, 2)
	require.Equal(t, top.ID.String(), env.engine.lastWardrobe[0].ID)
	require.Equal(t, outfit.UndertoneNeutral, env.engine.lastProfile.Undertone)
}

type testEnv struct {
	svc       Service
	garments  *stubGarmentRepo
	profiles  *stubProfileRepo
	photos    *stubPhotoStorage
	extractor *stubExtractor
	engine    *stubEngine
}

func newTestEnv() *testEnv {
	env := &testEnv{
		garments:  &stubGarmentRepo{items: map[uuid.UUID]Garment{}},
		profiles:  &stubProfileRepo{profiles: map[int64]StyleProfile{}},
		photos:    &stubPhotoStorage{data: map[string][]byte{}},
		extractor: &stubExtractor{color: outfit.MustHex("#000000")},
		engine: &stubEngine{result: []outfit.Outfit{
			{Items: []outfit.Garment{{ID: "x"}}, Rationale: []string{"stub"}},
		}},
	}
	env.svc = NewService(Config{}, env.garments, env.profiles, env.photos, env.extractor, env.engine, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return env
}

type stubGarmentRepo struct {
	items map[uuid.UUID]Garment
	order []uuid.UUID
}

func (r *stubGarmentRepo) Create(_ context.Context, garment Garment) error {
	r.items[garment.ID] = garment
	r.order = append(r.order, garment.ID)
	return nil
}

func (r *stubGarmentRepo) Get(_ context.Context, userID int64, id uuid.UUID) (Garment, bool, error) {
	garment, ok := r.items[id]
	if !ok || garment.UserID != userID {
		return Garment{}, false, nil
	}
	return garment, true, nil
}

func (r *stubGarmentRepo) List(_ context.Context, userID int64) ([]Garment, error) {
	var out []Garment
	for _, id := range r.order {
		if garment, ok := r.items[id]; ok && garment.UserID == userID {
			out = append(out, garment)
		}
	}
	return out, nil
}

func (r *stubGarmentRepo) Update(_ context.Context, garment Garment) error {
	r.items[garment.ID] = garment
	return nil
}

func (r *stubGarmentRepo) Delete(_ context.Context, userID int64, id uuid.UUID) (bool, error) {
	garment, ok := r.items[id]
	if !ok || garment.UserID != userID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *stubGarmentRepo) NearestByColor(_ context.Context, userID int64, color outfit.Color, exclude uuid.UUID, limit int) ([]SimilarGarment, error) {
	var out []SimilarGarment
	for _, id := range r.order {
		garment, ok := r.items[id]
		if !ok || garment.UserID != userID || garment.ID == exclude {
			continue
		}
		out = append(out, SimilarGarment{Garment: garment, Distance: outfit.Distance(color, garment.Color)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubProfileRepo struct {
	profiles map[int64]StyleProfile
}

func (r *stubProfileRepo) Get(_ context.Context, userID int64) (StyleProfile, bool, error) {
	profile, ok := r.profiles[userID]
	return profile, ok, nil
}

func (r *stubProfileRepo) Save(_ context.Context, profile StyleProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *stubProfileRepo) Delete(_ context.Context, userID int64) error {
	delete(r.profiles, userID)
	return nil
}

type stubPhotoStorage struct {
	data map[string][]byte
}

func (s *stubPhotoStorage) Put(_ context.Context, key string, data []byte, mimeType string) (StoredPhoto, error) {
	s.data[key] = data
	return StoredPhoto{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (s *stubPhotoStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type stubExtractor struct {
	color    outfit.Color
	lastData []byte
}

func (e *stubExtractor) Extract(_ context.Context, data []byte, _ string) (outfit.Color, error) {
	e.lastData = data
	return e.color, nil
}

type stubEngine struct {
	result       []outfit.Outfit
	lastWardrobe []outfit.Garment
	lastProfile  outfit.Profile
}

func (e *stubEngine) Suggest(_ context.Context, wardrobe []outfit.Garment, profile outfit.Profile) []outfit.Outfit {
	e.lastWardrobe = wardrobe
	e.lastProfile = profile
	return e.result
}
