package closet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/util"
)

// Service exposes wardrobe and style profile management plus outfit
// suggestions.
type Service interface {
	AddGarment(ctx context.Context, userID int64, req AddGarmentRequest) (Garment, error)
	GetGarment(ctx context.Context, userID int64, id uuid.UUID) (Garment, error)
	ListGarments(ctx context.Context, userID int64) ([]Garment, error)
	UpdateGarment(ctx context.Context, userID int64, id uuid.UUID, req UpdateGarmentRequest) (Garment, error)
	DeleteGarment(ctx context.Context, userID int64, id uuid.UUID) error
	SimilarGarments(ctx context.Context, userID int64, id uuid.UUID, limit int) ([]SimilarGarment, error)
	Profile(ctx context.Context, userID int64) (StyleProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (StyleProfile, error)
	ResetProfile(ctx context.Context, userID int64) error
	SuggestOutfits(ctx context.Context, userID int64) (SuggestionResponse, error)
}

const defaultSimilarLimit = 5

// Config drives the closet domain.
type Config struct {
	// SimilarLimit is the match count served when a request does not ask
	// for one. Zero falls back to the built-in default.
	SimilarLimit int
}

type service struct {
	cfg       Config
	garments  GarmentRepository
	profiles  ProfileRepository
	photos    PhotoStorage
	extractor ColorExtractor
	engine    outfit.Service
	logger    *slog.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewService wires up the closet domain.
func NewService(cfg Config, garments GarmentRepository, profiles ProfileRepository, photos PhotoStorage, extractor ColorExtractor, engine outfit.Service, logger *slog.Logger) Service {
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = defaultSimilarLimit
	}
	return &service{
		cfg:       cfg,
		garments:  garments,
		profiles:  profiles,
		photos:    photos,
		extractor: extractor,
		engine:    engine,
		logger:    logger.With("component", "closet.service"),
		now:       util.NowUTC,
		newID:     uuid.New,
	}
}

// AddGarmentRequest captures a new wardrobe item. Either a photo (whose
// dominant color is extracted) or an explicit hex color must be supplied.
type AddGarmentRequest struct {
	Name      string
	Type      string
	Tags      []string
	ColorHex  string
	Photo     []byte
	PhotoMime string
}

// UpdateGarmentRequest carries partial edits; nil fields stay untouched.
type UpdateGarmentRequest struct {
	Name      *string
	Type      *string
	ColorHex  *string
	ColorName *string
	Tags      []string
}

// UpdateProfileRequest carries partial profile edits; nil fields stay
// untouched.
type UpdateProfileRequest struct {
	BodyType        *string
	Undertone       *string
	PreferredStyles []string
	FavoriteColors  []string
	DislikedColors  []string
	Formality       *int
}

// SuggestionResponse wraps the engine output for presentation.
type SuggestionResponse struct {
	Outfits     []outfit.Outfit `json:"outfits"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

func (s *service) AddGarment(ctx context.Context, userID int64, req AddGarmentRequest) (Garment, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Garment{}, apperrors.Wrap("invalid_input", "garment name cannot be empty", nil)
	}
	garmentType, err := outfit.ParseGarmentType(strings.TrimSpace(req.Type))
	if err != nil {
		return Garment{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}

	id := s.newID()
	var (
		color    outfit.Color
		photoKey string
	)
	switch {
	case len(req.Photo) > 0:
		photoKey = fmt.Sprintf("garments/%d/%s", userID, id)
		if _, err := s.photos.Put(ctx, photoKey, req.Photo, req.PhotoMime); err != nil {
			return Garment{}, apperrors.Wrap("closet_error", "failed to store garment photo", err)
		}
		color, err = s.extractor.Extract(ctx, req.Photo, req.PhotoMime)
		if err != nil {
			return Garment{}, apperrors.Wrap("color_extract_error", "failed to extract dominant color", err)
		}
	case strings.TrimSpace(req.ColorHex) != "":
		color, err = outfit.ParseHex(req.ColorHex)
		if err != nil {
			return Garment{}, apperrors.Wrap("invalid_input", err.Error(), nil)
		}
	default:
		return Garment{}, apperrors.Wrap("invalid_input", "either a photo or a color is required", nil)
	}

	now := s.now().UTC()
	garment := Garment{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Type:      garmentType,
		Color:     color,
		ColorHex:  color.Hex(),
		ColorName: outfit.NameOf(color),
		Tags:      normalizeTags(req.Tags),
		PhotoKey:  photoKey,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.garments.Create(ctx, garment); err != nil {
		return Garment{}, apperrors.Wrap("closet_error", "failed to save garment", err)
	}
	s.logger.Info("garment added", "garmentId", garment.ID, "type", garment.Type, "colorName", garment.ColorName)
	return garment, nil
}

func (s *service) GetGarment(ctx context.Context, userID int64, id uuid.UUID) (Garment, error) {
	garment, found, err := s.garments.Get(ctx, userID, id)
	if err != nil {
		return Garment{}, apperrors.Wrap("closet_error", "failed to load garment", err)
	}
	if !found {
		return Garment{}, apperrors.Wrap("garment_not_found", "garment not found", nil)
	}
	return garment, nil
}

func (s *service) ListGarments(ctx context.Context, userID int64) ([]Garment, error) {
	garments, err := s.garments.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("closet_error", "failed to list garments", err)
	}
	return garments, nil
}

func (s *service) UpdateGarment(ctx context.Context, userID int64, id uuid.UUID, req UpdateGarmentRequest) (Garment, error) {
	garment, err := s.GetGarment(ctx, userID, id)
	if err != nil {
		return Garment{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return Garment{}, apperrors.Wrap("invalid_input", "garment name cannot be empty", nil)
		}
		garment.Name = name
	}
	if req.Type != nil {
		garmentType, err := outfit.ParseGarmentType(strings.TrimSpace(*req.Type))
		if err != nil {
			return Garment{}, apperrors.Wrap("invalid_input", err.Error(), nil)
		}
		garment.Type = garmentType
	}
	if req.ColorHex != nil {
		color, err := outfit.ParseHex(*req.ColorHex)
		if err != nil {
			return Garment{}, apperrors.Wrap("invalid_input", err.Error(), nil)
		}
		garment.Color = color
		garment.ColorHex = color.Hex()
		// A color edit re-derives the name unless the caller overrides it in
		// the same request; explicit name edits may diverge from the color.
		if req.ColorName == nil {
			garment.ColorName = outfit.NameOf(color)
		}
	}
	if req.ColorName != nil {
		name := strings.TrimSpace(*req.ColorName)
		if name == "" {
			return Garment{}, apperrors.Wrap("invalid_input", "color name cannot be empty", nil)
		}
		garment.ColorName = name
	}
	if req.Tags != nil {
		garment.Tags = normalizeTags(req.Tags)
	}
	garment.UpdatedAt = s.now().UTC()

	if err := s.garments.Update(ctx, garment); err != nil {
		return Garment{}, apperrors.Wrap("closet_error", "failed to update garment", err)
	}
	return garment, nil
}

func (s *service) DeleteGarment(ctx context.Context, userID int64, id uuid.UUID) error {
	garment, err := s.GetGarment(ctx, userID, id)
	if err != nil {
		return err
	}
	deleted, err := s.garments.Delete(ctx, userID, id)
	if err != nil {
		return apperrors.Wrap("closet_error", "failed to delete garment", err)
	}
	if !deleted {
		return apperrors.Wrap("garment_not_found", "garment not found", nil)
	}
	if garment.PhotoKey != "" {
		if err := s.photos.Delete(ctx, garment.PhotoKey); err != nil {
			s.logger.Warn("failed to delete garment photo", "key", garment.PhotoKey, "error", err)
		}
	}
	return nil
}

func (s *service) SimilarGarments(ctx context.Context, userID int64, id uuid.UUID, limit int) ([]SimilarGarment, error) {
	garment, err := s.GetGarment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.SimilarLimit
	}
	matches, err := s.garments.NearestByColor(ctx, userID, garment.Color, garment.ID, limit)
	if err != nil {
		return nil, apperrors.Wrap("closet_error", "failed to search similar garments", err)
	}
	return matches, nil
}

func (s *service) Profile(ctx context.Context, userID int64) (StyleProfile, error) {
	profile, found, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return StyleProfile{}, apperrors.Wrap("closet_error", "failed to load profile", err)
	}
	if !found {
		return DefaultProfile(userID), nil
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (StyleProfile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return StyleProfile{}, err
	}

	if req.BodyType != nil {
		bodyType, err := outfit.ParseBodyType(strings.TrimSpace(*req.BodyType))
		if err != nil {
			return StyleProfile{}, apperrors.Wrap("invalid_input", err.Error(), nil)
		}
		profile.BodyType = bodyType
	}
	if req.Undertone != nil {
		undertone, err := outfit.ParseUndertone(strings.TrimSpace(*req.Undertone))
		if err != nil {
			return StyleProfile{}, apperrors.Wrap("invalid_input", err.Error(), nil)
		}
		profile.Undertone = undertone
	}
	if req.PreferredStyles != nil {
		profile.PreferredStyles = normalizeTags(req.PreferredStyles)
	}
	if req.FavoriteColors != nil {
		profile.FavoriteColors = normalizeTags(req.FavoriteColors)
	}
	if req.DislikedColors != nil {
		profile.DislikedColors = normalizeTags(req.DislikedColors)
	}
	if req.Formality != nil {
		if *req.Formality < 1 || *req.Formality > 5 {
			return StyleProfile{}, apperrors.Wrap("invalid_input", "formality must be between 1 and 5", nil)
		}
		profile.Formality = *req.Formality
	}
	profile.UpdatedAt = s.now().UTC()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return StyleProfile{}, apperrors.Wrap("closet_error", "failed to save profile", err)
	}
	return profile, nil
}

func (s *service) ResetProfile(ctx context.Context, userID int64) error {
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return apperrors.Wrap("closet_error", "failed to reset profile", err)
	}
	return nil
}

func (s *service) SuggestOutfits(ctx context.Context, userID int64) (SuggestionResponse, error) {
	garments, err := s.ListGarments(ctx, userID)
	if err != nil {
		return SuggestionResponse{}, err
	}
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return SuggestionResponse{}, err
	}

	wardrobe := make([]outfit.Garment, 0, len(garments))
	for _, garment := range garments {
		wardrobe = append(wardrobe, garment.Engine())
	}
	outfits := s.engine.Suggest(ctx, wardrobe, profile.Engine())
	s.logger.Info("outfits suggested", "wardrobe", len(wardrobe), "outfits", len(outfits))
	return SuggestionResponse{Outfits: outfits, GeneratedAt: s.now().UTC()}, nil
}

// normalizeTags trims entries, drops empties, and removes duplicates while
// keeping insertion order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		clean := strings.TrimSpace(tag)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}
