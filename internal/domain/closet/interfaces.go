package closet

import (
	"context"

	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// GarmentRepository abstracts garment persistence. List returns garments in
// creation order, which is the wardrobe order the composer iterates.
type GarmentRepository interface {
	Create(ctx context.Context, garment Garment) error
	Get(ctx context.Context, userID int64, id uuid.UUID) (Garment, bool, error)
	List(ctx context.Context, userID int64) ([]Garment, error)
	Update(ctx context.Context, garment Garment) error
	Delete(ctx context.Context, userID int64, id uuid.UUID) (bool, error)
	NearestByColor(ctx context.Context, userID int64, color outfit.Color, exclude uuid.UUID, limit int) ([]SimilarGarment, error)
}

// ProfileRepository abstracts style profile persistence.
type ProfileRepository interface {
	Get(ctx context.Context, userID int64) (StyleProfile, bool, error)
	Save(ctx context.Context, profile StyleProfile) error
	Delete(ctx context.Context, userID int64) error
}

// PhotoStorage keeps garment photos.
type PhotoStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredPhoto, error)
	Delete(ctx context.Context, key string) error
}

// ColorExtractor is the external dominant-color capability: one stable color
// value per garment photo. How it derives that value is out of scope here.
type ColorExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (outfit.Color, error)
}
