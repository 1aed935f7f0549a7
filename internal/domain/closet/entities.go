// Package closet manages the digitized wardrobe and styling profile that feed
// the outfit engine.
package closet

import (
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// Garment is a persisted wardrobe item owned by a user.
type Garment struct {
	ID        uuid.UUID          `json:"id"`
	UserID    int64              `json:"userId"`
	Name      string             `json:"name"`
	Type      outfit.GarmentType `json:"type"`
	Color     outfit.Color       `json:"color"`
	ColorHex  string             `json:"colorHex"`
	ColorName string             `json:"colorName"`
	Tags      []string           `json:"tags,omitempty"`
	PhotoKey  string             `json:"photoKey,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Engine converts the stored garment into the engine's snapshot value.
func (g Garment) Engine() outfit.Garment {
	return outfit.Garment{
		ID:        g.ID.String(),
		Name:      g.Name,
		Type:      g.Type,
		Color:     g.Color,
		ColorName: g.ColorName,
		Tags:      g.Tags,
	}
}

// StyleProfile is a user's styling preferences. PreferredStyles and Formality
// are stored and surfaced but never consulted by the matcher.
type StyleProfile struct {
	UserID          int64            `json:"userId"`
	BodyType        outfit.BodyType  `json:"bodyType,omitempty"`
	Undertone       outfit.Undertone `json:"skinUndertone,omitempty"`
	PreferredStyles []string         `json:"preferredStyles,omitempty"`
	FavoriteColors  []string         `json:"favoriteColors,omitempty"`
	DislikedColors  []string         `json:"dislikedColors,omitempty"`
	Formality       int              `json:"formalityScale"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Engine converts the stored profile into the engine's snapshot value.
func (p StyleProfile) Engine() outfit.Profile {
	return outfit.Profile{
		BodyType:        p.BodyType,
		Undertone:       p.Undertone,
		PreferredStyles: p.PreferredStyles,
		FavoriteColors:  p.FavoriteColors,
		DislikedColors:  p.DislikedColors,
		Formality:       p.Formality,
	}
}

const defaultFormality = 3

// DefaultProfile is the profile handed out before the user edits anything.
func DefaultProfile(userID int64) StyleProfile {
	return StyleProfile{
		UserID:    userID,
		Formality: defaultFormality,
	}
}

// SimilarGarment pairs a garment with its color distance from a reference.
type SimilarGarment struct {
	Garment  Garment `json:"garment"`
	Distance float64 `json:"distance"`
}

// StoredPhoto describes a garment photo kept in object storage.
type StoredPhoto struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	ETag     string `json:"etag"`
}
