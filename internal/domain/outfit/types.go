// Package outfit implements the rule-based outfit matching engine: color
// naming against a fixed palette, body-shape fit goals, undertone and
// preference compatibility, and combinatorial outfit composition.
package outfit

import "fmt"

// GarmentType classifies a wardrobe item.
type GarmentType string

const (
	GarmentTop       GarmentType = "top"
	GarmentBottom    GarmentType = "bottom"
	GarmentDress     GarmentType = "dress"
	GarmentOuterwear GarmentType = "outerwear"
	GarmentShoes     GarmentType = "shoes"
	GarmentAccessory GarmentType = "accessory"
)

// ParseGarmentType validates a raw garment type string. A value outside the
// enumeration is a caller contract violation and fails here, before the
// composer ever sees it.
func ParseGarmentType(raw string) (GarmentType, error) {
	switch GarmentType(raw) {
	case GarmentTop, GarmentBottom, GarmentDress, GarmentOuterwear, GarmentShoes, GarmentAccessory:
		return GarmentType(raw), nil
	default:
		return "", fmt.Errorf("unknown garment type %q", raw)
	}
}

// BodyType is the user's body-shape classification. The empty value means
// unset, which relaxes all shape-derived styling.
type BodyType string

const (
	BodyUnset            BodyType = ""
	BodyRectangle        BodyType = "rectangle"
	BodyTriangle         BodyType = "triangle"
	BodyInvertedTriangle BodyType = "invertedTriangle"
	BodyHourglass        BodyType = "hourglass"
	BodyOval             BodyType = "oval"
)

// ParseBodyType validates a raw body type string, accepting empty as unset.
func ParseBodyType(raw string) (BodyType, error) {
	switch BodyType(raw) {
	case BodyUnset, BodyRectangle, BodyTriangle, BodyInvertedTriangle, BodyHourglass, BodyOval:
		return BodyType(raw), nil
	default:
		return "", fmt.Errorf("unknown body type %q", raw)
	}
}

// Undertone is the skin-tone classification used for color compatibility.
// The empty value means unset and imposes no constraint.
type Undertone string

const (
	UndertoneUnset   Undertone = ""
	UndertoneCool    Undertone = "cool"
	UndertoneWarm    Undertone = "warm"
	UndertoneNeutral Undertone = "neutral"
)

// ParseUndertone validates a raw undertone string, accepting empty as unset.
func ParseUndertone(raw string) (Undertone, error) {
	switch Undertone(raw) {
	case UndertoneUnset, UndertoneCool, UndertoneWarm, UndertoneNeutral:
		return Undertone(raw), nil
	default:
		return "", fmt.Errorf("unknown skin undertone %q", raw)
	}
}

// Garment is the engine's view of a wardrobe item. The engine never mutates
// garments; they are snapshot values supplied by the caller.
type Garment struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      GarmentType `json:"type"`
	Color     Color       `json:"color"`
	ColorName string      `json:"colorName"`
	Tags      []string    `json:"tags,omitempty"`
}

// Profile carries the styling preferences consulted during matching.
// PreferredStyles and Formality are reserved attributes: collected, surfaced,
// never consulted by the matcher.
type Profile struct {
	BodyType        BodyType  `json:"bodyType,omitempty"`
	Undertone       Undertone `json:"skinUndertone,omitempty"`
	PreferredStyles []string  `json:"preferredStyles,omitempty"`
	FavoriteColors  []string  `json:"favoriteColors,omitempty"`
	DislikedColors  []string  `json:"dislikedColors,omitempty"`
	Formality       int       `json:"formalityScale,omitempty"`
}

// Outfit is a derived, ephemeral combination of wardrobe items. Items keep
// composition order: the anchor garment first, complements after. Its identity
// for deduplication is the set of item ids, independent of order.
type Outfit struct {
	Items     []Garment `json:"items"`
	Rationale []string  `json:"rationale"`
}
