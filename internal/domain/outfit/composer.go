package outfit

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed constants of the matching design. The thresholds are deliberately
// asymmetric: outerwear pairings demand more contrast than shoe pairings.
const (
	maxOutfits      = 12
	maxDressAnchors = 6
	maxTopAnchors   = 8

	outerwearContrast = 90.0
	bottomContrast    = 80.0
	shoeContrast      = 60.0
)

const (
	dressLeadRationale    = "One-piece look anchored by the dress."
	dressMinimalRationale = "Kept layering minimal so the dress stands on its own."
	dressShoesRationale   = "Shoes chosen for clear contrast against the dress."
	waistAdvisory         = "Tuck or belt the top to define the waistline."
	elongateAdvisory      = "Keep a monochromatic column to elongate the silhouette."
	shoulderAdvisory      = "Favor structured shoulders to broaden the upper frame."
	outfitKeySeparator    = "|"
)

// Compose generates ranked outfit candidates from the wardrobe: dress-anchored
// combinations first, then top/bottom-anchored ones, filtered by the profile's
// color constraints, deduplicated by item set, and capped at twelve. An empty
// wardrobe or one with no valid pairing yields an empty result, never an error.
func Compose(wardrobe []Garment, profile Profile) []Outfit {
	parts := partition(wardrobe)

	candidates := composeDressAnchored(parts)
	candidates = append(candidates, composeTopAnchored(parts, profile)...)

	results := make([]Outfit, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if !outfitAcceptable(candidate, profile) {
			continue
		}
		key := itemSetKey(candidate.Items)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, candidate)
		if len(results) == maxOutfits {
			break
		}
	}
	return results
}

// wardrobeParts is a partition of the wardrobe by garment type, in wardrobe
// order. The slices reference the caller's garments; nothing is cloned.
type wardrobeParts struct {
	tops      []Garment
	bottoms   []Garment
	dresses   []Garment
	outerwear []Garment
	shoes     []Garment
}

func partition(wardrobe []Garment) wardrobeParts {
	var parts wardrobeParts
	for _, g := range wardrobe {
		switch g.Type {
		case GarmentTop:
			parts.tops = append(parts.tops, g)
		case GarmentBottom:
			parts.bottoms = append(parts.bottoms, g)
		case GarmentDress:
			parts.dresses = append(parts.dresses, g)
		case GarmentOuterwear:
			parts.outerwear = append(parts.outerwear, g)
		case GarmentShoes:
			parts.shoes = append(parts.shoes, g)
		}
	}
	return parts
}

// composeDressAnchored builds one candidate per dress, up to the anchor limit.
// Outerwear is optional; a qualifying shoe is required or the candidate is
// discarded entirely.
func composeDressAnchored(parts wardrobeParts) []Outfit {
	var outfits []Outfit
	for i, dress := range parts.dresses {
		if i == maxDressAnchors {
			break
		}
		layer, hasLayer := firstContrasting(parts.outerwear, dress.Color, outerwearContrast)
		shoe, hasShoe := firstContrasting(parts.shoes, dress.Color, shoeContrast)
		if !hasShoe {
			continue
		}

		items := []Garment{dress}
		rationale := []string{dressLeadRationale}
		if hasLayer {
			items = append(items, layer)
			rationale = append(rationale, fmt.Sprintf("Layered %s outerwear against the %s dress.", layer.ColorName, dress.ColorName))
		} else {
			rationale = append(rationale, dressMinimalRationale)
		}
		items = append(items, shoe)
		rationale = append(rationale, dressShoesRationale)

		outfits = append(outfits, Outfit{Items: items, Rationale: rationale})
	}
	return outfits
}

// composeTopAnchored builds one candidate per top, up to the anchor limit. A
// contrasting bottom is required; outerwear pairs against the top and shoes
// against the bottom, both optional.
func composeTopAnchored(parts wardrobeParts, profile Profile) []Outfit {
	goals := make(map[FitGoal]struct{})
	for _, goal := range FitGoalsFor(profile.BodyType) {
		goals[goal] = struct{}{}
	}

	var outfits []Outfit
	for i, top := range parts.tops {
		if i == maxTopAnchors {
			break
		}
		bottom, hasBottom := firstContrasting(parts.bottoms, top.Color, bottomContrast)
		if !hasBottom {
			continue
		}
		layer, hasLayer := firstContrasting(parts.outerwear, top.Color, outerwearContrast)
		shoe, hasShoe := firstContrasting(parts.shoes, bottom.Color, shoeContrast)

		items := []Garment{top, bottom}
		rationale := []string{fmt.Sprintf("Paired the %s top with the %s bottom for contrast.", top.ColorName, bottom.ColorName)}
		if hasLayer {
			items = append(items, layer)
		}
		if hasShoe {
			items = append(items, shoe)
		}
		if _, ok := goals[GoalAccentuateWaist]; ok {
			rationale = append(rationale, waistAdvisory)
		}
		if _, ok := goals[GoalElongate]; ok {
			rationale = append(rationale, elongateAdvisory)
		}
		if _, ok := goals[GoalAccentuateShoulders]; ok {
			rationale = append(rationale, shoulderAdvisory)
		}

		outfits = append(outfits, Outfit{Items: items, Rationale: rationale})
	}
	return outfits
}

// firstContrasting returns the first candidate whose color distance from the
// anchor exceeds the threshold. First match wins on purpose: rationale text
// and outfit selection depend on wardrobe iteration order, not best pairing.
func firstContrasting(candidates []Garment, anchor Color, threshold float64) (Garment, bool) {
	for _, candidate := range candidates {
		if Distance(candidate.Color, anchor) > threshold {
			return candidate, true
		}
	}
	return Garment{}, false
}

// itemSetKey builds the order-independent identity of an outfit: its sorted
// item ids joined by a separator.
func itemSetKey(items []Garment) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, outfitKeySeparator)
}
