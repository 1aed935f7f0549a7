package outfit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newGarment(id string, typ GarmentType, hex string) Garment {
	color := MustHex(hex)
	return Garment{ID: id, Name: id, Type: typ, Color: color, ColorName: NameOf(color)}
}

func TestComposeTopBottomPair(t *testing.T) {
	wardrobe := []Garment{
		newGarment("t1", GarmentTop, "#000000"),
		newGarment("b1", GarmentBottom, "#FFFFFF"),
	}

	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 1)
	require.Equal(t, []string{"t1", "b1"}, itemIDs(outfits[0]))
	require.Contains(t, outfits[0].Rationale[0], "black")
	require.Contains(t, outfits[0].Rationale[0], "white")
}

func TestComposeDislikedColorFiltersOnlyCandidate(t *testing.T) {
	wardrobe := []Garment{
		newGarment("t1", GarmentTop, "#000000"),
		newGarment("b1", GarmentBottom, "#FFFFFF"),
	}

	outfits := Compose(wardrobe, Profile{DislikedColors: []string{"white"}})
	require.Empty(t, outfits)
}

func TestComposeDressWithoutShoesYieldsNothing(t *testing.T) {
	wardrobe := []Garment{newGarment("d1", GarmentDress, "#000000")}
	require.Empty(t, Compose(wardrobe, Profile{}))
}

func TestComposeEmptyWardrobe(t *testing.T) {
	require.Empty(t, Compose(nil, Profile{}))
}

func TestComposeTwoTopsTwoBottoms(t *testing.T) {
	wardrobe := []Garment{
		newGarment("t1", GarmentTop, "#000000"),
		newGarment("t2", GarmentTop, "#FFFFFF"),
		newGarment("b1", GarmentBottom, "#FFFFFF"),
		newGarment("b2", GarmentBottom, "#000000"),
	}

	outfits := Compose(wardrobe, Profile{})
	// First match wins per top, so each top yields exactly one pairing.
	require.Len(t, outfits, 2)
	require.Equal(t, []string{"t1", "b1"}, itemIDs(outfits[0]))
	require.Equal(t, []string{"t2", "b2"}, itemIDs(outfits[1]))
	requireDistinctItemSets(t, outfits)
}

func TestComposeDressAnchoredWithLayerAndShoes(t *testing.T) {
	wardrobe := []Garment{
		newGarment("d1", GarmentDress, "#000000"),
		newGarment("o1", GarmentOuterwear, "#FFFFFF"),
		newGarment("s1", GarmentShoes, "#C0392B"),
	}

	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 1)
	require.Equal(t, []string{"d1", "o1", "s1"}, itemIDs(outfits[0]))
	require.Len(t, outfits[0].Rationale, 3)
	require.Equal(t, dressLeadRationale, outfits[0].Rationale[0])
	require.Contains(t, outfits[0].Rationale[1], "white")
	require.Contains(t, outfits[0].Rationale[1], "black")
	require.Equal(t, dressShoesRationale, outfits[0].Rationale[2])
}

func TestComposeDressSkipsLowContrastOuterwear(t *testing.T) {
	wardrobe := []Garment{
		newGarment("d1", GarmentDress, "#000000"),
		// Distance ~45, below the outerwear threshold of 90.
		newGarment("o1", GarmentOuterwear, "#1A1A1A"),
		newGarment("s1", GarmentShoes, "#FFFFFF"),
	}

	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 1)
	require.Equal(t, []string{"d1", "s1"}, itemIDs(outfits[0]))
	require.Equal(t, dressMinimalRationale, outfits[0].Rationale[1])
}

func TestComposeBottomContrastIsStrict(t *testing.T) {
	top := newGarment("t1", GarmentTop, "#000000")

	// Distance ~79.7: not enough.
	near := []Garment{top, newGarment("b1", GarmentBottom, "#2E2E2E")}
	require.Empty(t, Compose(near, Profile{}))

	// Distance ~83.1: clears the threshold.
	far := []Garment{top, newGarment("b2", GarmentBottom, "#303030")}
	require.Len(t, Compose(far, Profile{}), 1)
}

func TestComposeFitGoalAdvisories(t *testing.T) {
	wardrobe := []Garment{
		newGarment("t1", GarmentTop, "#000000"),
		newGarment("b1", GarmentBottom, "#FFFFFF"),
	}

	hourglass := Compose(wardrobe, Profile{BodyType: BodyHourglass})
	require.Len(t, hourglass, 1)
	require.Equal(t, []string{hourglass[0].Rationale[0], waistAdvisory}, hourglass[0].Rationale)

	triangle := Compose(wardrobe, Profile{BodyType: BodyTriangle})
	require.Len(t, triangle, 1)
	require.Equal(t, []string{triangle[0].Rationale[0], elongateAdvisory, shoulderAdvisory}, triangle[0].Rationale)

	// minimizeHips and balance carry no advisory text.
	inverted := Compose(wardrobe, Profile{BodyType: BodyInvertedTriangle})
	require.Len(t, inverted, 1)
	require.Len(t, inverted[0].Rationale, 1)
}

func TestComposeDressCandidatesComeFirst(t *testing.T) {
	wardrobe := []Garment{
		newGarment("t1", GarmentTop, "#000000"),
		newGarment("b1", GarmentBottom, "#FFFFFF"),
		newGarment("d1", GarmentDress, "#000000"),
		newGarment("s1", GarmentShoes, "#C0392B"),
	}

	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 2)
	require.Equal(t, GarmentDress, outfits[0].Items[0].Type)
	require.Equal(t, GarmentTop, outfits[1].Items[0].Type)
}

func TestComposeCapAndAnchorLimits(t *testing.T) {
	var wardrobe []Garment
	for i := 0; i < 7; i++ {
		wardrobe = append(wardrobe, newGarment(fmt.Sprintf("d%d", i), GarmentDress, "#000000"))
	}
	for i := 0; i < 9; i++ {
		wardrobe = append(wardrobe, newGarment(fmt.Sprintf("t%d", i), GarmentTop, "#000000"))
	}
	wardrobe = append(wardrobe,
		newGarment("b0", GarmentBottom, "#FFFFFF"),
		newGarment("s0", GarmentShoes, "#FFFFFF"),
	)

	// 6 dress anchors and 8 top anchors produce 14 candidates; cap keeps 12.
	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 12)
	requireDistinctItemSets(t, outfits)
}

func TestComposeDeduplicatesByItemSet(t *testing.T) {
	duplicate := newGarment("t1", GarmentTop, "#000000")
	wardrobe := []Garment{
		duplicate,
		duplicate,
		newGarment("b1", GarmentBottom, "#FFFFFF"),
	}

	outfits := Compose(wardrobe, Profile{})
	require.Len(t, outfits, 1)
}

func TestComposeDeterministic(t *testing.T) {
	wardrobe := []Garment{
		newGarment("d1", GarmentDress, "#1F3A5F"),
		newGarment("o1", GarmentOuterwear, "#F8F4E3"),
		newGarment("s1", GarmentShoes, "#C0392B"),
		newGarment("t1", GarmentTop, "#27AE60"),
		newGarment("b1", GarmentBottom, "#F5F5DC"),
	}
	profile := Profile{BodyType: BodyOval, Undertone: UndertoneNeutral}

	first := Compose(wardrobe, profile)
	second := Compose(wardrobe, profile)
	require.Equal(t, first, second)
}

func itemIDs(o Outfit) []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func requireDistinctItemSets(t *testing.T, outfits []Outfit) {
	t.Helper()
	seen := make(map[string]struct{}, len(outfits))
	for _, o := range outfits {
		key := itemSetKey(o.Items)
		_, dup := seen[key]
		require.False(t, dup, "duplicate item set %s", key)
		seen[key] = struct{}{}
	}
}
