package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameOfCanonicalEntries(t *testing.T) {
	for _, entry := range Palette {
		require.Equal(t, entry.Name, NameOf(entry.Color))
	}
}

func TestNameOfNearestNeighbor(t *testing.T) {
	require.Equal(t, "red", NameOf(MustHex("#C0392B")))
	require.Equal(t, "black", NameOf(MustHex("#111111")))
	require.Equal(t, "white", NameOf(MustHex("#FEFEFE")))
}

func TestNameInTwoEntryPalette(t *testing.T) {
	entries := []PaletteEntry{
		{MustHex("#000000"), "black"},
		{MustHex("#FFFFFF"), "white"},
	}
	require.Equal(t, "black", nameIn(entries, MustHex("#111111")))
	require.Equal(t, "white", nameIn(entries, MustHex("#EEEEEE")))
}

func TestNameInBreaksTiesByFirstOccurrence(t *testing.T) {
	entries := []PaletteEntry{
		{MustHex("#808080"), "grey"},
		{MustHex("#808080"), "graphite"},
	}
	require.Equal(t, "grey", nameIn(entries, MustHex("#808080")))
	require.Equal(t, "grey", nameIn(entries, MustHex("#000000")))
}

func TestNameOfIsTotal(t *testing.T) {
	known := make(map[string]struct{}, len(Palette))
	for _, entry := range Palette {
		known[entry.Name] = struct{}{}
	}
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				name := NameOf(Color{R: uint8(r), G: uint8(g), B: uint8(b)})
				require.NotEmpty(t, name)
				require.Contains(t, known, name)
			}
		}
	}
}
