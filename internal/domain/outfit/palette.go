package outfit

// PaletteEntry pairs a canonical color value with its display name.
type PaletteEntry struct {
	Color Color
	Name  string
}

// Palette is the fixed named-color table. It is deliberately an ordered slice,
// not a map: nearest-name ties resolve to the first entry, and that ordering
// must stay stable across platforms. Never mutate at runtime.
var Palette = []PaletteEntry{
	{MustHex("#000000"), "black"},
	{MustHex("#36454F"), "charcoal"},
	{MustHex("#53565A"), "graphite"},
	{MustHex("#808080"), "grey"},
	{MustHex("#FFFFFF"), "white"},
	{MustHex("#F8F4E3"), "off white"},
	{MustHex("#F5F5DC"), "beige"},
	{MustHex("#C0392B"), "red"},
	{MustHex("#B7410E"), "rust"},
	{MustHex("#FFBF00"), "amber"},
	{MustHex("#B87333"), "copper"},
	{MustHex("#8B4513"), "brown"},
	{MustHex("#F1C40F"), "yellow"},
	{MustHex("#E67E22"), "orange"},
	{MustHex("#E91E63"), "pink"},
	{MustHex("#27AE60"), "green"},
	{MustHex("#808000"), "olive"},
	{MustHex("#008080"), "teal"},
	{MustHex("#2980B9"), "blue"},
	{MustHex("#1F3A5F"), "navy"},
	{MustHex("#8E44AD"), "purple"},
}

// NameOf maps a color to the nearest entry in the fixed palette. Total: the
// palette is non-empty by construction, so a name is always returned.
func NameOf(c Color) string {
	return nameIn(Palette, c)
}

func nameIn(entries []PaletteEntry, c Color) string {
	best := entries[0].Name
	bestDist := Distance(entries[0].Color, c)
	for _, entry := range entries[1:] {
		// Strict less-than keeps the first occurrence on ties.
		if d := Distance(entry.Color, c); d < bestDist {
			best = entry.Name
			bestDist = d
		}
	}
	return best
}
