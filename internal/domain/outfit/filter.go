package outfit

// Friendly color names per undertone. Membership is tested against the named
// color from the palette, not the raw color value.
var (
	coolFriendly = nameSet([]string{"blue", "purple", "charcoal", "graphite", "white", "teal"})
	warmFriendly = nameSet([]string{"rust", "amber", "copper", "brown", "green", "off white"})
)

// undertoneFriendly reports whether a color suits the given undertone. An
// unset undertone imposes no constraint, and neutral accepts everything.
func undertoneFriendly(c Color, undertone Undertone) bool {
	switch undertone {
	case UndertoneUnset, UndertoneNeutral:
		return true
	case UndertoneCool:
		_, ok := coolFriendly[NameOf(c)]
		return ok
	case UndertoneWarm:
		_, ok := warmFriendly[NameOf(c)]
		return ok
	default:
		return true
	}
}

// outfitAcceptable reports whether every item clears the profile's color
// constraints: never a disliked color, inside the favorites allow-list when
// favorites are set, and undertone friendly. An empty favorites set imposes no
// constraint; that asymmetry with dislikes is intentional (soft preference vs
// hard exclusion).
func outfitAcceptable(o Outfit, profile Profile) bool {
	disliked := nameSet(profile.DislikedColors)
	favorites := nameSet(profile.FavoriteColors)
	for _, item := range o.Items {
		if _, ok := disliked[item.ColorName]; ok {
			return false
		}
		if len(favorites) > 0 {
			if _, ok := favorites[item.ColorName]; !ok {
				return false
			}
		}
		if !undertoneFriendly(item.Color, profile.Undertone) {
			return false
		}
	}
	return true
}

func nameSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
