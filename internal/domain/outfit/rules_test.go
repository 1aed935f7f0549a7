package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitGoalsFor(t *testing.T) {
	cases := []struct {
		bodyType BodyType
		goals    []FitGoal
	}{
		{BodyRectangle, []FitGoal{GoalAccentuateWaist}},
		{BodyTriangle, []FitGoal{GoalAccentuateShoulders, GoalElongate}},
		{BodyInvertedTriangle, []FitGoal{GoalMinimizeHips, GoalBalance}},
		{BodyHourglass, []FitGoal{GoalAccentuateWaist}},
		{BodyOval, []FitGoal{GoalElongate, GoalRelaxed}},
		{BodyUnset, nil},
	}
	for _, tc := range cases {
		require.Equal(t, tc.goals, FitGoalsFor(tc.bodyType), "body type %q", tc.bodyType)
	}
}

func TestParseEnums(t *testing.T) {
	parsed, err := ParseGarmentType("outerwear")
	require.NoError(t, err)
	require.Equal(t, GarmentOuterwear, parsed)

	_, err = ParseGarmentType("hat")
	require.Error(t, err)

	body, err := ParseBodyType("")
	require.NoError(t, err)
	require.Equal(t, BodyUnset, body)

	_, err = ParseBodyType("pear")
	require.Error(t, err)

	tone, err := ParseUndertone("warm")
	require.NoError(t, err)
	require.Equal(t, UndertoneWarm, tone)

	_, err = ParseUndertone("olive")
	require.Error(t, err)
}
