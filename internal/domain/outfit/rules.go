package outfit

// FitGoal is a styling objective derived from the body-shape classification.
type FitGoal string

const (
	GoalAccentuateWaist     FitGoal = "accentuateWaist"
	GoalAccentuateShoulders FitGoal = "accentuateShoulders"
	GoalElongate            FitGoal = "elongate"
	GoalMinimizeHips        FitGoal = "minimizeHips"
	GoalBalance             FitGoal = "balance"
	GoalRelaxed             FitGoal = "relaxed"
)

// FitGoalsFor maps a body type to its ordered styling goals. The order only
// affects downstream rationale text, not filtering. An unset body type yields
// no goals.
func FitGoalsFor(bodyType BodyType) []FitGoal {
	switch bodyType {
	case BodyRectangle:
		return []FitGoal{GoalAccentuateWaist}
	case BodyTriangle:
		return []FitGoal{GoalAccentuateShoulders, GoalElongate}
	case BodyInvertedTriangle:
		return []FitGoal{GoalMinimizeHips, GoalBalance}
	case BodyHourglass:
		return []FitGoal{GoalAccentuateWaist}
	case BodyOval:
		return []FitGoal{GoalElongate, GoalRelaxed}
	default:
		return nil
	}
}
