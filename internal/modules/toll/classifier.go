// README: Step classification; picks billable express-lane steps out of a route.
package toll

import "strings"

// Provider instruction text markers. Both must appear for a step to be
// treated as a dynamic-toll step; "Toll road" alone also covers flat-rate
// turnpikes we cannot price here.
const (
	tollRoadMarker    = "toll road"
	expressLaneMarker = "texpress"
)

type numberedStep struct {
	index int
	step  RouteStep
}

// isDynamicTollStep reports whether a step's navigation instructions mark
// it as an express-lane toll traversal. This is a heuristic over provider
// free text; misses are accepted provider noise.
func isDynamicTollStep(step RouteStep) bool {
	instructions := strings.ToLower(step.Instructions)
	return strings.Contains(instructions, tollRoadMarker) &&
		strings.Contains(instructions, expressLaneMarker)
}

// classifySteps returns the dynamic-toll steps of a route paired with
// their original step index.
func classifySteps(steps []RouteStep) []numberedStep {
	var classified []numberedStep
	for i, step := range steps {
		if isDynamicTollStep(step) {
			classified = append(classified, numberedStep{index: i, step: step})
		}
	}
	return classified
}

// isMergeRampStep reports whether the classified step at position pos is a
// ramp onto the express lane rather than a billable traversal. Back-to-back
// classified steps where the first is a ramp represent a single merge; only
// the second is priced.
func isMergeRampStep(classified []numberedStep, pos int) bool {
	if pos+1 >= len(classified) {
		return false
	}
	if classified[pos+1].index != classified[pos].index+1 {
		return false
	}
	return classified[pos].step.Maneuver.isRamp()
}
