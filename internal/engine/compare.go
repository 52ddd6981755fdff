package engine

import "github.com/piwi3910/cutplanner/internal/model"

// utilizationEpsilon treats near-equal mean utilizations (in percentage
// points) as ties so floating noise cannot flip-flop the best solution.
const utilizationEpsilon = 0.01

// BetterSolution reports whether candidate strictly beats best under the
// solution total order: fewer panels always wins; at equal panel count
// strictly higher mean utilization wins; at equal utilization the
// solution with the single largest retained offcut wins, favoring one
// large reusable remnant over several small ones.
func BetterSolution(candidate, best []*model.PanelSolution) bool {
	if len(best) == 0 {
		return len(candidate) > 0
	}
	if len(candidate) == 0 {
		return false
	}

	if len(candidate) != len(best) {
		return len(candidate) < len(best)
	}

	cu := MeanUtilization(candidate)
	bu := MeanUtilization(best)
	if cu > bu+utilizationEpsilon {
		return true
	}
	if bu > cu+utilizationEpsilon {
		return false
	}

	return LargestOffcutArea(candidate) > LargestOffcutArea(best)
}

// MeanUtilization returns the mean per-panel utilization percentage.
func MeanUtilization(panels []*model.PanelSolution) float64 {
	if len(panels) == 0 {
		return 0
	}
	var sum float64
	for _, p := range panels {
		sum += p.Utilization()
	}
	return sum / float64(len(panels))
}

// LargestOffcutArea returns the maximum single offcut area across all
// panels of a solution.
func LargestOffcutArea(panels []*model.PanelSolution) float64 {
	var largest float64
	for _, p := range panels {
		if a := p.LargestOffcutArea(); a > largest {
			largest = a
		}
	}
	return largest
}
