package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a usable rectangular remnant retained after a panel was
// finalized, carrying enough provenance to be reused as future stock.
type Offcut struct {
	ID          string  `json:"id"`
	PanelNumber int     `json:"panel_number"` // Source panel in the result
	X           float64 `json:"x"`            // Position on the panel (mm from left)
	Y           float64 `json:"y"`            // Position on the panel (mm from top)
	Width       float64 `json:"width"`        // mm
	Height      float64 `json:"height"`       // mm
	Thickness   float64 `json:"thickness"`    // mm, inherited from the panel material
	Finish      string  `json:"finish"`       // Inherited from the panel material
}

// Area returns the offcut area in square mm.
func (o Offcut) Area() float64 {
	return o.Width * o.Height
}

// MinOffcutDimension is the minimum width or height (in mm) for a
// remnant to be considered a usable offcut. Smaller remnants are waste.
const MinOffcutDimension = 50.0

// MinOffcutArea is the minimum area (in sq mm) for a remnant to be kept.
const MinOffcutArea = 10000.0 // 100mm x 100mm equivalent

// CollectOffcuts gathers the retained offcuts of every panel in a result
// into reusable stock records, sorted by area descending.
func CollectOffcuts(result OptimizationResult) []Offcut {
	var all []Offcut
	for _, panel := range result.Panels {
		for _, r := range panel.Offcuts {
			if r.W < MinOffcutDimension || r.H < MinOffcutDimension {
				continue
			}
			all = append(all, Offcut{
				ID:          uuid.New().String()[:8],
				PanelNumber: panel.Number,
				X:           r.X,
				Y:           r.Y,
				Width:       r.W,
				Height:      r.H,
				Thickness:   panel.Material.Thickness,
				Finish:      panel.Material.Finish,
			})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Area() > all[j].Area()
	})
	return all
}

// TotalOffcutArea returns the total area of all offcuts in square mm.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
