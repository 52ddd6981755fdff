package model

import "math"

// EdgeBanding marks which edges of a piece receive banding tape in the
// piece's own orientation: Top/Bottom run along the length, Left/Right
// along the width.
type EdgeBanding struct {
	Top    bool `json:"top,omitempty"`
	Bottom bool `json:"bottom,omitempty"`
	Left   bool `json:"left,omitempty"`
	Right  bool `json:"right,omitempty"`
}

// HasAny reports whether any edge needs banding.
func (eb EdgeBanding) HasAny() bool {
	return eb.Top || eb.Bottom || eb.Left || eb.Right
}

// EdgeCount returns the number of banded edges.
func (eb EdgeBanding) EdgeCount() int {
	n := 0
	if eb.Top {
		n++
	}
	if eb.Bottom {
		n++
	}
	if eb.Left {
		n++
	}
	if eb.Right {
		n++
	}
	return n
}

// LinearLength returns the banding length in mm for a piece of the given
// dimensions.
func (eb EdgeBanding) LinearLength(length, width float64) float64 {
	var total float64
	if eb.Top {
		total += length
	}
	if eb.Bottom {
		total += length
	}
	if eb.Left {
		total += width
	}
	if eb.Right {
		total += width
	}
	return total
}

// EdgeBandingSummary holds the calculated banding requirements for a cut
// list.
type EdgeBandingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // Total banding length in mm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total banding length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // Total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with waste in meters
	PieceCount       int     `json:"piece_count"`         // Number of individual units needing banding
	EdgeCount        int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateEdgeBanding computes the total edge banding needed for a
// piece list. wastePercent is the additional percentage added for waste.
func CalculateEdgeBanding(pieces []Piece, wastePercent float64) EdgeBandingSummary {
	var totalMM float64
	var pieceCount, edgeCount int

	for _, p := range pieces {
		if !p.EdgeBanding.HasAny() {
			continue
		}
		lengthPerUnit := p.EdgeBanding.LinearLength(p.Length, p.Width)
		edgesPerUnit := p.EdgeBanding.EdgeCount()

		totalMM += lengthPerUnit * float64(p.Quantity)
		pieceCount += p.Quantity
		edgeCount += edgesPerUnit * p.Quantity
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := totalMM * wasteFactor

	return EdgeBandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: math.Ceil(totalWithWaste),
		TotalWithWasteM:  math.Ceil(totalWithWaste) / 1000.0,
		PieceCount:       pieceCount,
		EdgeCount:        edgeCount,
	}
}
