package model

import "math"

// PurchaseEstimate holds the results of a panel purchasing calculation.
type PurchaseEstimate struct {
	TotalPieceArea    float64 `json:"total_piece_area"`    // Total area of all pieces (sq mm)
	PanelArea         float64 `json:"panel_area"`          // Area of one stock panel (sq mm)
	PanelsNeededExact float64 `json:"panels_needed_exact"` // Exact fractional number of panels
	PanelsNeededMin   int     `json:"panels_needed_min"`   // Minimum panels (ceiling of exact)
	PanelsWithWaste   int     `json:"panels_with_waste"`   // Recommended panels including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost     float64 `json:"estimated_cost"`      // Total cost if pricing available
	PricePerPanel     float64 `json:"price_per_panel"`     // Price used for estimation
}

// CalculatePurchaseEstimate computes how many stock panels to buy for a
// cut list before any layout is attempted. The area lower bound ignores
// packing losses, so a waste percentage is applied on top.
func CalculatePurchaseEstimate(pieces []Piece, panelWidth, panelHeight, wastePercent, pricePerPanel float64) PurchaseEstimate {
	var totalPieceArea float64
	for _, p := range pieces {
		totalPieceArea += p.Area() * float64(p.Quantity)
	}

	panelArea := panelWidth * panelHeight
	if panelArea <= 0 {
		return PurchaseEstimate{
			TotalPieceArea: totalPieceArea,
			WastePercent:   wastePercent,
		}
	}

	exactPanels := totalPieceArea / panelArea
	minPanels := int(math.Ceil(exactPanels))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	panelsWithWaste := int(math.Ceil(exactPanels * wasteFactor))
	if panelsWithWaste < minPanels {
		panelsWithWaste = minPanels
	}

	return PurchaseEstimate{
		TotalPieceArea:    totalPieceArea,
		PanelArea:         panelArea,
		PanelsNeededExact: exactPanels,
		PanelsNeededMin:   minPanels,
		PanelsWithWaste:   panelsWithWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     float64(panelsWithWaste) * pricePerPanel,
		PricePerPanel:     pricePerPanel,
	}
}
