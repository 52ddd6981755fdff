package model

import "testing"

func TestEdgeBandingHelpers(t *testing.T) {
	none := EdgeBanding{}
	if none.HasAny() || none.EdgeCount() != 0 {
		t.Error("empty banding must report no edges")
	}

	all := EdgeBanding{Top: true, Bottom: true, Left: true, Right: true}
	if !all.HasAny() || all.EdgeCount() != 4 {
		t.Error("full banding must report 4 edges")
	}

	// Top and bottom run along the length, left and right along the width
	if got := all.LinearLength(800, 400); got != 2*800+2*400 {
		t.Errorf("expected 2400mm, got %f", got)
	}
	partial := EdgeBanding{Top: true, Left: true}
	if got := partial.LinearLength(800, 400); got != 1200 {
		t.Errorf("expected 1200mm, got %f", got)
	}
}

func TestCalculateEdgeBanding(t *testing.T) {
	pieces := []Piece{
		{
			Label: "Shelf", Length: 600, Width: 300, Quantity: 4,
			EdgeBanding: EdgeBanding{Top: true}, // 600mm per unit
		},
		{
			Label: "Side", Length: 2000, Width: 600, Quantity: 2,
			EdgeBanding: EdgeBanding{Top: true, Left: true}, // 2600mm per unit
		},
		{
			Label: "Back", Length: 1000, Width: 800, Quantity: 1,
			// No banding, ignored entirely
		},
	}

	summary := CalculateEdgeBanding(pieces, 10)

	wantMM := 600.0*4 + 2600.0*2 // 7600
	if summary.TotalLinearMM != wantMM {
		t.Errorf("expected %f mm, got %f", wantMM, summary.TotalLinearMM)
	}
	if summary.TotalLinearM != wantMM/1000 {
		t.Errorf("expected %f m, got %f", wantMM/1000, summary.TotalLinearM)
	}
	if summary.TotalWithWasteMM != 8360 { // ceil(7600 * 1.10)
		t.Errorf("expected 8360 mm with waste, got %f", summary.TotalWithWasteMM)
	}
	if summary.PieceCount != 6 {
		t.Errorf("expected 6 banded units, got %d", summary.PieceCount)
	}
	if summary.EdgeCount != 4*1+2*2 {
		t.Errorf("expected 8 banded edges, got %d", summary.EdgeCount)
	}
}

func TestCalculateEdgeBandingEmpty(t *testing.T) {
	summary := CalculateEdgeBanding(nil, 10)
	if summary.TotalLinearMM != 0 || summary.PieceCount != 0 || summary.EdgeCount != 0 {
		t.Errorf("empty cut list must produce zero summary: %+v", summary)
	}
}
