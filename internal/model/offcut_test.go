package model

import "testing"

func TestCollectOffcuts(t *testing.T) {
	p1 := NewPanelSolution(2800, 2070)
	p1.Number = 1
	p1.Material = Material{Thickness: 19, Finish: "BLANC"}
	p1.Offcuts = []Rect{
		{X: 100, Y: 0, W: 400, H: 300},
		{X: 0, Y: 500, W: 40, H: 2000}, // below minimum dimension, dropped
	}

	p2 := NewPanelSolution(2800, 2070)
	p2.Number = 2
	p2.Material = Material{Thickness: 16, Finish: "NOIR"}
	p2.Offcuts = []Rect{{X: 0, Y: 0, W: 1000, H: 800}}

	result := OptimizationResult{Panels: []*PanelSolution{p1, p2}}
	offcuts := CollectOffcuts(result)

	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}

	// Sorted area descending
	if offcuts[0].Area() < offcuts[1].Area() {
		t.Error("offcuts must be sorted by area descending")
	}
	if offcuts[0].PanelNumber != 2 {
		t.Errorf("largest offcut must come from panel 2, got panel %d", offcuts[0].PanelNumber)
	}
	if offcuts[0].Thickness != 16 || offcuts[0].Finish != "NOIR" {
		t.Errorf("offcut must inherit panel material: %+v", offcuts[0])
	}
	if offcuts[1].Width != 400 || offcuts[1].Height != 300 {
		t.Errorf("unexpected offcut dimensions: %+v", offcuts[1])
	}
	for _, o := range offcuts {
		if o.ID == "" {
			t.Error("offcuts must get generated IDs")
		}
	}
}

func TestCollectOffcutsEmpty(t *testing.T) {
	if got := CollectOffcuts(OptimizationResult{}); len(got) != 0 {
		t.Errorf("expected no offcuts, got %d", len(got))
	}
}

func TestTotalOffcutArea(t *testing.T) {
	offcuts := []Offcut{
		{Width: 400, Height: 300},
		{Width: 100, Height: 100},
	}
	if TotalOffcutArea(offcuts) != 130000 {
		t.Errorf("expected 130000, got %f", TotalOffcutArea(offcuts))
	}
	if TotalOffcutArea(nil) != 0 {
		t.Error("empty list must total 0")
	}
}
