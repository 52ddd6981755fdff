package model

// PanelSolution is the packing state for one stock panel: the placed
// pieces in placement order, the working set of free rectangles, and the
// offcuts retained at finalization. At every point the placed footprints
// and free rectangles partition the panel without overlap.
type PanelSolution struct {
	Number     int           `json:"number"`
	Width      float64       `json:"width"`  // Stock panel width in mm
	Height     float64       `json:"height"` // Stock panel height in mm
	Material   Material      `json:"material"`
	Placements []PlacedPiece `json:"placements"`
	FreeRects  []Rect        `json:"-"`       // Working set, emptied at finalization
	Offcuts    []Rect        `json:"offcuts"` // Remnants above the reuse threshold
}

// NewPanelSolution creates an empty panel whose free space is the single
// full-panel rectangle.
func NewPanelSolution(width, height float64) *PanelSolution {
	return &PanelSolution{
		Width:     width,
		Height:    height,
		FreeRects: []Rect{{X: 0, Y: 0, W: width, H: height}},
	}
}

// UsedArea returns the total area covered by placed pieces.
func (ps *PanelSolution) UsedArea() float64 {
	var total float64
	for _, p := range ps.Placements {
		total += p.W * p.H
	}
	return total
}

// TotalArea returns the stock panel area.
func (ps *PanelSolution) TotalArea() float64 {
	return ps.Width * ps.Height
}

// Utilization returns the used percentage of the panel.
func (ps *PanelSolution) Utilization() float64 {
	ta := ps.TotalArea()
	if ta == 0 {
		return 0
	}
	return (ps.UsedArea() / ta) * 100.0
}

// Waste returns the unused panel area in square mm.
func (ps *PanelSolution) Waste() float64 {
	return ps.TotalArea() - ps.UsedArea()
}

// Finalize retains free rectangles above minOffcutArea as offcuts and
// discards the rest. A finalized panel is never re-opened for placement.
func (ps *PanelSolution) Finalize(minOffcutArea float64) {
	for _, r := range ps.FreeRects {
		if r.Area() >= minOffcutArea {
			ps.Offcuts = append(ps.Offcuts, r)
		}
	}
	ps.FreeRects = nil
}

// LargestOffcutArea returns the area of the single largest retained
// offcut, or 0 if the panel has none.
func (ps *PanelSolution) LargestOffcutArea() float64 {
	var largest float64
	for _, o := range ps.Offcuts {
		if a := o.Area(); a > largest {
			largest = a
		}
	}
	return largest
}

// Clone returns a deep copy of the panel. Candidate solutions are always
// built fresh by the packer, so clones are only needed when a caller
// wants to keep a snapshot across candidate generations.
func (ps *PanelSolution) Clone() *PanelSolution {
	cp := &PanelSolution{
		Number:   ps.Number,
		Width:    ps.Width,
		Height:   ps.Height,
		Material: ps.Material,
	}
	if ps.Placements != nil {
		cp.Placements = make([]PlacedPiece, len(ps.Placements))
		copy(cp.Placements, ps.Placements)
	}
	if ps.FreeRects != nil {
		cp.FreeRects = make([]Rect, len(ps.FreeRects))
		copy(cp.FreeRects, ps.FreeRects)
	}
	if ps.Offcuts != nil {
		cp.Offcuts = make([]Rect, len(ps.Offcuts))
		copy(cp.Offcuts, ps.Offcuts)
	}
	return cp
}
