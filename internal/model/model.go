// Package model defines the data types shared by the packing engine,
// importers, exporters and persistence layers: pieces, panels, placements
// and optimization results. All dimensions are millimeters.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle in panel-local coordinates.
// Free rectangles are never mutated in place; split operations replace
// them with fresh values.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Area returns the rectangle area in square mm.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Piece represents one rectangular piece to be cut. Length is the
// dimension along the panel X axis when the piece is not rotated.
type Piece struct {
	ID        string  `json:"id"`
	Reference string  `json:"reference,omitempty"` // Customer or drawing reference
	Label     string  `json:"label"`
	Length    float64 `json:"length"`    // mm
	Width     float64 `json:"width"`     // mm
	Thickness float64 `json:"thickness"` // mm
	Finish    string  `json:"finish"`    // Surface finish / decor name
	Quantity  int     `json:"quantity"`

	EdgeBanding EdgeBanding `json:"edge_banding,omitempty"`
}

// NewPiece creates a Piece with a generated ID.
func NewPiece(label string, length, width, thickness float64, finish string, qty int) Piece {
	return Piece{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Length:    length,
		Width:     width,
		Thickness: thickness,
		Finish:    finish,
		Quantity:  qty,
	}
}

// Area returns the piece area in square mm.
func (p Piece) Area() float64 {
	return p.Length * p.Width
}

// MaxDim returns the larger of the two piece dimensions.
func (p Piece) MaxDim() float64 {
	if p.Length > p.Width {
		return p.Length
	}
	return p.Width
}

// ExpandPieces expands each piece by its quantity into individual unit
// instances. The packer only ever sees unit pieces; quantity is never a
// multiplier inside the engine.
func ExpandPieces(pieces []Piece) []Piece {
	var expanded []Piece
	for _, p := range pieces {
		for i := 0; i < p.Quantity; i++ {
			cp := p
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}
	return expanded
}

// Material identifies one independent packing subproblem: all pieces
// sharing the same thickness and finish are cut from the same panels.
type Material struct {
	Thickness float64 `json:"thickness"`
	Finish    string  `json:"finish"`
	Label     string  `json:"label"`
}

// MaterialKey builds the grouping key for a (thickness, finish) pair.
func MaterialKey(thickness float64, finish string) string {
	return fmt.Sprintf("%g|%s", thickness, finish)
}

// Key returns the grouping key of the material.
func (m Material) Key() string {
	return MaterialKey(m.Thickness, m.Finish)
}

// PlacedPiece is a piece bound to a position on a panel. It is created
// exactly once by the packer and never mutated afterwards.
type PlacedPiece struct {
	Piece   Piece   `json:"piece"`
	X       float64 `json:"x"` // mm from panel left edge
	Y       float64 `json:"y"` // mm from panel top edge
	W       float64 `json:"w"` // Effective footprint width (Length when not rotated)
	H       float64 `json:"h"` // Effective footprint height
	Rotated bool    `json:"rotated"`
}

// Stats summarizes an optimization run.
type Stats struct {
	TotalPanels       int       `json:"total_panels"`
	GlobalUtilization float64   `json:"global_utilization"` // Mean per-panel utilization (%)
	TotalCuts         int       `json:"total_cuts"`         // Estimated guillotine cuts
	Timestamp         time.Time `json:"timestamp"`
}

// OptimizationResult is the terminal, read-only artifact of a run.
type OptimizationResult struct {
	Panels   []*PanelSolution `json:"panels"`
	Oversize []Piece          `json:"oversize,omitempty"` // Pieces too large for the panel in any orientation
	Stats    Stats            `json:"stats"`
}

// cutsPerPanelBase approximates the trim and release cuts every panel
// needs before per-piece cuts are counted.
const cutsPerPanelBase = 4

// BuildResult flattens panel lists into a sequentially numbered result
// and computes summary statistics. Zero panels yields a well-defined
// empty result with zero stats, never NaN.
func BuildResult(panels []*PanelSolution, oversize []Piece) OptimizationResult {
	result := OptimizationResult{
		Panels:   panels,
		Oversize: oversize,
	}

	var utilSum float64
	cuts := 0
	for i, panel := range panels {
		panel.Number = i + 1
		utilSum += panel.Utilization()
		cuts += cutsPerPanelBase + len(panel.Placements)
	}

	result.Stats = Stats{
		TotalPanels: len(panels),
		TotalCuts:   cuts,
		Timestamp:   time.Now().UTC(),
	}
	if len(panels) > 0 {
		result.Stats.GlobalUtilization = utilSum / float64(len(panels))
	}
	return result
}

// Options holds the optimizer and packing configuration.
type Options struct {
	PanelWidth    float64 `json:"panel_width"`  // Stock panel width in mm
	PanelHeight   float64 `json:"panel_height"` // Stock panel height in mm
	AllowRotation bool    `json:"allow_rotation"`

	MaxDuration        time.Duration `json:"max_duration"`        // Wall-clock budget for a run
	StabilityThreshold time.Duration `json:"stability_threshold"` // Stop after this long without improvement
	ProgressInterval   time.Duration `json:"progress_interval"`   // Cadence of progress events

	MinOffcutArea      float64 `json:"min_offcut_area"`     // Smallest remnant worth keeping (sq mm)
	ShuffleProbability float64 `json:"shuffle_probability"` // Chance an iteration uses a random shuffle
}

// DefaultOptions returns the standard configuration: a 2800x2070 mm
// melamine panel with rotation allowed.
func DefaultOptions() Options {
	return Options{
		PanelWidth:         2800,
		PanelHeight:        2070,
		AllowRotation:      true,
		MaxDuration:        20 * time.Second,
		StabilityThreshold: 5 * time.Second,
		ProgressInterval:   200 * time.Millisecond,
		MinOffcutArea:      MinOffcutArea,
		ShuffleProbability: 0.7,
	}
}

// Project ties everything together for save/load.
type Project struct {
	Name    string              `json:"name"`
	Pieces  []Piece             `json:"pieces"`
	Options Options             `json:"options"`
	Result  *OptimizationResult `json:"result,omitempty"`
}

// NewProject creates an empty project with default options.
func NewProject() Project {
	return Project{
		Name:    "Untitled",
		Pieces:  []Piece{},
		Options: DefaultOptions(),
	}
}
