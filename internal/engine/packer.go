// Package engine implements the guillotine packer and the anytime
// optimizer that drives it. The packer is deterministic; all randomness
// lives in the optimizer's perturbation step.
package engine

import (
	"math"

	"github.com/piwi3910/cutplanner/internal/model"
)

// placement records the best candidate found during a free-rectangle scan.
type placement struct {
	rectIdx int
	w, h    float64
	rotated bool
	score   float64
}

// Pack fills stock panels with the pieces in input order using
// best-short-side-fit placement and guillotine splitting. Pieces that do
// not fit the current panel are deferred to the next one; pieces that
// cannot fit an empty panel in any allowed orientation are returned as
// oversize. Given identical inputs the output is bit-identical.
func Pack(pieces []model.Piece, panelW, panelH float64, allowRotation bool, minOffcutArea float64) ([]*model.PanelSolution, []model.Piece) {
	var panels []*model.PanelSolution
	var oversize []model.Piece

	remaining := pieces
	for len(remaining) > 0 {
		panel := model.NewPanelSolution(panelW, panelH)
		var deferred []model.Piece

		for _, piece := range remaining {
			if !placePiece(panel, piece, allowRotation) {
				deferred = append(deferred, piece)
			}
		}

		if len(panel.Placements) == 0 {
			// Even an empty panel admitted nothing: every remaining piece
			// exceeds the panel extents in all allowed orientations.
			oversize = append(oversize, deferred...)
			break
		}

		panel.Finalize(minOffcutArea)
		panels = append(panels, panel)
		remaining = deferred
	}

	return panels, oversize
}

// placePiece scans all free rectangles of the panel for the globally
// best short-side fit and, on success, replaces the chosen rectangle
// with its guillotine split remainders. Ties keep the first-encountered
// candidate.
func placePiece(panel *model.PanelSolution, piece model.Piece, allowRotation bool) bool {
	best := placement{rectIdx: -1}

	for i, fr := range panel.FreeRects {
		if piece.Length <= fr.W && piece.Width <= fr.H {
			score := math.Min(fr.W-piece.Length, fr.H-piece.Width)
			if best.rectIdx < 0 || score < best.score {
				best = placement{rectIdx: i, w: piece.Length, h: piece.Width, score: score}
			}
		}
		if allowRotation && piece.Length != piece.Width &&
			piece.Width <= fr.W && piece.Length <= fr.H {
			score := math.Min(fr.W-piece.Width, fr.H-piece.Length)
			if best.rectIdx < 0 || score < best.score {
				best = placement{rectIdx: i, w: piece.Width, h: piece.Length, rotated: true, score: score}
			}
		}
	}

	if best.rectIdx < 0 {
		return false
	}

	chosen := panel.FreeRects[best.rectIdx]
	panel.Placements = append(panel.Placements, model.PlacedPiece{
		Piece:   piece,
		X:       chosen.X,
		Y:       chosen.Y,
		W:       best.w,
		H:       best.h,
		Rotated: best.rotated,
	})

	// Replace the consumed rectangle with the split remainders.
	splits := splitFreeRect(chosen, best.w, best.h)
	rects := make([]model.Rect, 0, len(panel.FreeRects)-1+len(splits))
	rects = append(rects, panel.FreeRects[:best.rectIdx]...)
	rects = append(rects, panel.FreeRects[best.rectIdx+1:]...)
	rects = append(rects, splits...)
	panel.FreeRects = rects

	return true
}

// splitFreeRect cuts the leftover of a free rectangle after placing a
// usedW x usedH piece at its origin. The split axis is the one whose
// larger resulting rectangle is biggest; vertical wins ties.
func splitFreeRect(free model.Rect, usedW, usedH float64) []model.Rect {
	extraW := free.W - usedW
	extraH := free.H - usedH

	vertical := math.Max(extraW*free.H, usedW*extraH)
	horizontal := math.Max(extraW*usedH, free.W*extraH)

	var right, below model.Rect
	if vertical >= horizontal {
		// Vertical-first: the right remainder takes the full height.
		right = model.Rect{X: free.X + usedW, Y: free.Y, W: extraW, H: free.H}
		below = model.Rect{X: free.X, Y: free.Y + usedH, W: usedW, H: extraH}
	} else {
		// Horizontal-first: the bottom remainder takes the full width.
		right = model.Rect{X: free.X + usedW, Y: free.Y, W: extraW, H: usedH}
		below = model.Rect{X: free.X, Y: free.Y + usedH, W: free.W, H: extraH}
	}

	var splits []model.Rect
	if right.Area() > 0 {
		splits = append(splits, right)
	}
	if below.Area() > 0 {
		splits = append(splits, below)
	}
	return splits
}
