package model

import "github.com/google/uuid"

// PanelPreset is a reusable stock panel definition.
type PanelPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Finish    string  `json:"finish"`
}

// NewPanelPreset creates a new PanelPreset with a generated ID.
func NewPanelPreset(name string, width, height, thickness float64, finish string) PanelPreset {
	return PanelPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     width,
		Height:    height,
		Thickness: thickness,
		Finish:    finish,
	}
}

// Inventory holds the offcuts banked from previous runs and the panel
// presets available to new projects.
type Inventory struct {
	Offcuts []Offcut      `json:"offcuts"`
	Presets []PanelPreset `json:"presets"`
}

// DefaultInventory returns an inventory seeded with the common European
// melamine panel sizes.
func DefaultInventory() Inventory {
	return Inventory{
		Offcuts: []Offcut{},
		Presets: []PanelPreset{
			NewPanelPreset("Melamine 2800x2070", 2800, 2070, 19, ""),
			NewPanelPreset("MDF 2440x1220", 2440, 1220, 18, ""),
			NewPanelPreset("Plywood 2500x1250", 2500, 1250, 15, ""),
		},
	}
}

// AddOffcuts banks the given offcuts into the inventory.
func (inv *Inventory) AddOffcuts(offcuts []Offcut) {
	inv.Offcuts = append(inv.Offcuts, offcuts...)
}

// RemoveOffcut deletes the offcut with the given ID. Returns true if an
// offcut was removed.
func (inv *Inventory) RemoveOffcut(id string) bool {
	for i, o := range inv.Offcuts {
		if o.ID == id {
			inv.Offcuts = append(inv.Offcuts[:i], inv.Offcuts[i+1:]...)
			return true
		}
	}
	return false
}

// OffcutsForMaterial returns the banked offcuts matching a material key.
func (inv Inventory) OffcutsForMaterial(thickness float64, finish string) []Offcut {
	key := MaterialKey(thickness, finish)
	var matched []Offcut
	for _, o := range inv.Offcuts {
		if MaterialKey(o.Thickness, o.Finish) == key {
			matched = append(matched, o)
		}
	}
	return matched
}
