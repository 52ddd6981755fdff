package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/cutplanner/internal/model"
)

// DefaultInventoryPath returns the default file path for the inventory
// file. This is located at ~/.cutplanner/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// ImportInventory imports an inventory from a user-specified JSON file,
// merging it with the existing inventory. Duplicate IDs are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	offcutIDs := make(map[string]bool, len(existing.Offcuts))
	for _, o := range existing.Offcuts {
		offcutIDs[o.ID] = true
	}
	presetIDs := make(map[string]bool, len(existing.Presets))
	for _, p := range existing.Presets {
		presetIDs[p.ID] = true
	}

	for _, o := range imported.Offcuts {
		if !offcutIDs[o.ID] {
			existing.Offcuts = append(existing.Offcuts, o)
			offcutIDs[o.ID] = true
		}
	}
	for _, p := range imported.Presets {
		if !presetIDs[p.ID] {
			existing.Presets = append(existing.Presets, p)
			presetIDs[p.ID] = true
		}
	}

	return existing, nil
}
