package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutplanner/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.LastExportDir = "/tmp/exports"

	inv := model.DefaultInventory()
	inv.Offcuts = []model.Offcut{{ID: "off1", Width: 300, Height: 200, Thickness: 19}}

	store := model.NewTemplateStore()
	store.Add(model.NewProjectTemplate("Shelf unit", "", nil, model.DefaultOptions()))

	if err := ExportAllData(path, cfg, inv, store); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version == "" {
		t.Error("backup version missing")
	}
	if backup.CreatedAt == "" {
		t.Error("backup timestamp missing")
	}
	if backup.Config.LastExportDir != "/tmp/exports" {
		t.Errorf("config not round-tripped: %+v", backup.Config)
	}
	if len(backup.Inventory.Offcuts) != 1 {
		t.Errorf("expected 1 offcut, got %d", len(backup.Inventory.Offcuts))
	}
	if len(backup.Templates.Templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(backup.Templates.Templates))
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version, got nil")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestImportAllDataNilRecentProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := []byte(`{"version":"1.0.0","config":{"recent_projects":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentProjects == nil {
		t.Error("RecentProjects should not be nil after import")
	}
}
