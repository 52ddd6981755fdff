package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutplanner/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewProjectTemplate("Kitchen base unit", "600mm carcass",
		[]model.Piece{model.NewPiece("Side", 720, 560, 19, "BLANC", 2)},
		model.DefaultOptions()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates failed: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	tpl := loaded.Templates[0]
	if tpl.Name != "Kitchen base unit" {
		t.Errorf("expected template name 'Kitchen base unit', got %q", tpl.Name)
	}
	if len(tpl.Pieces) != 1 || tpl.Pieces[0].Label != "Side" {
		t.Errorf("template pieces not round-tripped: %+v", tpl.Pieces)
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should not be nil for a fresh store")
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestLoadTemplatesNilSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{"templates":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should not be nil after loading")
	}
}
