package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutplanner/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")

	p := model.NewProject()
	p.Name = "Wardrobe"
	p.Pieces = []model.Piece{
		model.NewPiece("Side", 2000, 600, 19, "BLANC", 2),
		model.NewPiece("Shelf", 564, 550, 19, "BLANC", 5),
	}
	p.Options.AllowRotation = false

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if loaded.Name != "Wardrobe" {
		t.Errorf("expected name Wardrobe, got %s", loaded.Name)
	}
	if len(loaded.Pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(loaded.Pieces))
	}
	if loaded.Pieces[0].Label != "Side" || loaded.Pieces[0].Quantity != 2 {
		t.Errorf("first piece not round-tripped: %+v", loaded.Pieces[0])
	}
	if loaded.Options.AllowRotation {
		t.Error("AllowRotation should be false after loading")
	}
}

func TestSaveProjectCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "project.json")

	if err := SaveProject(path, model.NewProject()); err != nil {
		t.Fatalf("SaveProject should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("project file was not created")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadProjectInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadProjectNilPieces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"name":"X","pieces":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if p.Pieces == nil {
		t.Error("Pieces should not be nil after loading")
	}
}
