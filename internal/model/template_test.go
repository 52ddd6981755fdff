package model

import "testing"

func TestNewProjectTemplate(t *testing.T) {
	pieces := []Piece{NewPiece("Side", 720, 560, 19, "BLANC", 2)}
	tpl := NewProjectTemplate("Base unit", "600mm carcass", pieces, DefaultOptions())

	if tpl.ID == "" {
		t.Error("template must get a generated ID")
	}
	if tpl.CreatedAt == "" || tpl.UpdatedAt == "" {
		t.Error("template timestamps must be set")
	}

	// The template holds its own copy of the pieces
	tpl.Pieces[0].Label = "changed"
	if pieces[0].Label != "Side" {
		t.Error("template must not share the caller's piece slice")
	}
}

func TestTemplateToProjectGetsFreshPieceIDs(t *testing.T) {
	pieces := []Piece{NewPiece("Side", 720, 560, 19, "BLANC", 2)}
	tpl := NewProjectTemplate("Base unit", "", pieces, DefaultOptions())

	p := tpl.ToProject("My kitchen")

	if p.Name != "My kitchen" {
		t.Errorf("unexpected project name: %s", p.Name)
	}
	if len(p.Pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(p.Pieces))
	}
	if p.Pieces[0].ID == tpl.Pieces[0].ID {
		t.Error("project pieces must get fresh IDs")
	}
	if p.Pieces[0].Label != "Side" || p.Pieces[0].Quantity != 2 {
		t.Errorf("piece data not carried over: %+v", p.Pieces[0])
	}
}

func TestTemplateTouch(t *testing.T) {
	tpl := NewProjectTemplate("X", "", nil, DefaultOptions())
	tpl.UpdatedAt = "2000-01-01T00:00:00Z"
	tpl.Touch()
	if tpl.UpdatedAt == "2000-01-01T00:00:00Z" {
		t.Error("Touch must refresh UpdatedAt")
	}
}

func TestTemplateStoreAddRemoveFind(t *testing.T) {
	store := NewTemplateStore()
	a := NewProjectTemplate("A", "", nil, DefaultOptions())
	b := NewProjectTemplate("B", "", nil, DefaultOptions())
	store.Add(a)
	store.Add(b)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}
	if found := store.Find(b.ID); found == nil || found.Name != "B" {
		t.Errorf("Find(%s) failed: %+v", b.ID, found)
	}
	if store.Find("missing") != nil {
		t.Error("Find must return nil for unknown IDs")
	}
	if !store.Remove(a.ID) {
		t.Error("removing an existing template must return true")
	}
	if store.Remove(a.ID) {
		t.Error("removing a missing template must return false")
	}
	if len(store.Templates) != 1 || store.Templates[0].Name != "B" {
		t.Errorf("unexpected remaining templates: %+v", store.Templates)
	}
}
