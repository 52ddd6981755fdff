package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate is a reusable project configuration that captures
// pieces and options but not optimization results.
type ProjectTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Pieces      []Piece `json:"pieces"`
	Options     Options `json:"options"`
}

// NewProjectTemplate creates a template from the given project data.
// It copies pieces and options but intentionally excludes results.
func NewProjectTemplate(name, description string, pieces []Piece, options Options) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Pieces:      copyPieces(pieces),
		Options:     options,
	}
}

// ToProject creates a new Project from this template. Pieces get fresh
// IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	pieces := copyPieces(t.Pieces)
	for i := range pieces {
		pieces[i].ID = uuid.New().String()[:8]
	}
	return Project{
		Name:    projectName,
		Pieces:  pieces,
		Options: t.Options,
	}
}

// Touch updates the template's UpdatedAt timestamp.
func (t *ProjectTemplate) Touch() {
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// TemplateStore is the persisted collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore returns an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []ProjectTemplate{}}
}

// Add appends a template to the store.
func (s *TemplateStore) Add(t ProjectTemplate) {
	s.Templates = append(s.Templates, t)
}

// Remove deletes the template with the given ID. Returns true if a
// template was removed.
func (s *TemplateStore) Remove(id string) bool {
	for i, t := range s.Templates {
		if t.ID == id {
			s.Templates = append(s.Templates[:i], s.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the template with the given ID, or nil.
func (s *TemplateStore) Find(id string) *ProjectTemplate {
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i]
		}
	}
	return nil
}

func copyPieces(pieces []Piece) []Piece {
	cp := make([]Piece, len(pieces))
	copy(cp, pieces)
	return cp
}
