package repository

import (
	"strings"

	"github.com/smartcourse/advisor-api/internal/models"
)

// CatalogRepository serves the static university catalog. There is no write
// path; the data set is fixed at construction.
type CatalogRepository struct {
	universities []models.University
	byID         map[string]int
}

// NewCatalogRepository builds a catalog over the provided universities. A
// nil slice falls back to the built-in seed data.
func NewCatalogRepository(universities []models.University) *CatalogRepository {
	if universities == nil {
		universities = SeedUniversities()
	}
	byID := make(map[string]int, len(universities))
	for i, uni := range universities {
		byID[uni.ID] = i
	}
	return &CatalogRepository{universities: universities, byID: byID}
}

// List returns every university in the catalog.
func (r *CatalogRepository) List() []models.University {
	return r.universities
}

// ByID returns the university with the given identifier, or nil.
func (r *CatalogRepository) ByID(id string) *models.University {
	if i, ok := r.byID[id]; ok {
		return &r.universities[i]
	}
	return nil
}

// ByName returns the first university whose name contains the given string,
// case-insensitively, or nil.
func (r *CatalogRepository) ByName(name string) *models.University {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for i := range r.universities {
		if strings.Contains(strings.ToLower(r.universities[i].Name), needle) {
			return &r.universities[i]
		}
	}
	return nil
}

// Resolve looks a university up by id first, then by fuzzy name match.
func (r *CatalogRepository) Resolve(id, name string) *models.University {
	if id != "" {
		if uni := r.ByID(id); uni != nil {
			return uni
		}
	}
	return r.ByName(name)
}
