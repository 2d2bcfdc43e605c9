package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProject_AppliesDefaults(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	p := NewProject(1, ProjectInput{Name: "X"}, now)

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "X", p.Name)
	assert.Equal(t, DefaultDescription, p.Description)
	assert.Equal(t, DefaultTech, p.Tech)
	assert.Equal(t, DefaultLink, p.Link)
	assert.Equal(t, StatusInProgress, p.Status)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestNewProject_KeepsProvidedFields(t *testing.T) {
	p := NewProject(4, ProjectInput{
		Name:        "site",
		Description: "portfolio",
		Tech:        "Go",
		Link:        "https://example.com",
		Status:      StatusCompleted,
	}, time.Now())

	assert.Equal(t, "portfolio", p.Description)
	assert.Equal(t, "Go", p.Tech)
	assert.Equal(t, "https://example.com", p.Link)
	assert.True(t, p.Completed())
}

func TestProject_Apply(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProject(2, ProjectInput{Name: "old", Tech: "Vue"}, created)

	name := "new"
	status := StatusCompleted
	p.Apply(ProjectPatch{Name: &name, Status: &status}, created.Add(time.Hour))

	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "new", p.Name)
	assert.Equal(t, "Vue", p.Tech)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), p.UpdatedAt)

	t.Run("clock going backwards keeps updatedAt", func(t *testing.T) {
		p.Apply(ProjectPatch{Name: &name}, created.Add(-time.Hour))
		assert.Equal(t, created.Add(time.Hour), p.UpdatedAt)
	})

	t.Run("patch can blank a field", func(t *testing.T) {
		empty := ""
		p.Apply(ProjectPatch{Tech: &empty}, created.Add(2*time.Hour))
		assert.Equal(t, "", p.Tech)
		assert.Equal(t, OtherTech, p.TechKey())
	})
}

func TestProjectPatch_Empty(t *testing.T) {
	assert.True(t, ProjectPatch{}.Empty())
	link := "#"
	assert.False(t, ProjectPatch{Link: &link}.Empty())
}

func TestImportErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrMalformedImport, ErrInvalidImport))
	assert.True(t, errors.Is(ErrImportNotList, ErrInvalidImport))
	assert.False(t, errors.Is(ErrProjectNotFound, ErrInvalidImport))
}

func TestSeedProjects(t *testing.T) {
	seeds := SeedProjects()
	assert.Len(t, seeds, 3)
	assert.Equal(t, "Project A", seeds[0].Name)
}
