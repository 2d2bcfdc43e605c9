package domain

import "time"

// Project is a single portfolio entry
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tech        string    `json:"tech"`
	Link        string    `json:"link"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Status constants
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Defaults applied to omitted (empty) input fields
const (
	DefaultDescription = "No description provided"
	DefaultTech        = "Various Technologies"
	DefaultLink        = "#"
	DefaultStatus      = StatusInProgress

	// OtherTech groups projects with no tech tag.
	OtherTech = "Other"
)

// ProjectInput carries the data needed to create a project
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tech        string `json:"tech,omitempty"`
	Link        string `json:"link,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ProjectPatch carries the fields to overwrite on update; nil fields are kept
type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Tech        *string `json:"tech,omitempty"`
	Link        *string `json:"link,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Empty reports whether the patch sets no field.
func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Tech == nil && p.Link == nil && p.Status == nil
}

// NewProject builds a project from input, filling defaults and stamping both timestamps.
func NewProject(id int, in ProjectInput, now time.Time) Project {
	return Project{
		ID:          id,
		Name:        in.Name,
		Description: orDefault(in.Description, DefaultDescription),
		Tech:        orDefault(in.Tech, DefaultTech),
		Link:        orDefault(in.Link, DefaultLink),
		Status:      orDefault(in.Status, DefaultStatus),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply merges the set fields of patch into p and refreshes UpdatedAt.
// UpdatedAt never moves backwards.
func (p *Project) Apply(patch ProjectPatch, now time.Time) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tech != nil {
		p.Tech = *patch.Tech
	}
	if patch.Link != nil {
		p.Link = *patch.Link
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}

// TechKey is the grouping key of the project.
func (p Project) TechKey() string {
	return orDefault(p.Tech, OtherTech)
}

// Completed reports whether the project is marked completed.
func (p Project) Completed() bool {
	return p.Status == StatusCompleted
}

// TechGroup is one bucket of GroupedByTech
type TechGroup struct {
	Tech     string    `json:"tech"`
	Projects []Project `json:"projects"`
}

// SeedProjects are the demo entries used to populate an empty portfolio.
func SeedProjects() []ProjectInput {
	return []ProjectInput{
		{Name: "Project A", Description: "Description of Project A"},
		{Name: "Project B", Description: "Description of Project B"},
		{Name: "Project C", Description: "Description of Project C"},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
