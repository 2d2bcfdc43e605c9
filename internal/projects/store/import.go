package store

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// importEntry is one element of an import list. id and updatedAt are not
// read; the store assigns both.
type importEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	Link        string `json:"link"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// Accepted createdAt layouts, tried in order.
var importTimeLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// decodeImport parses an export list. The top level must be a list and
// every element an object.
func decodeImport(data []byte) ([]domain.Project, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.ErrMalformedImport
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrImportNotList
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, domain.ErrMalformedImport
	}

	projects := make([]domain.Project, 0, len(elems))
	for _, el := range elems {
		if trimmed := bytes.TrimSpace(el); len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, domain.ErrMalformedImport
		}
		var e importEntry
		if err := json.Unmarshal(el, &e); err != nil {
			return nil, domain.ErrMalformedImport
		}
		created, err := parseImportTime(e.CreatedAt)
		if err != nil {
			return nil, domain.ErrMalformedImport
		}
		projects = append(projects, domain.Project{
			Name:        e.Name,
			Description: e.Description,
			Tech:        e.Tech,
			Link:        e.Link,
			Status:      e.Status,
			CreatedAt:   created,
		})
	}
	return projects, nil
}

// parseImportTime returns the zero time for an empty value.
func parseImportTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range importTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
