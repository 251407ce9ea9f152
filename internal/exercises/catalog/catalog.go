// Package catalog serves the built-in exercise library. The data ships
// embedded in the binary; there is no write path.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/domain"
)

//go:embed data/exercises.json
var exercisesJSON []byte

type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]int
}

// New parses the embedded catalog. It fails only on a malformed data file,
// which would be a packaging error.
func New() (*Catalog, error) {
	var exercises []domain.Exercise
	if err := json.Unmarshal(exercisesJSON, &exercises); err != nil {
		return nil, fmt.Errorf("failed to parse exercise catalog: %w", err)
	}

	byID := make(map[string]int, len(exercises))
	for i, ex := range exercises {
		byID[ex.ID] = i
	}
	return &Catalog{exercises: exercises, byID: byID}, nil
}

// List returns the exercises matching the query, in catalog order.
func (c *Catalog) List(q domain.Query) []domain.Exercise {
	matched := make([]domain.Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		if matches(ex, q) {
			matched = append(matched, ex)
		}
	}
	return matched
}

func matches(ex domain.Exercise, q domain.Query) bool {
	if q.Muscle != "" && !strings.EqualFold(ex.Muscle, q.Muscle) {
		return false
	}
	if q.Difficulty != "" && !strings.EqualFold(ex.Difficulty, q.Difficulty) {
		return false
	}
	if q.Type != "" && !strings.EqualFold(ex.Type, q.Type) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(ex.Name), needle) &&
			!strings.Contains(strings.ToLower(ex.Instructions), needle) {
			return false
		}
	}
	return true
}

// Get looks an exercise up by its ID.
func (c *Catalog) Get(id string) (*domain.Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("exercise not found")
	}
	ex := c.exercises[i]
	return &ex, nil
}

// Filters collects the distinct filter values, each list in first-seen order.
func (c *Catalog) Filters() domain.Filters {
	return domain.Filters{
		Muscles:      distinct(c.exercises, func(ex domain.Exercise) string { return ex.Muscle }),
		Difficulties: distinct(c.exercises, func(ex domain.Exercise) string { return ex.Difficulty }),
		Types:        distinct(c.exercises, func(ex domain.Exercise) string { return ex.Type }),
		Equipment:    distinct(c.exercises, func(ex domain.Exercise) string { return ex.Equipment }),
	}
}

func distinct(exercises []domain.Exercise, field func(domain.Exercise) string) []string {
	seen := make(map[string]struct{}, len(exercises))
	values := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		v := field(ex)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
