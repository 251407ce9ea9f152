// Package catalog serves the built-in fitness tips, embedded in the binary.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/tips/domain"
)

//go:embed data/tips.json
var tipsJSON []byte

type Catalog struct {
	tips []domain.Tip
	byID map[string]int
}

func New() (*Catalog, error) {
	var tips []domain.Tip
	if err := json.Unmarshal(tipsJSON, &tips); err != nil {
		return nil, fmt.Errorf("failed to parse tips catalog: %w", err)
	}

	byID := make(map[string]int, len(tips))
	for i, tip := range tips {
		byID[tip.ID] = i
	}
	return &Catalog{tips: tips, byID: byID}, nil
}

// List returns tips matching the query. Without Random the order is stable;
// with Random the result is a shuffled sample of at most Random entries.
func (c *Catalog) List(q domain.Query) []domain.Tip {
	matched := make([]domain.Tip, 0, len(c.tips))
	for _, tip := range c.tips {
		if q.Category != "" && !strings.EqualFold(tip.Category, q.Category) {
			continue
		}
		matched = append(matched, tip)
	}

	if q.Random > 0 {
		rand.Shuffle(len(matched), func(i, j int) {
			matched[i], matched[j] = matched[j], matched[i]
		})
		if len(matched) > q.Random {
			matched = matched[:q.Random]
		}
	}
	return matched
}

func (c *Catalog) Get(id string) (*domain.Tip, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("tip not found")
	}
	tip := c.tips[i]
	return &tip, nil
}

// Categories lists the distinct tip categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.tips))
	categories := make([]string, 0, len(c.tips))
	for _, tip := range c.tips {
		if _, ok := seen[tip.Category]; ok {
			continue
		}
		seen[tip.Category] = struct{}{}
		categories = append(categories, tip.Category)
	}
	return categories
}
