// Package domain holds the exercise catalog entities.
package domain

// Exercise is one catalog entry. The catalog is read-only; favourites keep
// their own denormalized copy of these fields.
type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// Query narrows a catalog listing. Empty fields match everything; Search
// matches name and instructions case-insensitively.
type Query struct {
	Muscle     string
	Difficulty string
	Type       string
	Search     string
}

// Filters lists the distinct values present in the catalog, for building
// filter dropdowns.
type Filters struct {
	Muscles      []string `json:"muscles"`
	Difficulties []string `json:"difficulties"`
	Types        []string `json:"types"`
	Equipment    []string `json:"equipment"`
}
