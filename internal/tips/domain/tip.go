// Package domain holds the fitness tip entities.
package domain

// Tip is one entry of the built-in advice library.
type Tip struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// Query narrows a tips listing. Category matches case-insensitively; a
// positive Random caps the result at that many randomly chosen tips.
type Query struct {
	Category string
	Random   int
}
