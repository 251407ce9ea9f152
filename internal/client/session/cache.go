// Package session keeps the client's login state: a small on-disk cache of
// the token and user snapshot, and the in-memory session built on top of it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// User is the client-side snapshot of the authenticated account. It mirrors
// what the API returns and never contains password material.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Data is what the cache persists: both halves together or nothing.
type Data struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Complete reports whether both the token and the user snapshot are present.
func (d Data) Complete() bool {
	return d.Token != "" && d.User != nil
}

// Cache stores the session in a single JSON file. Writes go through a temp
// file and rename, so a crash can never leave a half-written session behind.
type Cache struct {
	path string
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Persist writes the session atomically. Incomplete data is refused; the
// cache holds either a full session or none.
func (c *Cache) Persist(data Data) error {
	if !data.Complete() {
		return errors.New("refusing to persist incomplete session")
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Restore loads the cached session. A missing, unreadable, or partial file
// restores to the empty state rather than an error; the caller simply starts
// unauthenticated.
func (c *Cache) Restore() Data {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return Data{}
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}
	}
	if !data.Complete() {
		return Data{}
	}
	return data
}

// Clear removes the cached session. Clearing an already-empty cache is a
// no-op, so the call is always safe.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
