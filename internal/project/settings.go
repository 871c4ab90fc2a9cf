// Package project persists thickness settings to disk as JSON, following
// the application's dot-directory layout.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/paste-calculator/internal/thickness"
)

// settingsFile is the on-disk layout of a thickness settings file. Undo/redo
// history is deliberately not part of it.
type settingsFile struct {
	Groups map[string]groupRecord `json:"groups"`
}

type groupRecord struct {
	PadIDs    []int     `json:"pad_ids"`
	Thickness float64   `json:"thickness"`
	CreatedAt time.Time `json:"created_at"` // RFC 3339
}

// DefaultSettingsDir returns the default directory for application files.
// On all platforms this is ~/.pastecalc/
func DefaultSettingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pastecalc")
}

// DefaultSettingsPath returns the default path for the thickness settings file.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultSettingsDir(), "thickness.json")
}

// SaveSettings writes the manager's group table to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveSettings(path string, m *thickness.Manager) error {
	file := settingsFile{Groups: make(map[string]groupRecord)}
	for _, g := range m.Export() {
		file.Groups[g.Name] = groupRecord{
			PadIDs:    g.PadIDs,
			Thickness: g.Thickness,
			CreatedAt: g.CreatedAt,
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads a thickness settings file and replaces the manager's
// state with its contents. Current groups and history are discarded only
// when the file parses and validates cleanly.
func LoadSettings(path string, m *thickness.Manager) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file settingsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("malformed settings file %s: %w", path, err)
	}

	groups := make([]thickness.Group, 0, len(file.Groups))
	for name, rec := range file.Groups {
		groups = append(groups, thickness.Group{
			Name:      name,
			PadIDs:    rec.PadIDs,
			Thickness: rec.Thickness,
			CreatedAt: rec.CreatedAt,
		})
	}
	return m.Restore(groups)
}
