package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/paste-calculator/internal/thickness"
)

func TestSettingsRoundTrip(t *testing.T) {
	m := thickness.NewManager()
	m.SetThickness([]int{1, 2, 3}, 0.2)
	if !m.CreateGroup("fine-pitch", []int{7, 9}, 0.1) {
		t.Fatal("CreateGroup failed")
	}
	before := m.Export()

	path := filepath.Join(t.TempDir(), "thickness.json")
	if err := SaveSettings(path, m); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	m.Clear()
	if len(m.Groups()) != 0 {
		t.Fatal("clear should empty the manager")
	}

	if err := LoadSettings(path, m); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	after := m.Export()

	if len(after) != len(before) {
		t.Fatalf("expected %d groups after reload, got %d", len(before), len(after))
	}
	byName := make(map[string]thickness.Group, len(after))
	for _, g := range after {
		byName[g.Name] = g
	}
	for _, want := range before {
		got, ok := byName[want.Name]
		if !ok {
			t.Errorf("group %q missing after reload", want.Name)
			continue
		}
		if got.Thickness != want.Thickness {
			t.Errorf("group %q thickness %g != %g", want.Name, got.Thickness, want.Thickness)
		}
		if len(got.PadIDs) != len(want.PadIDs) {
			t.Errorf("group %q pad ids %v != %v", want.Name, got.PadIDs, want.PadIDs)
			continue
		}
		for i := range want.PadIDs {
			if got.PadIDs[i] != want.PadIDs[i] {
				t.Errorf("group %q pad ids %v != %v", want.Name, got.PadIDs, want.PadIDs)
				break
			}
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("group %q timestamp %v != %v", want.Name, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestLoadSettingsReplacesStateAndDropsHistory(t *testing.T) {
	saved := thickness.NewManager()
	saved.CreateGroup("stencil-step", []int{4, 5}, 0.25)
	path := filepath.Join(t.TempDir(), "thickness.json")
	if err := SaveSettings(path, saved); err != nil {
		t.Fatal(err)
	}

	m := thickness.NewManager()
	m.SetThickness([]int{1}, 0.9)
	if err := LoadSettings(path, m); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if m.Thickness(1, 0.15) != 0.15 {
		t.Error("pre-load groups must be replaced")
	}
	if m.Thickness(4, 0.15) != 0.25 {
		t.Error("loaded group not in effect")
	}
	if m.CanUndo() || m.CanRedo() {
		t.Error("load must not carry undo/redo history")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	m := thickness.NewManager()
	err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"), m)
	if err == nil {
		t.Fatal("expected an error for a missing settings file")
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	m := thickness.NewManager()
	m.SetThickness([]int{1}, 0.2)
	if err := LoadSettings(path, m); err == nil {
		t.Fatal("expected an error for a malformed settings file")
	}
	if m.Thickness(1, 0.15) != 0.2 {
		t.Error("failed load must leave current state untouched")
	}
}

func TestSaveSettingsCreatesParentDirs(t *testing.T) {
	m := thickness.NewManager()
	m.SetThickness([]int{1}, 0.2)

	path := filepath.Join(t.TempDir(), "nested", "dir", "thickness.json")
	if err := SaveSettings(path, m); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
}
