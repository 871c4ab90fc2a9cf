// Package thickness maintains grouped paste-thickness overrides for pads,
// with a linear undo/redo history. A pad belongs to at most one group at any
// instant; ungrouped pads fall back to their default thickness.
package thickness

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Group is a named set of pads sharing one thickness override.
type Group struct {
	Name      string
	PadIDs    []int // sorted, no duplicates
	Thickness float64
	CreatedAt time.Time
}

// Change records one thickness edit for undo/redo. OldThickness maps each
// affected pad to the override it had before the change; pads absent from
// the map were at their default. Reset marks a "back to default" change, in
// which case NewThickness is meaningless.
type Change struct {
	PadIDs       []int
	OldThickness map[int]float64
	NewThickness float64
	Reset        bool
	At           time.Time
}

// Manager owns the group table, the pad-to-group index and the undo/redo
// stacks. It never touches pad geometry. Not safe for concurrent use;
// callers sharing a Manager across goroutines must serialize access.
type Manager struct {
	groups     map[string]*Group
	padToGroup map[int]string
	undoStack  []Change
	redoStack  []Change
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		groups:     make(map[string]*Group),
		padToGroup: make(map[int]string),
	}
}

// SetThickness applies a thickness override to the given pads as a new
// anonymous group, stealing pads from any group they currently belong to.
// Groups left empty are deleted. The change is pushed onto the undo stack
// and the redo stack is cleared. Returns the generated group name.
func (m *Manager) SetThickness(padIDs []int, thickness float64) string {
	name := anonName("group")
	m.applyGroup(name, padIDs, thickness)
	return name
}

// CreateGroup is SetThickness with a caller-chosen name. It refuses names
// that are already taken and returns false without recording anything.
func (m *Manager) CreateGroup(name string, padIDs []int, thickness float64) bool {
	if _, exists := m.groups[name]; exists {
		return false
	}
	m.applyGroup(name, padIDs, thickness)
	return true
}

// applyGroup moves the pads into a fresh group and records the undo entry.
func (m *Manager) applyGroup(name string, padIDs []int, thickness float64) {
	ids := normalizeIDs(padIDs)
	old := m.detach(ids)

	m.groups[name] = &Group{
		Name:      name,
		PadIDs:    ids,
		Thickness: thickness,
		CreatedAt: time.Now(),
	}
	for _, id := range ids {
		m.padToGroup[id] = name
	}

	m.pushUndo(Change{
		PadIDs:       ids,
		OldThickness: old,
		NewThickness: thickness,
	})
}

// RemoveGroup disbands a named group, returning its pads to their default
// thickness, and records an undoable reset change. Returns false if no such
// group exists.
func (m *Manager) RemoveGroup(name string) bool {
	g, ok := m.groups[name]
	if !ok {
		return false
	}
	old := make(map[int]float64, len(g.PadIDs))
	for _, id := range g.PadIDs {
		old[id] = g.Thickness
		delete(m.padToGroup, id)
	}
	delete(m.groups, name)

	m.pushUndo(Change{
		PadIDs:       append([]int(nil), g.PadIDs...),
		OldThickness: old,
		Reset:        true,
	})
	return true
}

// Thickness returns the override for a pad, or def if the pad is ungrouped.
func (m *Manager) Thickness(padID int, def float64) float64 {
	if name, ok := m.padToGroup[padID]; ok {
		return m.groups[name].Thickness
	}
	return def
}

// HasOverride reports whether the pad currently carries an override.
func (m *Manager) HasOverride(padID int) bool {
	_, ok := m.padToGroup[padID]
	return ok
}

// GroupOf returns a copy of the group the pad belongs to.
func (m *Manager) GroupOf(padID int) (Group, bool) {
	name, ok := m.padToGroup[padID]
	if !ok {
		return Group{}, false
	}
	return copyGroup(m.groups[name]), true
}

// Groups returns copies of all groups, oldest first (ties broken by name).
func (m *Manager) Groups() []Group {
	out := make([]Group, 0, len(m.groups))
	for _, g := range m.groups {
		out = append(out, copyGroup(g))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Undo reverts the most recent change: affected pads leave their present
// group, and pads that had a recorded prior override are regrouped at that
// value. Returns the IDs of pads whose effective thickness changed, or an
// empty slice when there is nothing to undo.
func (m *Manager) Undo() []int {
	if len(m.undoStack) == 0 {
		return nil
	}
	change := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	affected := make(map[int]bool)
	for _, id := range change.PadIDs {
		if m.removeFromGroup(id) {
			affected[id] = true
		}
	}

	// Recreate one group per distinct prior thickness value.
	byValue := make(map[float64][]int)
	for _, id := range change.PadIDs {
		if old, ok := change.OldThickness[id]; ok {
			byValue[old] = append(byValue[old], id)
			affected[id] = true
		}
	}
	for value, ids := range byValue {
		name := anonName("restored")
		m.groups[name] = &Group{
			Name:      name,
			PadIDs:    normalizeIDs(ids),
			Thickness: value,
			CreatedAt: time.Now(),
		}
		for _, id := range ids {
			m.padToGroup[id] = name
		}
	}

	m.redoStack = append(m.redoStack, change)
	return sortedKeys(affected)
}

// Redo reapplies the most recently undone change, capturing the current
// state as a fresh undo entry. Returns the affected pad IDs, or an empty
// slice when there is nothing to redo.
func (m *Manager) Redo() []int {
	if len(m.redoStack) == 0 {
		return nil
	}
	change := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	old := m.detach(change.PadIDs)

	if !change.Reset {
		name := anonName("group")
		m.groups[name] = &Group{
			Name:      name,
			PadIDs:    append([]int(nil), change.PadIDs...),
			Thickness: change.NewThickness,
			CreatedAt: time.Now(),
		}
		for _, id := range change.PadIDs {
			m.padToGroup[id] = name
		}
	}

	m.undoStack = append(m.undoStack, Change{
		PadIDs:       append([]int(nil), change.PadIDs...),
		OldThickness: old,
		NewThickness: change.NewThickness,
		Reset:        change.Reset,
		At:           time.Now(),
	})
	return append([]int(nil), change.PadIDs...)
}

// CanUndo reports whether at least one change can be undone.
func (m *Manager) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo reports whether at least one undone change can be reapplied.
func (m *Manager) CanRedo() bool {
	return len(m.redoStack) > 0
}

// Clear discards all groups and the entire undo/redo history. Used when a
// new command stream is loaded.
func (m *Manager) Clear() {
	m.groups = make(map[string]*Group)
	m.padToGroup = make(map[int]string)
	m.undoStack = nil
	m.redoStack = nil
}

// Export returns copies of all groups for persistence. History is not part
// of the persisted state.
func (m *Manager) Export() []Group {
	return m.Groups()
}

// Restore replaces the manager's state with the given groups, rebuilding
// the pad index and dropping all history. Groups with overlapping pad sets
// or duplicate names are rejected, leaving the manager untouched.
func (m *Manager) Restore(groups []Group) error {
	newGroups := make(map[string]*Group, len(groups))
	newIndex := make(map[int]string)
	for _, g := range groups {
		if _, dup := newGroups[g.Name]; dup {
			return fmt.Errorf("duplicate group name %q", g.Name)
		}
		cp := copyGroup(&g)
		cp.PadIDs = normalizeIDs(cp.PadIDs)
		for _, id := range cp.PadIDs {
			if other, taken := newIndex[id]; taken {
				return fmt.Errorf("pad %d appears in groups %q and %q", id, other, g.Name)
			}
			newIndex[id] = g.Name
		}
		newGroups[g.Name] = &cp
	}
	m.groups = newGroups
	m.padToGroup = newIndex
	m.undoStack = nil
	m.redoStack = nil
	return nil
}

// detach removes the pads from whatever groups they belong to, deleting
// groups left empty, and returns the prior overrides of the grouped pads.
func (m *Manager) detach(padIDs []int) map[int]float64 {
	old := make(map[int]float64)
	for _, id := range padIDs {
		name, ok := m.padToGroup[id]
		if !ok {
			continue
		}
		old[id] = m.groups[name].Thickness
		m.removeFromGroup(id)
	}
	return old
}

// removeFromGroup takes one pad out of its current group, deleting the
// group if it becomes empty. Reports whether the pad was grouped.
func (m *Manager) removeFromGroup(padID int) bool {
	name, ok := m.padToGroup[padID]
	if !ok {
		return false
	}
	g := m.groups[name]
	for i, id := range g.PadIDs {
		if id == padID {
			g.PadIDs = append(g.PadIDs[:i], g.PadIDs[i+1:]...)
			break
		}
	}
	delete(m.padToGroup, padID)
	if len(g.PadIDs) == 0 {
		delete(m.groups, name)
	}
	return true
}

func (m *Manager) pushUndo(c Change) {
	c.At = time.Now()
	m.undoStack = append(m.undoStack, c)
	m.redoStack = nil
}

// anonName generates an opaque group name with the given prefix.
func anonName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func copyGroup(g *Group) Group {
	return Group{
		Name:      g.Name,
		PadIDs:    append([]int(nil), g.PadIDs...),
		Thickness: g.Thickness,
		CreatedAt: g.CreatedAt,
	}
}

// normalizeIDs returns a sorted copy with duplicates removed.
func normalizeIDs(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	n := 0
	for i, id := range out {
		if i == 0 || id != out[n-1] {
			out[n] = id
			n++
		}
	}
	return out[:n]
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
