package bookmark

import (
	"github.com/workbench/navstate/internal/domain/entity"
)

// RegisterOpenedDock adds a dock entry ("{position}{screen},") to the dock
// block, creating the block when needed. A closed dock is re-opened in place.
func RegisterOpenedDock(token string, dock *entity.Dock) string {
	if dock == nil || dock.Place == nil {
		return token
	}
	t := Parse(token)
	if d := t.findDock(dock.Position, dock.ScreenID()); d != nil {
		if !d.Closed {
			return token
		}
		d.Closed = false
		return commit(token, t)
	}
	t.Docks = append(t.Docks, DockEntry{Position: dock.Position, ScreenID: dock.ScreenID()})
	t.HasDocks = true
	return commit(token, t)
}

// RegisterClosedDock prefixes the dock entry with '!'. Unknown or already
// closed docks leave the token unchanged, as does a close that would make the
// token reach MaxNavURLSize.
func RegisterClosedDock(token string, dock *entity.Dock) string {
	if isBlank(token) || dock == nil || dock.Place == nil {
		return token
	}
	t := Parse(token)
	d := t.findDock(dock.Position, dock.ScreenID())
	if d == nil || d.Closed {
		return token
	}
	d.Closed = true
	return commit(token, t)
}

// GetDockedScreensFromURL returns the raw dock entries ("WExplorer",
// "!EOutline") in order of appearance.
func GetDockedScreensFromURL(token string) []string {
	t := Parse(token)
	out := make([]string, 0, len(t.Docks))
	for _, d := range t.Docks {
		out = append(out, d.String())
	}
	return dedupe(out)
}

// GetDocksFromURL returns the dock entries in structured form.
func GetDocksFromURL(token string) []entity.DockState {
	t := Parse(token)
	out := make([]entity.DockState, 0, len(t.Docks))
	for _, d := range t.Docks {
		out = append(out, entity.DockState{
			Position: d.Position,
			ScreenID: d.ScreenID,
			Closed:   d.Closed,
		})
	}
	return out
}
