package entity

import "strings"

// DockPosition is the perspective edge a screen is docked to.
type DockPosition string

const (
	DockNorth DockPosition = "N"
	DockSouth DockPosition = "S"
	DockEast  DockPosition = "E"
	DockWest  DockPosition = "W"
)

// ShortName returns the single letter used in bookmark tokens.
func (p DockPosition) ShortName() string {
	return string(p)
}

// IsValid reports whether p is one of the four edges.
func (p DockPosition) IsValid() bool {
	switch p {
	case DockNorth, DockSouth, DockEast, DockWest:
		return true
	}
	return false
}

// ParseDockPosition accepts either the short letter or the edge name
// ("west", "W", "w"). The second return value is false for anything else.
func ParseDockPosition(s string) (DockPosition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return DockNorth, true
	case "s", "south":
		return DockSouth, true
	case "e", "east":
		return DockEast, true
	case "w", "west":
		return DockWest, true
	}
	return "", false
}

// Dock is a screen docked to one edge of a perspective.
type Dock struct {
	Position      DockPosition
	Place         PlaceRequest
	PerspectiveID string
}

// NewDock creates a dock for the given screen place.
func NewDock(position DockPosition, place PlaceRequest, perspectiveID string) *Dock {
	return &Dock{
		Position:      position,
		Place:         place,
		PerspectiveID: perspectiveID,
	}
}

// ScreenID returns the full identifier of the docked screen.
func (d *Dock) ScreenID() string {
	if d == nil || d.Place == nil {
		return ""
	}
	return d.Place.FullIdentifier()
}

// ID returns the position letter followed by the screen identifier ("WExplorer").
func (d *Dock) ID() string {
	if d == nil {
		return ""
	}
	return d.Position.ShortName() + d.ScreenID()
}
