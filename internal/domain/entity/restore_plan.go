package entity

// RestorePlan is the decoded view of a bookmark token: what the workbench
// has to open (or leave closed) to reproduce it.
type RestorePlan struct {
	Token         string                       `json:"token" yaml:"token"`
	PerspectiveID string                       `json:"perspective_id,omitempty" yaml:"perspective_id,omitempty"`
	OpenScreens   []string                     `json:"open_screens" yaml:"open_screens"`
	ClosedScreens []string                     `json:"closed_screens" yaml:"closed_screens"`
	OtherScreens  []string                     `json:"other_screens" yaml:"other_screens"`
	Docks         []DockState                  `json:"docks" yaml:"docks"`
	Editors       map[string]map[string]string `json:"editors" yaml:"editors"`
}

// DockState is a dock entry as found in a token.
type DockState struct {
	Position DockPosition `json:"position" yaml:"position"`
	ScreenID string       `json:"screen_id" yaml:"screen_id"`
	Closed   bool         `json:"closed" yaml:"closed"`
}

// HasPerspective reports whether the plan names a perspective to load.
func (p *RestorePlan) HasPerspective() bool {
	return p != nil && p.PerspectiveID != ""
}

// IsEmpty reports whether restoring the plan would open nothing.
func (p *RestorePlan) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.PerspectiveID == "" &&
		len(p.OpenScreens) == 0 &&
		len(p.ClosedScreens) == 0 &&
		len(p.OtherScreens) == 0 &&
		len(p.Docks) == 0 &&
		len(p.Editors) == 0
}
