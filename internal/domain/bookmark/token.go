// Package bookmark encodes the open/closed state of a workbench (perspective,
// screens, docks and editors) into a single bookmarkable token and back.
//
// A token looks like:
//
//	Widgets|Explorer,~Properties[WDockScreen,!EOutline,]$Editor?path_uri=...
//
// The perspective comes before '|', the perspective screens follow as a comma
// separated list, docked screens live between '[' and ']', and screens that do
// not belong to the perspective come after '$'. '~' marks a closed screen and
// '!' a closed dock.
//
// All functions are pure: they take the token as a value and return a new one.
// None of them fail; malformed input degrades to a best-effort match.
package bookmark

import (
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

const (
	PerspectiveSep = "|"
	ScreenSep      = ","
	OtherScreenSep = "$"
	ClosedPrefix   = "~"
	DockPrefix     = "!"
	DockBeginSep   = "["
	DockCloseSep   = "]"

	PathURIMarker  = entity.PathURIMarker
	FileNameMarker = entity.FileNameMarker

	// MaxNavURLSize bounds the token length. Mutations producing a token this
	// long or longer are dropped.
	MaxNavURLSize = 1900
)

// ScreenEntry is one element of the screen or other-screen list.
type ScreenEntry struct {
	// Identifier is the screen id with its optional "?k=v" parameters,
	// without the closed and docked markers.
	Identifier string
	Closed     bool
	Docked     bool
}

// ParseScreenEntry splits the markers off a raw list element.
func ParseScreenEntry(raw string) ScreenEntry {
	var e ScreenEntry
	if strings.HasPrefix(raw, ClosedPrefix) {
		e.Closed = true
		raw = raw[len(ClosedPrefix):]
	}
	if strings.HasPrefix(raw, DockPrefix) {
		e.Docked = true
		raw = raw[len(DockPrefix):]
	}
	e.Identifier = raw
	return e
}

// Name returns the identifier without parameters.
func (e ScreenEntry) Name() string {
	if i := strings.Index(e.Identifier, "?"); i >= 0 {
		return e.Identifier[:i]
	}
	return e.Identifier
}

// Query returns the raw parameter string after '?', if any.
func (e ScreenEntry) Query() string {
	if i := strings.Index(e.Identifier, "?"); i >= 0 {
		return e.Identifier[i+1:]
	}
	return ""
}

// Params splits the query into ordered key/value pairs. A doubled "==" is
// treated as the separator when present.
func (e ScreenEntry) Params() []entity.Param {
	q := e.Query()
	if q == "" {
		return nil
	}
	parts := strings.Split(q, "&")
	params := make([]entity.Param, 0, len(parts))
	for _, part := range parts {
		sep := "="
		if strings.Contains(part, "==") {
			sep = "=="
		}
		k, v, _ := strings.Cut(part, sep)
		params = append(params, entity.Param{Key: k, Value: v})
	}
	return params
}

// key identifies the entry regardless of its closed state.
func (e ScreenEntry) key() string {
	if e.Docked {
		return DockPrefix + e.Identifier
	}
	return e.Identifier
}

func (e ScreenEntry) String() string {
	var sb strings.Builder
	if e.Closed {
		sb.WriteString(ClosedPrefix)
	}
	sb.WriteString(e.key())
	return sb.String()
}

// DockEntry is one element of the dock block.
type DockEntry struct {
	Position entity.DockPosition
	ScreenID string
	Closed   bool
}

// ParseDockEntry splits the closed marker and the position letter off a raw
// dock element. The position letter is not validated.
func ParseDockEntry(raw string) DockEntry {
	var d DockEntry
	if strings.HasPrefix(raw, DockPrefix) {
		d.Closed = true
		raw = raw[len(DockPrefix):]
	}
	if raw != "" {
		d.Position = entity.DockPosition(raw[:1])
		d.ScreenID = raw[1:]
	}
	return d
}

func (d DockEntry) id() string {
	return d.Position.ShortName() + d.ScreenID
}

func (d DockEntry) String() string {
	if d.Closed {
		return DockPrefix + d.id()
	}
	return d.id()
}

// Token is the structured form of a bookmark token.
type Token struct {
	Perspective    string
	HasPerspective bool

	Screens []ScreenEntry

	// HasDocks keeps an empty "[]" block when it was present in the input.
	HasDocks bool
	Docks    []DockEntry

	// HasOthers keeps a trailing "$" when it was present in the input.
	HasOthers bool
	Others    []ScreenEntry
}

// Parse decomposes a token. It never fails: anything that does not fit the
// grammar ends up as an opaque screen entry.
func Parse(s string) Token {
	var t Token
	if isBlank(s) {
		return t
	}

	rest := s
	if i := strings.Index(rest, PerspectiveSep); i >= 0 {
		t.HasPerspective = true
		t.Perspective = rest[:i]
		rest = rest[i+len(PerspectiveSep):]
	}

	if open := strings.Index(rest, DockBeginSep); open >= 0 {
		if n := strings.Index(rest[open:], DockCloseSep); n >= 0 {
			end := open + n
			t.HasDocks = true
			for _, raw := range splitList(rest[open+len(DockBeginSep) : end]) {
				t.Docks = append(t.Docks, ParseDockEntry(raw))
			}
			rest = rest[:open] + rest[end+len(DockCloseSep):]
		}
	}

	screens := rest
	if i := strings.Index(rest, OtherScreenSep); i >= 0 {
		t.HasOthers = true
		screens = rest[:i]
		for _, raw := range splitList(rest[i+len(OtherScreenSep):]) {
			t.Others = append(t.Others, ParseScreenEntry(raw))
		}
	}
	for _, raw := range splitList(screens) {
		t.Screens = append(t.Screens, ParseScreenEntry(raw))
	}

	return t
}

// String serializes the token in canonical order: perspective, screens,
// dock block, other screens.
func (t Token) String() string {
	var sb strings.Builder
	if t.HasPerspective {
		sb.WriteString(t.Perspective)
		sb.WriteString(PerspectiveSep)
	}
	writeEntries(&sb, t.Screens)
	if t.HasDocks || len(t.Docks) > 0 {
		sb.WriteString(DockBeginSep)
		for _, d := range t.Docks {
			sb.WriteString(d.String())
			sb.WriteString(ScreenSep)
		}
		sb.WriteString(DockCloseSep)
	}
	if t.HasOthers || len(t.Others) > 0 {
		sb.WriteString(OtherScreenSep)
		writeEntries(&sb, t.Others)
	}
	return sb.String()
}

func writeEntries(sb *strings.Builder, entries []ScreenEntry) {
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(ScreenSep)
		}
		sb.WriteString(e.String())
	}
}

// find locates an entry by key. inOthers tells which list it was found in.
func (t *Token) find(key string) (entry *ScreenEntry, inOthers bool) {
	for i := range t.Screens {
		if t.Screens[i].key() == key {
			return &t.Screens[i], false
		}
	}
	for i := range t.Others {
		if t.Others[i].key() == key {
			return &t.Others[i], true
		}
	}
	return nil, false
}

func (t *Token) findDock(position entity.DockPosition, screenID string) *DockEntry {
	for i := range t.Docks {
		if t.Docks[i].Position == position && t.Docks[i].ScreenID == screenID {
			return &t.Docks[i]
		}
	}
	return nil
}

func (t *Token) removeOther(key string) bool {
	for i := range t.Others {
		if t.Others[i].key() == key {
			t.Others = append(t.Others[:i], t.Others[i+1:]...)
			return true
		}
	}
	return false
}

// entries returns the screen entries of both lists, perspective screens first.
func (t Token) entries() []ScreenEntry {
	all := make([]ScreenEntry, 0, len(t.Screens)+len(t.Others))
	all = append(all, t.Screens...)
	return append(all, t.Others...)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ScreenSep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// commit serializes t unless the result would reach MaxNavURLSize, in which
// case the original token is kept.
func commit(original string, t Token) string {
	s := t.String()
	if !isBlank(s) && len(s) >= MaxNavURLSize {
		return original
	}
	return s
}
