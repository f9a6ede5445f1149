package bookmark

import (
	"strings"
)

// RegisterOpenedScreen adds a screen to the token.
//
// A previously closed screen is re-opened in place; an open one is left alone.
// Without a perspective the screen joins the perspective list, otherwise it is
// appended after '$'. If the result would reach MaxNavURLSize the token is
// returned unchanged.
func RegisterOpenedScreen(token, screenID string) string {
	if isBlank(screenID) {
		return token
	}
	t := Parse(token)
	want := ParseScreenEntry(screenID)
	want.Closed = false

	if e, _ := t.find(want.key()); e != nil {
		if !e.Closed {
			return token
		}
		e.Closed = false
		return commit(token, t)
	}

	if t.HasPerspective {
		t.Others = append(t.Others, want)
		t.HasOthers = true
	} else {
		t.Screens = append(t.Screens, want)
	}
	return commit(token, t)
}

// RegisterClosedScreen marks a screen closed.
//
// Screens of the perspective get the '~' prefix, unless the longer token would
// reach MaxNavURLSize; then the token is returned unchanged. Screens after '$'
// are removed instead, and the '$' goes away with the last of them.
func RegisterClosedScreen(token, screenID string) string {
	if isBlank(token) || isBlank(screenID) {
		return token
	}
	t := Parse(token)
	want := ParseScreenEntry(screenID)

	e, inOthers := t.find(want.key())
	if e == nil || e.Closed {
		return token
	}
	if !inOthers {
		e.Closed = true
		return commit(token, t)
	}
	t.removeOther(want.key())
	t.HasOthers = len(t.Others) > 0
	return t.String()
}

// IsPerspectiveScreen reports whether a screen belongs to the perspective list,
// i.e. it does not sit after '$'. Screens absent from the token count as
// perspective screens.
func IsPerspectiveScreen(token, screenID string) bool {
	if isBlank(token) || isBlank(screenID) {
		return false
	}
	t := Parse(token)
	if !t.HasOthers {
		return true
	}
	_, inOthers := t.find(ParseScreenEntry(screenID).key())
	return !inOthers
}

// IsPerspectiveInURL reports whether the token names a perspective.
func IsPerspectiveInURL(token string) bool {
	return !isBlank(token) && strings.Contains(token, PerspectiveSep)
}

// URLContainsExtraPerspectiveScreen reports whether the token has a '$' section.
func URLContainsExtraPerspectiveScreen(token string) bool {
	return strings.Contains(token, OtherScreenSep)
}

// GetURLToken returns the list element of the token for a screen, markers and
// parameters included. An exact match wins over a substring match; when
// nothing matches, or screenID is blank, the screen id itself is returned.
func GetURLToken(token, screenID string) string {
	if isBlank(screenID) {
		return screenID
	}
	t := Parse(token)
	raws := make([]string, 0, len(t.Screens)+len(t.Docks)+len(t.Others))
	for _, e := range t.Screens {
		raws = append(raws, e.String())
	}
	for _, d := range t.Docks {
		raws = append(raws, d.String())
	}
	for _, e := range t.Others {
		raws = append(raws, e.String())
	}

	key := ParseScreenEntry(screenID).key()
	for _, raw := range raws {
		if ParseScreenEntry(raw).key() == key {
			return raw
		}
	}
	for _, raw := range raws {
		if strings.Contains(raw, screenID) {
			return raw
		}
	}
	return screenID
}

// GetScreensFromURL returns every screen element (open or closed, perspective
// or not) in order of appearance. Dock entries are not included.
func GetScreensFromURL(token string) []string {
	t := Parse(token)
	return dedupe(entryStrings(t.entries(), func(ScreenEntry) bool { return true }, false))
}

// GetOpenedScreensFromURL returns the screen elements that are not closed.
func GetOpenedScreensFromURL(token string) []string {
	t := Parse(token)
	return dedupe(entryStrings(t.entries(), func(e ScreenEntry) bool { return !e.Closed }, false))
}

// GetClosedScreensFromURL returns the closed screen elements without their '~'.
func GetClosedScreensFromURL(token string) []string {
	t := Parse(token)
	return dedupe(entryStrings(t.entries(), func(e ScreenEntry) bool { return e.Closed }, true))
}

// IsScreenClosed reports whether the screen is present with the '~' marker.
// A leading '~' in screenID is accepted. Dock entries are ignored.
func IsScreenClosed(token, screenID string) bool {
	if isBlank(token) || isBlank(screenID) {
		return false
	}
	t := Parse(token)
	e, _ := t.find(ParseScreenEntry(screenID).key())
	return e != nil && e.Closed
}

// IsValidScreen reports whether a screen id survives a round trip through the
// token, i.e. it contains none of the separator characters.
func IsValidScreen(screenID string) bool {
	if isBlank(screenID) {
		return false
	}
	for _, reserved := range []string{
		PathURIMarker, "=", "&",
		ScreenSep, DockBeginSep, DockCloseSep, OtherScreenSep, PerspectiveSep,
	} {
		if strings.Contains(screenID, reserved) {
			return false
		}
	}
	return true
}

func entryStrings(entries []ScreenEntry, keep func(ScreenEntry) bool, stripClosed bool) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !keep(e) {
			continue
		}
		if stripClosed {
			out = append(out, e.key())
		} else {
			out = append(out, e.String())
		}
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
