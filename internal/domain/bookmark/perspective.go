package bookmark

import (
	"net/url"
	"strings"
)

// RegisterOpenedPerspective puts the perspective in front of the token.
// A token can name a single perspective, so an existing one is replaced.
func RegisterOpenedPerspective(token, perspectiveID string) string {
	if isBlank(perspectiveID) {
		return token
	}
	t := Parse(token)
	if t.HasPerspective && t.Perspective == perspectiveID {
		return token
	}
	t.Perspective = perspectiveID
	t.HasPerspective = true
	return commit(token, t)
}

// GetPerspectiveFromURL returns the perspective named by the token. A token
// made of a single valid screen id is taken as the perspective itself.
func GetPerspectiveFromURL(token string) (string, bool) {
	if isBlank(token) {
		return "", false
	}
	if i := strings.Index(token, PerspectiveSep); i >= 0 {
		perspective := token[:i]
		return perspective, !isBlank(perspective)
	}
	if IsValidScreen(token) {
		return token, true
	}
	return "", false
}

// Truncate shortens a token below limit by dropping trailing list elements.
// If there is nothing left to drop, the token is cut to limit-1 bytes.
func Truncate(token string, limit int) string {
	if limit <= 0 || len(token) < limit {
		return token
	}
	for len(token) >= limit {
		idx := strings.LastIndex(token, ScreenSep)
		if idx <= 0 {
			break
		}
		token = token[:idx]
	}
	if len(token) >= limit {
		token = token[:limit-1]
	}
	return token
}

// Decode undoes percent-encoding applied by the address bar. Path URI values
// are left query-escaped: the tracker escapes them so that separators inside
// a URI cannot split the token, and decoding them here would undo that.
// Segments that are not valid percent-encoding are kept as-is.
func Decode(raw string) string {
	marker := PathURIMarker + "="
	var sb strings.Builder
	for {
		i := strings.Index(raw, marker)
		if i < 0 {
			sb.WriteString(unescape(raw))
			return sb.String()
		}
		sb.WriteString(unescape(raw[:i]))
		rest := raw[i+len(marker):]
		end := strings.IndexAny(rest, "&,$[]")
		if end < 0 {
			end = len(rest)
		}
		sb.WriteString(marker + rest[:end])
		raw = rest[end:]
	}
}

func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
