package bookmark

import (
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

// RegisterOpenedEditor records an editor using its doubled-equals identifier
// ("name==value" for every caller parameter). An entry registered earlier with
// the plain identifier is rewritten in place.
func RegisterOpenedEditor(token string, editor *entity.PathPlaceRequest) string {
	if editor == nil {
		return token
	}
	plain := editor.FullIdentifier()
	doubled := editor.EditorIdentifier()

	if plain != doubled {
		t := Parse(token)
		if e, _ := t.find(plain); e != nil {
			e.Identifier = doubled
			token = commit(token, t)
		}
	}
	return RegisterOpenedScreen(token, doubled)
}

// RegisterCloseEditor removes an editor entry from the token. Only path-backed
// places are editors; any other place leaves the token unchanged. Unlike
// RegisterClosedScreen, an emptied '$' section is kept.
func RegisterCloseEditor(token string, place entity.PlaceRequest) string {
	editor, ok := place.(*entity.PathPlaceRequest)
	if !ok || editor == nil || isBlank(token) {
		return token
	}
	t := Parse(token)
	for _, id := range []string{editor.EditorIdentifier(), editor.FullIdentifier()} {
		if t.removeScreen(id) || t.removeOther(id) {
			return t.String()
		}
	}
	return token
}

// GetOpenedEditorsFromURL maps the path URI of every editor entry to its
// parameters. The URI is returned exactly as it appears in the token, i.e.
// still query-escaped. Only doubled-equals parameters and the file name
// marker are reported.
func GetOpenedEditorsFromURL(token string) map[string]map[string]string {
	result := make(map[string]map[string]string)
	for _, e := range Parse(token).entries() {
		uri, args, ok := editorArguments(e.Query())
		if !ok {
			continue
		}
		result[uri] = args
	}
	return result
}

func editorArguments(query string) (string, map[string]string, bool) {
	if !strings.Contains(query, PathURIMarker+"=") {
		return "", nil, false
	}
	var uri string
	args := make(map[string]string)
	for _, part := range strings.Split(query, "&") {
		switch {
		case strings.HasPrefix(part, PathURIMarker+"="):
			uri = strings.TrimPrefix(part, PathURIMarker+"=")
		case strings.Contains(part, "=="):
			k, v, _ := strings.Cut(part, "==")
			args[k] = v
		case strings.HasPrefix(part, FileNameMarker+"="):
			args[FileNameMarker] = strings.TrimPrefix(part, FileNameMarker+"=")
		}
	}
	return uri, args, true
}

func (t *Token) removeScreen(key string) bool {
	for i := range t.Screens {
		if t.Screens[i].key() == key {
			t.Screens = append(t.Screens[:i], t.Screens[i+1:]...)
			return true
		}
	}
	return false
}
