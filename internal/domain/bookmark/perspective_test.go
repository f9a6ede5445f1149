package bookmark_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workbench/navstate/internal/domain/bookmark"
)

func TestRegisterOpenedPerspective(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		perspective string
		want        string
	}{
		{name: "empty token", token: "", perspective: "Home", want: "Home|"},
		{name: "screens only", token: "screen1,~screen2", perspective: "Home", want: "Home|screen1,~screen2"},
		{name: "replaces existing", token: "Old|s1$o1", perspective: "New", want: "New|s1$o1"},
		{name: "same perspective", token: "Home|s1", perspective: "Home", want: "Home|s1"},
		{name: "blank perspective", token: "s1", perspective: " ", want: "s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookmark.RegisterOpenedPerspective(tt.token, tt.perspective))
		})
	}
}

func TestGetPerspectiveFromURL(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{
			name:   "editors in other section",
			token:  "PlugInAuthoringPerspective|[!WPlugins Explorer,]$Screen PlugIn Editor?path_uri=default://master@plugins/CCCC/screen.plugin&file_name=screen.plugin&has_version_support=false&name==CCCC",
			want:   "PlugInAuthoringPerspective",
			wantOK: true,
		},
		{name: "blank", token: "   "},
		{name: "empty", token: ""},
		{name: "single screen id", token: "perspective", want: "perspective", wantOK: true},
		{name: "with closed screen", token: "anotherPerspective|screen1,~screen2", want: "anotherPerspective", wantOK: true},
		{name: "screen list without perspective", token: "a,b,c"},
		{name: "empty perspective", token: "|a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bookmark.GetPerspectiveFromURL(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "p|a,b", bookmark.Truncate("p|a,b", 100))
	assert.Equal(t, "p|a,b", bookmark.Truncate("p|a,b", 0))
	assert.Equal(t, "p|aaa", bookmark.Truncate("p|aaa,bbb,ccc", 8))
	assert.Equal(t, "p|aaaa", bookmark.Truncate("p|aaaaaaaaaa", 7))

	long := "P|" + strings.Repeat("screen,", 400)
	got := bookmark.Truncate(long, bookmark.MaxNavURLSize)
	assert.Less(t, len(got), bookmark.MaxNavURLSize)
	assert.True(t, strings.HasPrefix(long, got))
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "Home|s1,~s2$o1", bookmark.Decode("Home%7Cs1,~s2%24o1"))
	assert.Equal(t, "Home|s1", bookmark.Decode("Home|s1"))
	assert.Equal(t, "bad%zz", bookmark.Decode("bad%zz"))
}

func TestDecode_KeepsPathURIEscaped(t *testing.T) {
	editor := "Editor?path_uri=default%3A%2F%2Frepo%2Fa%2Cb%24c.txt&file_name=c.txt&has_version_support=false"

	assert.Equal(t, "Home|$"+editor, bookmark.Decode("Home%7C$"+editor))
	assert.Equal(t, "Home|s%201,"+editor+"[Wd,]", bookmark.Decode("Home%7Cs%25201,"+editor+"%5BWd,%5D"))
	assert.Equal(t, map[string]map[string]string{
		"default%3A%2F%2Frepo%2Fa%2Cb%24c.txt": {"file_name": "c.txt"},
	}, bookmark.GetOpenedEditorsFromURL(bookmark.Decode("Home|$"+editor)))
}
