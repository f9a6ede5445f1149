package styles

import (
	"fmt"
	"strings"

	"github.com/workbench/navstate/internal/domain/build"
)

// RenderVersion renders build information.
func RenderVersion(t *Theme, info build.Info) string {
	rows := [][2]string{
		{IconVersion + " version", info.Version},
		{"  commit", info.Commit},
		{"  built", info.BuildDate},
		{IconGo + " go", info.GoVersion},
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("navstate") + "\n")
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", t.Subtle.Render(fmt.Sprintf("%-10s", row[0])), t.Normal.Render(row[1]))
	}
	return b.String()
}
