package styles

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, sections in first-seen order.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	t := r.theme
	if len(keys) == 0 {
		return t.Subtle.Render("No configuration keys found")
	}

	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, k := range keys {
		if _, seen := sections[k.Section]; !seen {
			order = append(order, k.Section)
		}
		sections[k.Section] = append(sections[k.Section], k)
	}

	parts := []string{t.Highlight.Render(IconConfig) + " " + t.Title.Render("Configuration Keys"), ""}
	for _, section := range order {
		parts = append(parts, r.renderSection(section, sections[section]), "")
	}
	return strings.Join(parts, "\n")
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	t := r.theme
	sorted := append([]entity.ConfigKeyInfo(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	lines := []string{t.Subtitle.Render(name)}
	for _, k := range sorted {
		line := fmt.Sprintf("  %s %s", t.Highlight.Render(k.Key), t.Subtle.Render("("+k.Type+")"))
		if k.Default != "" {
			line += t.Subtle.Render(" default: ") + t.Normal.Render(k.Default)
		}
		lines = append(lines, line, "    "+t.Normal.Render(k.Description))
		if len(k.Values) > 0 {
			lines = append(lines, "    "+t.Subtle.Render("values: "+strings.Join(k.Values, ", ")))
		}
		if k.Range != "" {
			lines = append(lines, "    "+t.Subtle.Render("range: "+k.Range))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}
