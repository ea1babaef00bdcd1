package stage

import (
	"encoding/json"
	"strings"
)

// FormatList renders a string list for inclusion in a prompt.
func FormatList(items []string) string {
	if len(items) == 0 {
		return "None provided"
	}
	return strings.Join(items, ", ")
}

// FormatJSON renders a profile as indented JSON for inclusion in a prompt.
func FormatJSON(v any) string {
	if v == nil {
		return "No data available"
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "No data available"
	}
	return string(data)
}
