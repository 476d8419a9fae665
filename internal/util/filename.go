package util

import "strings"

// SafeFilename turns a writing title into a download filename stem:
// lowercase, with spaces and path separators replaced by underscores.
// An empty title becomes "sin_titulo".
func SafeFilename(title string) string {
	if title == "" {
		return "sin_titulo"
	}
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	return r.Replace(strings.ToLower(title))
}
