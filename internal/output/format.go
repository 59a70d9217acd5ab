// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todoctl/internal/domain"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted values for --output.
var Formats = []string{FormatTable, FormatJSON, FormatYAML} //nolint:gochecknoglobals // read-only list for flag help

// IsValidFormat reports whether format is one of Formats.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// WriteTasks renders tasks in the given format.
func WriteTasks(w io.Writer, format string, tasks []domain.Task) error {
	switch format {
	case FormatTable, "":
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No tasks.")
			return nil
		}
		for i, task := range tasks {
			FormatTask(w, i+1, task)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if tasks == nil {
			tasks = []domain.Task{}
		}
		return enc.Encode(tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if tasks == nil {
			tasks = []domain.Task{}
		}
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (expected one of: %s)", format, strings.Join(Formats, ", "))
	}
}

// FormatTask formats a task line for the default listing.
// Format: "{N:>4}  {TEXT}\n" (4-wide right-aligned number, two spaces, text)
func FormatTask(w io.Writer, num int, task domain.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(task.Text))
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
