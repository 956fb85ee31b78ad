// package formatter renders a record sequence to the output formats the
// CLI offers (table, plain text, JSON, YAML)
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/ravenel/tick/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Strikethrough(true)
	pendingStyle   = lipgloss.NewStyle()
	idStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// ToJSON marshals the sequence, optionally indented. A nil sequence
// renders as an empty array.
func ToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(records, "", "  ")
	} else {
		out, err = json.Marshal(records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return out, nil
}

// ToYAML marshals the sequence as a YAML document.
func ToYAML(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return out, nil
}

// ToText renders one plain line per record with a checkbox marker.
func ToText(records []models.Record) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		marker := "[ ]"
		if r.Status == models.StatusCompleted {
			marker = "[x]"
		}
		buf.WriteString(fmt.Sprintf("%s %d %s\n", marker, r.ID, r.Text))
	}
	return buf.Bytes()
}

// ToTable renders a styled listing for interactive terminals. Completed
// entries are struck through.
func ToTable(records []models.Record) []byte {
	var buf bytes.Buffer

	buf.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-9s %s", "ID", "STATUS", "TASK")))
	buf.WriteString("\n")

	for _, r := range records {
		style := pendingStyle
		if r.Status == models.StatusCompleted {
			style = completedStyle
		}
		id := idStyle.Render(fmt.Sprintf("%-6s", strconv.FormatInt(r.ID, 10)))
		buf.WriteString(fmt.Sprintf("%s %-9s %s\n", id, string(r.Status), style.Render(r.Text)))
	}

	if len(records) == 0 {
		buf.WriteString(idStyle.Render("(no tasks)"))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Render dispatches on a format name: table, text, json, yaml.
func Render(records []models.Record, format string, pretty bool) ([]byte, error) {
	switch format {
	case "", "table":
		return ToTable(records), nil
	case "text", "txt":
		return ToText(records), nil
	case "json":
		return ToJSON(records, pretty)
	case "yaml", "yml":
		return ToYAML(records)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
