package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/ravenel/tick/internal/models"
)

var _ list.Item = recordItem{}

// recordItem wraps [models.Record] to implement [list.Item].
type recordItem struct {
	record models.Record
}

func (i recordItem) FilterValue() string { return i.record.Text }

func (i recordItem) Title() string {
	if i.record.Status == models.StatusCompleted {
		return "✓ " + i.record.Text
	}
	return "○ " + i.record.Text
}

func (i recordItem) Description() string {
	return string(i.record.Status)
}

// recordItems converts a snapshot into list items.
func recordItems(records []models.Record) []list.Item {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = recordItem{record: r}
	}
	return items
}
