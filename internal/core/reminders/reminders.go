package reminders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wiralabs/client-console/internal/models"
)

// Default values applied when an entry arrives malformed or when the editor
// adds a new row without explicit values.
const (
	DefaultTime = 30
	AppendTime  = 60
	InitialName = "Initial Follow-up"
	AppendName  = "New Follow-up"
)

// Normalize reconciles a record's reminder list with the deprecated single
// reminder_min field and returns a list that is never empty, with every entry
// holding a positive time and a non-empty name. Applying it twice yields the
// same result as once.
func Normalize(list []models.Reminder, legacyMinutes int) []models.Reminder {
	if len(list) > 0 {
		out := make([]models.Reminder, len(list))
		for i, r := range list {
			if r.Time < 1 {
				r.Time = DefaultTime
			}
			if strings.TrimSpace(r.Name) == "" {
				r.Name = fmt.Sprintf("Follow-up %d", i+1)
			}
			out[i] = r
		}
		return out
	}

	if legacyMinutes > 0 {
		return []models.Reminder{{Time: legacyMinutes, Name: InitialName}}
	}

	return []models.Reminder{{Time: DefaultTime, Name: InitialName}}
}

// NormalizeClient applies Normalize to a fetched record and drops the legacy
// field so the dual representation never travels further into the system.
func NormalizeClient(c *models.ClientConfig) {
	c.Reminders = Normalize(c.Reminders, c.LegacyReminderMin)
	c.LegacyReminderMin = 0
}

// Append adds entries to the list. Called with no entries it appends the
// editor's default new row.
func Append(list []models.Reminder, entries ...models.Reminder) []models.Reminder {
	if len(entries) == 0 {
		return append(list, models.Reminder{Time: AppendTime, Name: AppendName})
	}
	return append(list, entries...)
}

// Field names accepted by Update.
const (
	FieldTime = "time"
	FieldName = "name"
)

// Update sets one field of the entry at index. Time values are coerced from
// their string form; anything that does not parse to a positive integer
// becomes the default.
func Update(list []models.Reminder, index int, field, value string) ([]models.Reminder, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("reminder index %d out of range", index)
	}

	switch field {
	case FieldTime:
		t, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || t < 1 {
			t = DefaultTime
		}
		list[index].Time = t
	case FieldName:
		list[index].Name = value
	default:
		return list, fmt.Errorf("unknown reminder field %q", field)
	}

	return list, nil
}

// Remove deletes the entry at index. The list never goes empty: removing the
// last remaining entry is a no-op, as is an out-of-range index.
func Remove(list []models.Reminder, index int) []models.Reminder {
	if len(list) <= 1 || index < 0 || index >= len(list) {
		return list
	}
	return append(list[:index], list[index+1:]...)
}
