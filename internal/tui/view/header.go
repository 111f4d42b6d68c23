package view

import "github.com/javiermolinar/slotfill/internal/timetable"

// HeaderLabels builds the grid header: a corner cell followed by one label
// per time column. It also reports which table columns are lunch columns.
func HeaderLabels(columns []timetable.Column) ([]string, map[int]bool) {
	labels := make([]string, 0, len(columns)+1)
	lunchCols := make(map[int]bool)

	labels = append(labels, "Day")
	for i, col := range columns {
		labels = append(labels, col.Label)
		if col.Lunch {
			lunchCols[i+1] = true
		}
	}

	return labels, lunchCols
}

// DayLabel shortens a day name for the first grid column.
func DayLabel(day string) string {
	r := []rune(day)
	if len(r) <= 3 {
		return day
	}
	return string(r[:3])
}
