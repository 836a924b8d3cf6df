package docbuild

import "scribe/internal/notes"

// actionTableHeaders is the fixed six-column layout of the next-steps table.
var actionTableHeaders = []string{"Department", "Owner", "Task", "Due Date", "Status", "Status Notes"}

const placeholderCell = "—"

var statusGlyphs = map[notes.Status]string{
	notes.StatusGreen: "🟢",
	notes.StatusAmber: "🟠",
	notes.StatusRed:   "🔴",
}

// RenderActionItemTable builds the fixed six-column next-steps table.
// An empty item list yields a single row of em-dash placeholders so the
// section never renders as a bare header. With useStatusGlyphs set, the
// status cell shows a colored indicator (unknown statuses show an em-dash);
// otherwise the literal status string is used.
func RenderActionItemTable(items []notes.ActionItem, useStatusGlyphs bool) Table {
	headers := make([][]Span, len(actionTableHeaders))
	for i, h := range actionTableHeaders {
		headers[i] = []Span{{Text: h}}
	}

	if len(items) == 0 {
		cells := make([][]Span, len(actionTableHeaders))
		for i := range cells {
			cells[i] = []Span{{Text: placeholderCell}}
		}
		return Table{Headers: headers, Rows: []TableRow{{Cells: cells}}}
	}

	rows := make([]TableRow, 0, len(items))
	for i, it := range items {
		status := string(it.Status)
		if useStatusGlyphs {
			var ok bool
			if status, ok = statusGlyphs[it.Status]; !ok {
				status = placeholderCell
			}
		}
		rows = append(rows, TableRow{
			Cells: [][]Span{
				FormatInline(it.Department),
				FormatInline(it.Owner),
				FormatInline(it.Task),
				FormatInline(it.DueDate),
				{{Text: status}},
				FormatInline(it.StatusNotes),
			},
			Striped: i%2 == 1,
		})
	}
	return Table{Headers: headers, Rows: rows}
}
