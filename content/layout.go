package content

// SectionPadding is the rows around a section's title and body
// (top margin, title row, blank row, bottom margin)
const SectionPadding = 6

// Rows returns the rendered height of one section for a given viewport.
// Sections fill at least a full screen so each reads like its own page.
func Rows(s SectionSpec, viewportRows int) int {
	rows := len(s.Body) + SectionPadding
	if rows < viewportRows {
		rows = viewportRows
	}
	return rows
}

// Layout returns the per-section heights for a viewport, parallel to specs
func Layout(specs []SectionSpec, viewportRows int) []int {
	heights := make([]int, len(specs))
	for i, s := range specs {
		heights[i] = Rows(s, viewportRows)
	}
	return heights
}
