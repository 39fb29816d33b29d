package scroll

// ClampScroll ensures a scroll offset is within valid range
func ClampScroll(offset, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if offset < 0 {
		return 0
	}
	if offset > maxScroll {
		return maxScroll
	}
	return offset
}

// PageDelta returns the recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}

// ScrollPercent returns scroll position as 0-100 percentage
func ScrollPercent(offset, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if maxScroll <= 0 {
		return 0
	}
	pct := (offset * 100) / maxScroll
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// ProgressLabel returns a compact indicator text for a scroll position:
// "Top", "Bot", or "XX%"
func ProgressLabel(offset, visible, total int) string {
	if total <= visible || offset <= 0 {
		return "Top"
	}
	if offset+visible >= total {
		return "Bot"
	}
	pct := ScrollPercent(offset, visible, total)
	if pct >= 100 {
		return "99%"
	}
	if pct >= 10 {
		return string(rune('0'+pct/10)) + string(rune('0'+pct%10)) + "%"
	}
	return " " + string(rune('0'+pct)) + "%"
}
