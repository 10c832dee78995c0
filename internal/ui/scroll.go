package ui

// ScrollTopThreshold is the offset past which the scroll-to-top button shows.
const ScrollTopThreshold = 300

// ScrollProgress is how far down the page the viewport is, in [0,1].
// A page that does not scroll (content no taller than the viewport)
// reports 0 rather than dividing by zero.
func ScrollProgress(top, scrollHeight, clientHeight float64) float64 {
	maxScroll := scrollHeight - clientHeight
	if maxScroll <= 0 {
		return 0
	}
	p := top / maxScroll
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ShowScrollTop reports whether the scroll-to-top button is visible at offset top.
func ShowScrollTop(top float64) bool {
	return top > ScrollTopThreshold
}
