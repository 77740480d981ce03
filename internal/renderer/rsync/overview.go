package rsync

// Summary is the scroll geometry fed to the overview strip.
type Summary struct {
	ScrollTop    float64
	ScrollHeight float64
	ClientHeight float64
}

// MaxScroll returns the largest valid scroll top.
func (s Summary) MaxScroll() float64 {
	max := s.ScrollHeight - s.ClientHeight
	if max < 0 {
		return 0
	}
	return max
}

// OverviewTarget maps a pointer event at vertical position y within an
// overview strip of rendered height stripHeight to a target scroll offset.
// The clicked position is centered in the viewport rather than aligned to
// its top edge, and the result is clamped to the valid scroll range.
func OverviewTarget(y, stripHeight float64, sum Summary) float64 {
	if stripHeight <= 0 {
		return 0
	}
	target := (y/stripHeight)*sum.ScrollHeight - sum.ClientHeight/2

	if target < 0 {
		return 0
	}
	if max := sum.MaxScroll(); target > max {
		return max
	}
	return target
}
