package layout

import "math"

// Defaults for layout constants.
const (
	DefaultFontSize  = 14
	DefaultTabWidth  = 4
	DefaultLeftPad   = 48
	DefaultTopPad    = 10
	lineHeightFactor = 1.5
	charWidthFactor  = 0.6
)

// Metrics holds the layout constants shared by every rendering layer.
type Metrics struct {
	FontSize int
	// LineHeight is derived from FontSize and rounded to an integer pixel.
	// All layers must use this value, never a locally derived one.
	LineHeight int
	// CharWidth is the advance width of one monospace cell in pixels.
	CharWidth float64
	// TabWidth is the visual tab width in columns. It is independent of
	// the tab size used for inserted whitespace.
	TabWidth int
	LeftPad  int
	TopPad   int
}

// NewMetrics derives metrics from a font size and visual tab width.
// Non-positive inputs fall back to the defaults.
func NewMetrics(fontSize, tabWidth int) Metrics {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return Metrics{
		FontSize:   fontSize,
		LineHeight: int(math.Round(float64(fontSize) * lineHeightFactor)),
		CharWidth:  float64(fontSize) * charWidthFactor,
		TabWidth:   tabWidth,
		LeftPad:    DefaultLeftPad,
		TopPad:     DefaultTopPad,
	}
}

// Position is a zero-based row and visual column. Unlike a byte column, a
// visual column counts a tab as the distance to the next tab stop.
type Position struct {
	Row       int
	VisualCol int
}

// Pixels is a pixel coordinate pair within the rendered document.
type Pixels struct {
	Top  float64
	Left float64
}

// OffsetToPosition maps a byte offset into content to a row and visual
// column. A tab advances the visual column to the next multiple of the tab
// width; every other character advances it by one. The offset is clamped
// to the content.
func (m Metrics) OffsetToPosition(content string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	row := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}

	col := 0
	for _, r := range content[lineStart:offset] {
		if r == '\t' {
			col += m.TabWidth - col%m.TabWidth
		} else {
			col++
		}
	}

	return Position{Row: row, VisualCol: col}
}

// PositionToPixels maps a row and visual column to pixel coordinates using
// the shared constants.
func (m Metrics) PositionToPixels(p Position) Pixels {
	return Pixels{
		Top:  float64(p.Row*m.LineHeight + m.TopPad),
		Left: float64(p.VisualCol)*m.CharWidth + float64(m.LeftPad),
	}
}

// OffsetToPixels is OffsetToPosition followed by PositionToPixels.
func (m Metrics) OffsetToPixels(content string, offset int) Pixels {
	return m.PositionToPixels(m.OffsetToPosition(content, offset))
}
