package rsync

import "sync"

// Offset is a scroll position in pixels.
type Offset struct {
	Top  float64
	Left float64
}

// Surface is a passive rendering layer that follows the primary surface.
type Surface interface {
	SetScroll(top, left float64)
}

// Mode selects which axes a surface mirrors.
type Mode uint8

const (
	// MirrorVertical copies only the vertical offset. Used by surfaces
	// that intentionally ignore horizontal scroll.
	MirrorVertical Mode = iota
	// MirrorBoth copies both axes. Used by surfaces rendering
	// pre-formatted text that must stay pixel-aligned horizontally.
	MirrorBoth
)

type attachment struct {
	surface Surface
	mode    Mode
}

// Mirror fans the authoritative scroll offset out to passive surfaces.
type Mirror struct {
	mu       sync.Mutex
	surfaces []attachment
	current  Offset
}

// NewMirror creates a mirror with no attached surfaces.
func NewMirror() *Mirror {
	return &Mirror{}
}

// Attach registers a surface. It immediately receives the current offset.
func (m *Mirror) Attach(s Surface, mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surfaces = append(m.surfaces, attachment{surface: s, mode: mode})
	m.apply(attachment{surface: s, mode: mode}, m.current)
}

// Publish records the authoritative offset and copies it to every surface.
func (m *Mirror) Publish(off Offset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = off
	for _, a := range m.surfaces {
		m.apply(a, off)
	}
}

// Current returns the last published offset.
func (m *Mirror) Current() Offset {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Mirror) apply(a attachment, off Offset) {
	left := 0.0
	if a.mode == MirrorBoth {
		left = off.Left
	}
	a.surface.SetScroll(off.Top, left)
}
