package ui

import (
	"fmt"
	"strconv"
)

// MagneticDamping scales the pointer's offset from a button's center into
// the button's displacement.
const MagneticDamping = 0.3

// MagneticTransition eases the button between positions.
const MagneticTransition = "transform 0.1s ease-out"

// Point is a pixel position in viewport coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center is the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Offset is a translation in pixels.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Displacement is where a magnetic element sits for a pointer at p.
func Displacement(p Point, r Rect) Offset {
	cx, cy := r.Center()
	return Offset{
		X: (float64(p.X) - cx) * MagneticDamping,
		Y: (float64(p.Y) - cy) * MagneticDamping,
	}
}

// MagneticKind says which element a magnetic control renders as.
type MagneticKind string

const (
	MagneticLink   MagneticKind = "link"
	MagneticButton MagneticKind = "button"
)

// KindFor picks a link when a target URL is supplied, otherwise a button.
func KindFor(href string) MagneticKind {
	if href != "" {
		return MagneticLink
	}
	return MagneticButton
}

// Magnetic tracks one control's displacement. Each move sets an absolute
// offset; nothing accumulates between moves.
type Magnetic struct {
	offset Offset
}

// Move follows the pointer.
func (m *Magnetic) Move(p Point, r Rect) Offset {
	m.offset = Displacement(p, r)
	return m.offset
}

// Leave snaps back to rest.
func (m *Magnetic) Leave() {
	m.offset = Offset{}
}

// Offset is the current displacement.
func (m *Magnetic) Offset() Offset {
	return m.offset
}

// Transform is the CSS transform for the current displacement.
func (m *Magnetic) Transform() string {
	return fmt.Sprintf("translate(%spx, %spx)", formatPx(m.offset.X), formatPx(m.offset.Y))
}

// Style is the inline style a magnetic control renders with.
func (m *Magnetic) Style() string {
	return "transform: " + m.Transform() + "; transition: " + MagneticTransition + "; display: inline-block"
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
