package interaction

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned box in CSS pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the geometric centre of r.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Contains reports whether p lies within r, edges included.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Left && p.X() <= r.Right() && p.Y() >= r.Top && p.Y() <= r.Bottom()
}

// Intersects reports whether any part of r is inside a viewport of the given
// height.
func (r Rect) Intersects(viewportHeight float64) bool {
	return r.Top < viewportHeight && r.Bottom() > 0
}

// MagneticOffset is the displacement of a magnetic control towards the
// pointer: the pointer's offset from the control's centre scaled by damping.
func MagneticOffset(p mgl64.Vec2, r Rect, damping float64) mgl64.Vec2 {
	return p.Sub(r.Center()).Mul(damping)
}

// Tilt is a card rotation in degrees.
type Tilt struct {
	RotateX, RotateY float64
}

// TiltFor maps the pointer's offset from the card centre to a rotation that
// faces the pointer.
func TiltFor(p mgl64.Vec2, r Rect, sensitivity float64) Tilt {
	c := r.Center()
	return Tilt{
		RotateX: (p.Y() - c.Y()) / sensitivity,
		RotateY: (c.X() - p.X()) / sensitivity,
	}
}

// ParallaxOffset is the vertical translation of a layer moving at speed.
func ParallaxOffset(scrollY, speed float64) float64 {
	return -(scrollY * speed)
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func translate(v mgl64.Vec2) string {
	return "translate(" + num(v.X()) + "px, " + num(v.Y()) + "px)"
}

func translateY(y float64) string {
	return "translateY(" + num(y) + "px)"
}

func tiltTransform(t Tilt, perspective, lift float64) string {
	return "perspective(" + num(perspective) + "px) rotateX(" + num(t.RotateX) + "deg) rotateY(" +
		num(t.RotateY) + "deg) translateZ(" + num(lift) + "px)"
}
