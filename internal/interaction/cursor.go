package interaction

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	cursorFPS       = 60
	maxCursorSteps  = 10
	cursorFrameTime = time.Second / cursorFPS
)

// Cursor is the decorative marker that trails the pointer on a damped
// spring. Position and scale each follow their own spring axis.
type Cursor struct {
	spring harmonica.Spring
	half   float64

	pos, vel      mgl64.Vec2
	scale, scaleV float64
}

// NewCursor builds the trailing marker from physical spring constants: the
// angular frequency is sqrt(k/m) and the damping ratio c/(2*sqrt(k*m)).
func NewCursor(cfg Config) *Cursor {
	freq := math.Sqrt(cfg.CursorStiffness / cfg.CursorMass)
	ratio := cfg.CursorDamping / (2 * math.Sqrt(cfg.CursorStiffness*cfg.CursorMass))
	return &Cursor{
		spring: harmonica.NewSpring(harmonica.FPS(cursorFPS), freq, ratio),
		half:   cfg.CursorHalfSizePx,
		scale:  1,
	}
}

// Target is where the marker settles for a pointer position.
func (c *Cursor) Target(pointer mgl64.Vec2) mgl64.Vec2 {
	return pointer.Sub(mgl64.Vec2{c.half, c.half})
}

// Step advances the springs towards the pointer and mode scale by elapsed,
// in whole frames, at least one.
func (c *Cursor) Step(elapsed time.Duration, pointer mgl64.Vec2, mode Mode) {
	steps := int(elapsed / cursorFrameTime)
	if steps < 1 {
		steps = 1
	}
	if steps > maxCursorSteps {
		steps = maxCursorSteps
	}

	target := c.Target(pointer)
	for range steps {
		for i := range 2 {
			c.pos[i], c.vel[i] = c.spring.Update(c.pos[i], c.vel[i], target[i])
		}
		c.scale, c.scaleV = c.spring.Update(c.scale, c.scaleV, mode.Scale())
	}
}

// Position returns the marker's current top-left corner.
func (c *Cursor) Position() mgl64.Vec2 { return c.pos }

// Scale returns the marker's current scale.
func (c *Cursor) Scale() float64 { return c.scale }

func (c *Cursor) transform() string {
	return "translate3d(" + num(c.pos.X()) + "px, " + num(c.pos.Y()) + "px, 0) scale(" + num(c.scale) + ")"
}
