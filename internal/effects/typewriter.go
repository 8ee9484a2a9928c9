package effects

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tinexu/portfolio/internal/interaction"
)

type typePhase uint8

const (
	phaseTyping typePhase = iota
	phaseHolding
	phaseDeleting
)

// Typewriter types each string, holds it, backspaces it and moves on to the
// next one, forever.
type Typewriter struct {
	lines     [][]rune
	typeSpeed time.Duration
	backSpeed time.Duration
	backDelay time.Duration

	line  int
	phase typePhase
	tween *gween.Tween
	held  time.Duration
	shown int
}

// TypewriterOption configures a Typewriter.
type TypewriterOption func(*Typewriter)

// WithSpeeds sets the per-character typing and backspacing durations.
func WithSpeeds(typeSpeed, backSpeed time.Duration) TypewriterOption {
	return func(t *Typewriter) {
		t.typeSpeed = typeSpeed
		t.backSpeed = backSpeed
	}
}

// WithBackDelay sets how long a fully typed line is held.
func WithBackDelay(d time.Duration) TypewriterOption {
	return func(t *Typewriter) { t.backDelay = d }
}

// NewTypewriter returns a typewriter over lines. With no lines it renders an
// empty string.
func NewTypewriter(lines []string, opts ...TypewriterOption) *Typewriter {
	t := &Typewriter{
		typeSpeed: 80 * time.Millisecond,
		backSpeed: 40 * time.Millisecond,
		backDelay: 700 * time.Millisecond,
	}
	for _, l := range lines {
		t.lines = append(t.lines, []rune(l))
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.lines) > 0 {
		t.startTyping()
	}
	return t
}

func (t *Typewriter) Role() interaction.Role { return interaction.RoleTyped }

func (t *Typewriter) startTyping() {
	n := len(t.lines[t.line])
	t.phase = phaseTyping
	t.tween = gween.New(0, float32(n), float32(t.typeSpeed.Seconds())*float32(n), ease.Linear)
}

func (t *Typewriter) startDeleting() {
	t.phase = phaseDeleting
	t.tween = gween.New(float32(t.shown), 0, float32(t.backSpeed.Seconds())*float32(t.shown), ease.Linear)
}

// Advance moves the typewriter forward by elapsed.
func (t *Typewriter) Advance(elapsed time.Duration) {
	if len(t.lines) == 0 {
		return
	}
	switch t.phase {
	case phaseTyping:
		v, done := t.tween.Update(float32(elapsed.Seconds()))
		t.shown = chars(v)
		if done {
			t.shown = len(t.lines[t.line])
			t.phase = phaseHolding
			t.held = 0
		}
	case phaseHolding:
		t.held += elapsed
		if t.held >= t.backDelay {
			t.startDeleting()
		}
	case phaseDeleting:
		v, done := t.tween.Update(float32(elapsed.Seconds()))
		t.shown = chars(v)
		if done {
			t.shown = 0
			t.line = (t.line + 1) % len(t.lines)
			t.startTyping()
		}
	}
}

// Text returns the currently visible text.
func (t *Typewriter) Text() string {
	if len(t.lines) == 0 {
		return ""
	}
	return string(t.lines[t.line][:t.shown])
}

func (t *Typewriter) Mutations(el interaction.Element) []interaction.Mutation {
	return []interaction.Mutation{{Target: el, Kind: interaction.SetText, Value: t.Text()}}
}

// chars converts a tweened character count to a whole number, tolerating
// float32 rounding just below an integer.
func chars(v float32) int {
	return int(math.Floor(float64(v) + 1e-3))
}
