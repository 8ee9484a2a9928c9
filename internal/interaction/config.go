package interaction

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the tunables of the interaction controller. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// SectionLookaheadPx is added to the scroll offset before testing section
	// bounds so a section activates slightly before it reaches the top.
	SectionLookaheadPx float64 `json:"sectionLookaheadPx"`
	// NavElevationThresholdPx is the scroll offset past which the nav bar is
	// drawn elevated.
	NavElevationThresholdPx float64 `json:"navElevationThresholdPx"`
	// MagneticDamping scales the pointer offset applied to magnetic controls.
	// A control may override it with the data-magnetic-damping attribute.
	MagneticDamping float64 `json:"magneticDamping"`
	// TiltSensitivity divides the pointer offset from a card's centre to get
	// rotation degrees.
	TiltSensitivity   float64 `json:"tiltSensitivity"`
	TiltPerspectivePx float64 `json:"tiltPerspectivePx"`
	TiltLiftPx        float64 `json:"tiltLiftPx"`
	// ParallaxDefaultSpeed is used for layers without a data-speed attribute.
	ParallaxDefaultSpeed float64 `json:"parallaxDefaultSpeed"`

	CursorHalfSizePx float64 `json:"cursorHalfSizePx"`
	CursorStiffness  float64 `json:"cursorStiffness"`
	CursorDamping    float64 `json:"cursorDamping"`
	CursorMass       float64 `json:"cursorMass"`

	// MountDelay defers magnetic controls and deferred decorations until
	// layout has settled.
	MountDelay time.Duration `json:"mountDelay"`

	// Sections lists the section ids in document order.
	Sections []string `json:"sections"`

	// RestoreHoverOnRelease makes pointer-up return to Hover instead of
	// Default when the pointer is still over an interactive element.
	RestoreHoverOnRelease bool `json:"restoreHoverOnRelease"`

	ContactConfirmation string `json:"contactConfirmation"`
}

// DefaultSections are the five page sections in document order.
var DefaultSections = []string{"home", "about", "experience", "projects", "contact"}

// DefaultConfig returns the configuration observed on the live page.
func DefaultConfig() Config {
	return Config{
		SectionLookaheadPx:      100,
		NavElevationThresholdPx: 50,
		MagneticDamping:         0.2,
		TiltSensitivity:         20,
		TiltPerspectivePx:       1000,
		TiltLiftPx:              10,
		ParallaxDefaultSpeed:    0.5,
		CursorHalfSizePx:        10,
		CursorStiffness:         500,
		CursorDamping:           30,
		CursorMass:              0.5,
		MountDelay:              100 * time.Millisecond,
		Sections:                append([]string(nil), DefaultSections...),
		ContactConfirmation:     "Thanks for reaching out! I'll get back to you soon.",
	}
}

// Validate reports configuration values the controller cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.SectionLookaheadPx < 0 {
		errs = append(errs, fmt.Errorf("section lookahead must not be negative, got %v", c.SectionLookaheadPx))
	}
	if c.NavElevationThresholdPx < 0 {
		errs = append(errs, fmt.Errorf("nav elevation threshold must not be negative, got %v", c.NavElevationThresholdPx))
	}
	if c.MagneticDamping < 0 {
		errs = append(errs, fmt.Errorf("magnetic damping must not be negative, got %v", c.MagneticDamping))
	}
	if c.TiltSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("tilt sensitivity must be positive, got %v", c.TiltSensitivity))
	}
	if c.CursorStiffness <= 0 || c.CursorMass <= 0 {
		errs = append(errs, errors.New("cursor stiffness and mass must be positive"))
	}
	if c.CursorDamping < 0 {
		errs = append(errs, fmt.Errorf("cursor damping must not be negative, got %v", c.CursorDamping))
	}
	if c.MountDelay < 0 {
		errs = append(errs, fmt.Errorf("mount delay must not be negative, got %v", c.MountDelay))
	}
	if len(c.Sections) == 0 {
		errs = append(errs, errors.New("at least one section is required"))
	}
	return errors.Join(errs...)
}
