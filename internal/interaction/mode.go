package interaction

// Mode is the pointer interaction mode that drives the cursor marker.
type Mode uint8

const (
	ModeDefault Mode = iota
	ModeHover
	ModePressed
)

func (m Mode) String() string {
	switch m {
	case ModeHover:
		return "hover"
	case ModePressed:
		return "pressed"
	}
	return "default"
}

// Scale is the cursor marker scale for the mode.
func (m Mode) Scale() float64 {
	switch m {
	case ModeHover:
		return 1.5
	case ModePressed:
		return 0.8
	}
	return 1
}

// class is the cursor marker class for the mode, empty for ModeDefault.
func (m Mode) class() string {
	switch m {
	case ModeHover:
		return ClassHover
	case ModePressed:
		return ClassClick
	}
	return ""
}

// hoverChanged returns the mode after the pointer enters or leaves an
// interactive element. Pressed is kept until the button is released.
func (m Mode) hoverChanged(hovering bool) Mode {
	if m == ModePressed {
		return m
	}
	if hovering {
		return ModeHover
	}
	return ModeDefault
}

// releasedMode returns the mode after pointer-up. Without restoreHover the
// cursor always returns to Default, matching the live page.
func releasedMode(hovering, restoreHover bool) Mode {
	if restoreHover && hovering {
		return ModeHover
	}
	return ModeDefault
}
