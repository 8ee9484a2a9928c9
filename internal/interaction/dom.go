package interaction

import "time"

// Role names a class of page region the controller knows how to drive.
// The DOM bridge maps each role to a selector; a role with no matching
// regions simply produces no effects.
type Role string

const (
	RoleInteractive     Role = "interactive"
	RoleParallax        Role = "parallax"
	RoleReveal          Role = "reveal"
	RoleMagnetic        Role = "magnetic"
	RoleTilt            Role = "tilt"
	RoleNavBar          Role = "navbar"
	RoleNavLink         Role = "navlink"
	RoleCursor          Role = "cursor"
	RoleContactForm     Role = "contact-form"
	RoleContactStatus   Role = "contact-status"
	RoleTyped           Role = "typed"
	RoleScrollIndicator Role = "scroll-indicator"
	RoleTechIcon        Role = "tech-icon"
)

// Attribute names read from regions.
const (
	AttrSpeed           = "data-speed"
	AttrMagneticDamping = "data-magnetic-damping"
	AttrMagneticScale   = "data-magnetic-scale"
	AttrSection         = "data-section"
)

// Class names written to regions.
const (
	ClassActive   = "active"
	ClassScrolled = "scrolled"
	ClassRevealed = "revealed"
	ClassHover    = "hover"
	ClassClick    = "click"
	ClassSent     = "sent"
)

// Element is a page region as seen by the controller. Bounds is always read
// fresh so geometry is never cached across events.
type Element interface {
	// Key identifies the element for the lifetime of the page.
	Key() string
	// Bounds returns the bounding box in viewport coordinates.
	Bounds() Rect
	// Offset returns the top and height in document coordinates.
	Offset() (top, height float64)
	Attr(name string) (string, bool)
}

// Document gives the controller read access to the page.
type Document interface {
	Query(role Role) []Element
	ByID(id string) (Element, bool)
	ScrollY() float64
	ViewportHeight() float64
}

// EventType enumerates the inputs the controller reacts to.
type EventType uint8

const (
	EventPointerMove EventType = iota
	EventPointerDown
	EventPointerUp
	EventScroll
	EventSubmit
	EventFrame
)

func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointermove"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventScroll:
		return "scroll"
	case EventSubmit:
		return "submit"
	case EventFrame:
		return "frame"
	}
	return "unknown"
}

// Event is a single browser input.
type Event struct {
	Type EventType
	// X and Y are viewport coordinates for pointer events.
	X, Y float64
	// Elapsed is the time since the previous frame for EventFrame.
	Elapsed time.Duration
	// PreventDefault cancels the browser's default action, if any.
	PreventDefault func()
}

// Listener handles one event.
type Listener func(Event)

// EventSource registers listeners. The returned func removes the listener
// and must be safe to call once.
type EventSource interface {
	Listen(t EventType, fn Listener) (release func())
}

// Scheduler runs fn once after d. The returned func cancels a pending call.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// MutationKind says how a Mutation changes its target.
type MutationKind uint8

const (
	SetTransform MutationKind = iota
	AddClass
	RemoveClass
	SetText
	SetColor
)

// Mutation is one visual change to one region.
type Mutation struct {
	Target Element
	Kind   MutationKind
	Value  string
}

// Patch is the ordered list of mutations produced by one event.
type Patch []Mutation

func (p *Patch) transform(el Element, v string) {
	*p = append(*p, Mutation{Target: el, Kind: SetTransform, Value: v})
}

func (p *Patch) class(el Element, name string, on bool) {
	kind := RemoveClass
	if on {
		kind = AddClass
	}
	*p = append(*p, Mutation{Target: el, Kind: kind, Value: name})
}

// Renderer applies a patch to the page.
type Renderer interface {
	Apply(Patch)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Patch)

func (f RendererFunc) Apply(p Patch) { f(p) }
