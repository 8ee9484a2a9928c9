package interaction

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// ErrAlreadyMounted is returned by Mount while a previous Subscription is
// still open.
var ErrAlreadyMounted = errors.New("interaction: controller already mounted")

// Decoration is a self-driven effect advanced once per animation frame.
type Decoration interface {
	// Role selects the regions the decoration draws into.
	Role() Role
	Advance(elapsed time.Duration)
	Mutations(el Element) []Mutation
}

type decoration struct {
	Decoration
	deferred bool
}

// Controller owns the pointer, scroll and section state of the page and
// turns browser input into patches. All handlers run under one lock so a
// scroll pass always completes before the next event is handled.
type Controller struct {
	mu  sync.Mutex
	cfg Config
	doc Document
	out Renderer
	log *zap.Logger

	pointer  mgl64.Vec2
	mode     Mode
	hovering bool
	active   string
	scrolled bool
	revealed map[string]struct{}
	magnets  map[string]struct{}
	tilted   map[string]struct{}
	cursor   *Cursor
	armed    bool

	decorations []decoration
	sub         *Subscription
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithDecoration adds a decoration that animates from the first frame.
func WithDecoration(d Decoration) Option {
	return func(c *Controller) { c.decorations = append(c.decorations, decoration{Decoration: d}) }
}

// WithDeferredDecoration adds a decoration that starts once the mount delay
// has elapsed.
func WithDeferredDecoration(d Decoration) Option {
	return func(c *Controller) {
		c.decorations = append(c.decorations, decoration{Decoration: d, deferred: true})
	}
}

// New returns an unmounted controller over doc writing to out.
func New(doc Document, out Renderer, cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		doc:      doc,
		out:      out,
		log:      zap.NewNop(),
		active:   cfg.Sections[0],
		revealed: make(map[string]struct{}),
		magnets:  make(map[string]struct{}),
		tilted:   make(map[string]struct{}),
		cursor:   NewCursor(cfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Mount registers the controller's listeners on src and schedules the
// deferred effects on sched. The page is evaluated once immediately, as if
// it had been scrolled. Close the returned Subscription to release
// everything Mount acquired.
func (c *Controller) Mount(src EventSource, sched Scheduler) (*Subscription, error) {
	c.mu.Lock()
	if c.sub != nil {
		c.mu.Unlock()
		return nil, ErrAlreadyMounted
	}
	sub := &Subscription{owner: c}
	c.sub = sub
	c.armed = false
	c.mu.Unlock()

	for _, t := range []EventType{EventPointerMove, EventPointerDown, EventPointerUp, EventScroll, EventSubmit, EventFrame} {
		sub.add(src.Listen(t, c.Dispatch))
	}
	sub.add(sched.After(c.cfg.MountDelay, c.arm))

	c.mu.Lock()
	c.apply(c.onScroll(true))
	c.mu.Unlock()

	c.log.Debug("interaction controller mounted", zap.Int("listeners", sub.Len()))
	return sub, nil
}

// Dispatch handles one event. Events arriving while unmounted are dropped.
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("interaction handler panicked", zap.Stringer("event", ev.Type), zap.Any("panic", r))
		}
	}()

	switch ev.Type {
	case EventPointerMove:
		c.apply(c.onMove(mgl64.Vec2{ev.X, ev.Y}))
	case EventPointerDown:
		c.apply(c.setMode(nil, ModePressed))
	case EventPointerUp:
		c.apply(c.setMode(nil, releasedMode(c.hovering, c.cfg.RestoreHoverOnRelease)))
	case EventScroll:
		c.apply(c.onScroll(false))
	case EventSubmit:
		c.apply(c.onSubmit(ev))
	case EventFrame:
		c.apply(c.onFrame(ev.Elapsed))
	}
}

// State is a snapshot of the controller's reactive state.
type State struct {
	Pointer       mgl64.Vec2
	Mode          Mode
	Hovering      bool
	ActiveSection string
	Scrolled      bool
	Revealed      []string
	Armed         bool
	Mounted       bool
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Pointer:       c.pointer,
		Mode:          c.mode,
		Hovering:      c.hovering,
		ActiveSection: c.active,
		Scrolled:      c.scrolled,
		Revealed:      slices.Sorted(maps.Keys(c.revealed)),
		Armed:         c.armed,
		Mounted:       c.sub != nil,
	}
}

func (c *Controller) apply(p Patch) {
	if len(p) > 0 {
		c.out.Apply(p)
	}
}

func (c *Controller) arm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub == nil {
		return
	}
	c.armed = true
	c.log.Debug("deferred effects armed")
}

func (c *Controller) unmount(sub *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != sub {
		return
	}
	c.sub = nil
	c.armed = false
	c.log.Debug("interaction controller unmounted")
}

func (c *Controller) setMode(p Patch, m Mode) Patch {
	if m == c.mode {
		return p
	}
	for _, el := range c.doc.Query(RoleCursor) {
		if old := c.mode.class(); old != "" {
			p.class(el, old, false)
		}
		if next := m.class(); next != "" {
			p.class(el, next, true)
		}
	}
	c.mode = m
	return p
}

func (c *Controller) onMove(pointer mgl64.Vec2) Patch {
	c.pointer = pointer

	var p Patch
	c.hovering = false
	for _, el := range c.doc.Query(RoleInteractive) {
		if el.Bounds().Contains(pointer) {
			c.hovering = true
			break
		}
	}
	p = c.setMode(p, c.mode.hoverChanged(c.hovering))

	if c.armed {
		for _, el := range c.doc.Query(RoleMagnetic) {
			c.magnetize(&p, el, pointer)
		}
	}
	for _, el := range c.doc.Query(RoleTilt) {
		c.tilt(&p, el, pointer)
	}
	return p
}

func (c *Controller) magnetize(p *Patch, el Element, pointer mgl64.Vec2) {
	key := el.Key()
	scale, scaled := el.Attr(AttrMagneticScale)
	r := el.Bounds()
	if r.Contains(pointer) {
		damping := c.cfg.MagneticDamping
		if v, ok := floatAttr(el, AttrMagneticDamping); ok {
			damping = v
		}
		t := translate(MagneticOffset(pointer, r, damping))
		if scaled {
			t += " scale(" + scale + ")"
		}
		p.transform(el, t)
		c.magnets[key] = struct{}{}
		return
	}
	if _, ok := c.magnets[key]; ok {
		t := translate(mgl64.Vec2{})
		if scaled {
			t += " scale(1)"
		}
		p.transform(el, t)
		delete(c.magnets, key)
	}
}

func (c *Controller) tilt(p *Patch, el Element, pointer mgl64.Vec2) {
	key := el.Key()
	r := el.Bounds()
	if r.Contains(pointer) {
		p.transform(el, tiltTransform(TiltFor(pointer, r, c.cfg.TiltSensitivity), c.cfg.TiltPerspectivePx, c.cfg.TiltLiftPx))
		c.tilted[key] = struct{}{}
		return
	}
	if _, ok := c.tilted[key]; ok {
		p.transform(el, tiltTransform(Tilt{}, c.cfg.TiltPerspectivePx, 0))
		delete(c.tilted, key)
	}
}

// onScroll runs the scroll pass: active section, nav elevation, parallax,
// then reveal. force re-emits the nav classes even when unchanged.
func (c *Controller) onScroll(force bool) Patch {
	var p Patch
	y := c.doc.ScrollY()

	active := ActiveSection(c.sectionBoxes(), y, c.cfg.SectionLookaheadPx, c.active)
	if active != c.active || force {
		if active != c.active {
			c.log.Debug("active section changed", zap.String("from", c.active), zap.String("to", active))
		}
		c.active = active
		for _, el := range c.doc.Query(RoleNavLink) {
			id, _ := el.Attr(AttrSection)
			p.class(el, ClassActive, id == active)
		}
	}

	scrolled := Elevated(y, c.cfg.NavElevationThresholdPx)
	if scrolled != c.scrolled || force {
		c.scrolled = scrolled
		for _, el := range c.doc.Query(RoleNavBar) {
			p.class(el, ClassScrolled, scrolled)
		}
	}

	for _, el := range c.doc.Query(RoleParallax) {
		speed, ok := floatAttr(el, AttrSpeed)
		if !ok {
			speed = c.cfg.ParallaxDefaultSpeed
		}
		p.transform(el, translateY(ParallaxOffset(y, speed)))
	}

	vh := c.doc.ViewportHeight()
	for _, el := range c.doc.Query(RoleReveal) {
		key := el.Key()
		if _, ok := c.revealed[key]; ok {
			continue
		}
		if el.Bounds().Intersects(vh) {
			c.revealed[key] = struct{}{}
			p.class(el, ClassRevealed, true)
		}
	}
	return p
}

func (c *Controller) onSubmit(ev Event) Patch {
	if ev.PreventDefault != nil {
		ev.PreventDefault()
	}
	var p Patch
	for _, el := range c.doc.Query(RoleContactStatus) {
		p = append(p, Mutation{Target: el, Kind: SetText, Value: c.cfg.ContactConfirmation})
	}
	for _, el := range c.doc.Query(RoleContactForm) {
		p.class(el, ClassSent, true)
	}
	return p
}

func (c *Controller) onFrame(elapsed time.Duration) Patch {
	var p Patch
	if cursors := c.doc.Query(RoleCursor); len(cursors) > 0 {
		c.cursor.Step(elapsed, c.pointer, c.mode)
		for _, el := range cursors {
			p.transform(el, c.cursor.transform())
		}
	}
	for _, d := range c.decorations {
		if d.deferred && !c.armed {
			continue
		}
		d.Advance(elapsed)
		for _, el := range c.doc.Query(d.Role()) {
			p = append(p, d.Mutations(el)...)
		}
	}
	return p
}

func floatAttr(el Element, name string) (float64, bool) {
	s, ok := el.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
