package interaction

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// page is an in-memory document. Regions are placed in document
// coordinates and their viewport bounds follow the scroll offset.
type page struct {
	scrollY  float64
	viewport float64
	roles    map[Role][]Element
	ids      map[string]Element
}

func newPage() *page {
	return &page{viewport: 800, roles: make(map[Role][]Element), ids: make(map[string]Element)}
}

type region struct {
	page  *page
	key   string
	left  float64
	top   float64
	w, h  float64
	fixed bool
	attrs map[string]string
}

func (r *region) Key() string { return r.key }

func (r *region) Bounds() Rect {
	top := r.top
	if !r.fixed {
		top -= r.page.scrollY
	}
	return Rect{Left: r.left, Top: top, Width: r.w, Height: r.h}
}

func (r *region) Offset() (float64, float64) { return r.top, r.h }

func (r *region) Attr(name string) (string, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

func (p *page) add(role Role, key string, left, top, w, h float64, attrs ...string) *region {
	r := &region{page: p, key: key, left: left, top: top, w: w, h: h, attrs: make(map[string]string)}
	for i := 0; i+1 < len(attrs); i += 2 {
		r.attrs[attrs[i]] = attrs[i+1]
	}
	p.roles[role] = append(p.roles[role], r)
	return r
}

// addFixed adds a region whose bounds ignore scrolling, like controls in a
// fixed nav bar.
func (p *page) addFixed(role Role, key string, left, top, w, h float64, attrs ...string) *region {
	r := p.add(role, key, left, top, w, h, attrs...)
	r.fixed = true
	return r
}

func (p *page) section(id string, top, h float64) {
	p.ids[id] = &region{page: p, key: id, top: top, h: h}
}

func (p *page) Query(role Role) []Element { return p.roles[role] }

func (p *page) ByID(id string) (Element, bool) {
	el, ok := p.ids[id]
	return el, ok
}

func (p *page) ScrollY() float64        { return p.scrollY }
func (p *page) ViewportHeight() float64 { return p.viewport }

// portfolioPage lays out the five sections contiguously.
func portfolioPage() *page {
	p := newPage()
	p.section("home", 0, 800)
	p.section("about", 800, 800)
	p.section("experience", 1600, 1000)
	p.section("projects", 2600, 1000)
	p.section("contact", 3600, 600)
	for _, id := range DefaultSections {
		p.addFixed(RoleNavLink, "nav-"+id, 0, 0, 80, 40, AttrSection, id)
	}
	p.addFixed(RoleNavBar, "nav", 0, 0, 1200, 60)
	p.addFixed(RoleCursor, "cursor", 0, 0, 20, 20)
	return p
}

// bus is an EventSource that counts its listeners.
type bus struct {
	next      int
	listeners map[EventType]map[int]Listener
}

func newBus() *bus {
	return &bus{listeners: make(map[EventType]map[int]Listener)}
}

func (b *bus) Listen(t EventType, fn Listener) func() {
	if b.listeners[t] == nil {
		b.listeners[t] = make(map[int]Listener)
	}
	id := b.next
	b.next++
	b.listeners[t][id] = fn
	return func() { delete(b.listeners[t], id) }
}

func (b *bus) Len() int {
	n := 0
	for _, ls := range b.listeners {
		n += len(ls)
	}
	return n
}

func (b *bus) emit(ev Event) {
	for _, fn := range b.listeners[ev.Type] {
		fn(ev)
	}
}

func (b *bus) move(x, y float64) { b.emit(Event{Type: EventPointerMove, X: x, Y: y}) }
func (b *bus) down()             { b.emit(Event{Type: EventPointerDown}) }
func (b *bus) up()               { b.emit(Event{Type: EventPointerUp}) }
func (b *bus) frame()            { b.emit(Event{Type: EventFrame, Elapsed: time.Second / 60}) }

func (b *bus) scroll(p *page, y float64) {
	p.scrollY = y
	b.emit(Event{Type: EventScroll})
}

// manualScheduler runs callbacks only when fired.
type manualScheduler struct {
	pending   []func()
	cancelled int
}

func (s *manualScheduler) After(_ time.Duration, fn func()) func() {
	i := len(s.pending)
	s.pending = append(s.pending, fn)
	return func() {
		if s.pending[i] != nil {
			s.pending[i] = nil
			s.cancelled++
		}
	}
}

func (s *manualScheduler) fire() {
	for i, fn := range s.pending {
		if fn != nil {
			s.pending[i] = nil
			fn()
		}
	}
}

// recorder keeps every applied patch and the last value per target.
type recorder struct {
	patches    []Patch
	transforms map[string]string
	classes    map[string]map[string]bool
	texts      map[string]string
}

func newRecorder() *recorder {
	return &recorder{
		transforms: make(map[string]string),
		classes:    make(map[string]map[string]bool),
		texts:      make(map[string]string),
	}
}

func (r *recorder) Apply(p Patch) {
	r.patches = append(r.patches, p)
	for _, m := range p {
		key := m.Target.Key()
		switch m.Kind {
		case SetTransform:
			r.transforms[key] = m.Value
		case AddClass, RemoveClass:
			if r.classes[key] == nil {
				r.classes[key] = make(map[string]bool)
			}
			r.classes[key][m.Value] = m.Kind == AddClass
		case SetText:
			r.texts[key] = m.Value
		}
	}
}

func (r *recorder) has(key, class string) bool { return r.classes[key][class] }

func vec(x, y float64) mgl64.Vec2 { return mgl64.Vec2{x, y} }
