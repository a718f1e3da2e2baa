package nav

import (
	"errors"
	"sync"
)

const (
	// DefaultActivationOffset is how far below the viewport top the
	// activation line sits, clearing the fixed header.
	DefaultActivationOffset = 100

	// ScrolledThreshold is the scroll position past which the header
	// switches to its opaque style.
	ScrolledThreshold = 50
)

// ErrMounted is returned when Mount is called on a tracker that is already
// attached to a source.
var ErrMounted = errors.New("tracker already mounted")

// Event is a scroll, resize or layout change reported by a Source.
type Event struct {
	ScrollY float64
	Extents map[Section]Extent
}

// Source delivers layout events until the returned function is called.
type Source interface {
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Tracker decides which section is active for navigation highlighting.
type Tracker struct {
	sections []Section
	offset   float64

	mu          sync.Mutex
	active      Section
	scrolled    bool
	listeners   []func(Section)
	unsubscribe func()
}

// NewTracker returns a tracker over sections (in document order) whose
// activation line sits offset pixels below the viewport top. The first
// section starts out active.
func NewTracker(sections []Section, offset float64) *Tracker {
	if len(sections) == 0 {
		sections = Sections
	}
	s := make([]Section, len(sections))
	copy(s, sections)
	return &Tracker{sections: s, offset: offset, active: s[0]}
}

// Active returns the active section.
func (t *Tracker) Active() Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Scrolled reports whether the page has scrolled past the header threshold.
func (t *Tracker) Scrolled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolled
}

// OnChange registers fn to be called whenever the active section changes.
func (t *Tracker) OnChange(fn func(Section)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Update recomputes the active section for the given scroll position and
// section extents. The first section in document order whose extent holds
// the activation line wins; if none does, the previous section stays active.
func (t *Tracker) Update(scrollY float64, extents map[Section]Extent) Section {
	line := scrollY + t.offset

	t.mu.Lock()
	t.scrolled = scrollY > ScrolledThreshold
	next := t.active
	for _, s := range t.sections {
		if e, ok := extents[s]; ok && e.Contains(line) {
			next = s
			break
		}
	}
	if next == t.active {
		t.mu.Unlock()
		return next
	}
	t.active = next
	listeners := append(([]func(Section))(nil), t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// Mount attaches the tracker to src. Every event it delivers runs Update.
func (t *Tracker) Mount(src Source) error {
	t.mu.Lock()
	if t.unsubscribe != nil {
		t.mu.Unlock()
		return ErrMounted
	}
	// Placeholder so a concurrent Mount fails while Subscribe runs.
	t.unsubscribe = func() {}
	t.mu.Unlock()

	unsub := src.Subscribe(func(ev Event) {
		t.Update(ev.ScrollY, ev.Extents)
	})

	t.mu.Lock()
	t.unsubscribe = unsub
	t.mu.Unlock()
	return nil
}

// Unmount detaches the tracker from its source. It is safe to call more
// than once.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	unsub := t.unsubscribe
	t.unsubscribe = nil
	t.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Mounted reports whether the tracker is attached to a source.
func (t *Tracker) Mounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unsubscribe != nil
}
