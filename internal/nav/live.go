package nav

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// clientFrame is what the page sends on every scroll or resize.
type clientFrame struct {
	Type    string                `json:"type"` // "scroll"
	ScrollY float64               `json:"scroll_y"`
	Extents map[string][2]float64 `json:"extents"`
}

// serverFrame is pushed back when the highlighted entry should change.
type serverFrame struct {
	Type     string `json:"type"` // "active" or "error"
	Section  string `json:"section,omitempty"`
	Scrolled bool   `json:"scrolled"`
	Error    string `json:"error,omitempty"`
}

// event converts the frame, dropping sections the page does not know.
func (f clientFrame) event() Event {
	ev := Event{ScrollY: f.ScrollY, Extents: make(map[Section]Extent, len(f.Extents))}
	for name, span := range f.Extents {
		s := Section(name)
		if !known(s) {
			continue
		}
		ev.Extents[s] = Extent{Top: span[0], Bottom: span[1]}
	}
	return ev
}

func known(s Section) bool {
	for _, k := range Sections {
		if k == s {
			return true
		}
	}
	return false
}

// frameSource is a Source fed from websocket frames.
type frameSource struct {
	mu sync.Mutex
	fn func(Event)
}

func (s *frameSource) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.fn = nil
		s.mu.Unlock()
	}
}

func (s *frameSource) emit(ev Event) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Live serves the websocket channel that tracks the active section for one
// page view.
type Live struct {
	Offset   float64
	upgrader websocket.Upgrader
}

// NewLive returns a handler whose trackers place the activation line
// offset pixels below the viewport top.
func NewLive(offset float64) *Live {
	return &Live{
		Offset: offset,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and runs the tracker until the page closes
// the connection.
func (l *Live) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("nav: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	src := &frameSource{}
	tracker := NewTracker(Sections, l.Offset)

	scrolled := tracker.Scrolled()
	push := func(s Section) {
		scrolled = tracker.Scrolled()
		if err := conn.WriteJSON(serverFrame{Type: "active", Section: string(s), Scrolled: scrolled}); err != nil {
			log.Printf("nav: websocket write: %v", err)
		}
	}
	tracker.OnChange(push)

	if err := tracker.Mount(src); err != nil {
		log.Printf("nav: mount: %v", err)
		return
	}
	defer tracker.Unmount()

	push(tracker.Active())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("nav: websocket read: %v", err)
			}
			return
		}

		var f clientFrame
		if err := json.Unmarshal(msg, &f); err != nil {
			_ = conn.WriteJSON(serverFrame{Type: "error", Error: "invalid message format"})
			continue
		}
		if f.Type != "scroll" {
			_ = conn.WriteJSON(serverFrame{Type: "error", Error: "unknown message type: " + f.Type})
			continue
		}

		before := tracker.Active()
		src.emit(f.event())
		// The header style can flip without the section changing.
		if tracker.Active() == before && tracker.Scrolled() != scrolled {
			push(before)
		}
	}
}
