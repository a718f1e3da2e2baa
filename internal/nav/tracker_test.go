package nav

import (
	"errors"
	"testing"
)

var three = []Section{SectionHome, SectionAbout, SectionSkills}

func threeExtents() map[Section]Extent {
	return map[Section]Extent{
		SectionHome:   {Top: 0, Bottom: 100},
		SectionAbout:  {Top: 100, Bottom: 300},
		SectionSkills: {Top: 300, Bottom: 600},
	}
}

func TestTrackerDefaultsToFirstSection(t *testing.T) {
	tr := NewTracker(three, 80)
	if got := tr.Active(); got != SectionHome {
		t.Errorf("Active() = %q, want %q", got, SectionHome)
	}
	if got := NewTracker(nil, 80).Active(); got != Sections[0] {
		t.Errorf("nil sections: Active() = %q, want %q", got, Sections[0])
	}
}

func TestTrackerProbe(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		want    Section
	}{
		{"line at 150 in second", 70, SectionAbout},
		{"line on boundary belongs to next", 20, SectionAbout},
		{"line at 80 in first", 0, SectionHome},
		{"line at 599 in third", 519, SectionSkills},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(three, 80)
			if got := tr.Update(tt.scrollY, threeExtents()); got != tt.want {
				t.Errorf("Update(%v) = %q, want %q", tt.scrollY, got, tt.want)
			}
		})
	}
}

func TestTrackerRetainsPreviousOutsideAllSections(t *testing.T) {
	tr := NewTracker(three, 80)
	tr.Update(70, threeExtents())

	// Probe 650 lies past every section.
	if got := tr.Update(570, threeExtents()); got != SectionAbout {
		t.Errorf("Update(570) = %q, want retained %q", got, SectionAbout)
	}
	if got := tr.Update(-500, threeExtents()); got != SectionAbout {
		t.Errorf("Update(-500) = %q, want retained %q", got, SectionAbout)
	}
}

func TestTrackerOverlapFirstMatchWins(t *testing.T) {
	tr := NewTracker(three, 0)
	extents := map[Section]Extent{
		SectionHome:   {Top: 0, Bottom: 100},
		SectionAbout:  {Top: 50, Bottom: 300},
		SectionSkills: {Top: 60, Bottom: 600},
	}
	if got := tr.Update(75, extents); got != SectionHome {
		t.Errorf("Update(75) = %q, want %q", got, SectionHome)
	}
}

func TestTrackerOnChangeFiresOnlyOnChange(t *testing.T) {
	tr := NewTracker(three, 80)
	var seen []Section
	tr.OnChange(func(s Section) { seen = append(seen, s) })

	tr.Update(0, threeExtents())   // home, unchanged
	tr.Update(70, threeExtents())  // about
	tr.Update(90, threeExtents())  // about again
	tr.Update(300, threeExtents()) // skills

	want := []Section{SectionAbout, SectionSkills}
	if len(seen) != len(want) {
		t.Fatalf("listener saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestTrackerScrolled(t *testing.T) {
	tr := NewTracker(three, 80)
	tr.Update(50, threeExtents())
	if tr.Scrolled() {
		t.Error("Scrolled() at 50 = true, want false")
	}
	tr.Update(51, threeExtents())
	if !tr.Scrolled() {
		t.Error("Scrolled() at 51 = false, want true")
	}
}

type fakeSource struct {
	fn           func(Event)
	unsubscribed int
}

func (f *fakeSource) Subscribe(fn func(Event)) func() {
	f.fn = fn
	return func() {
		f.fn = nil
		f.unsubscribed++
	}
}

func (f *fakeSource) send(ev Event) {
	if f.fn != nil {
		f.fn(ev)
	}
}

func TestTrackerMountLifecycle(t *testing.T) {
	src := &fakeSource{}
	tr := NewTracker(three, 80)

	if err := tr.Mount(src); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := tr.Mount(src); !errors.Is(err, ErrMounted) {
		t.Errorf("second Mount() = %v, want ErrMounted", err)
	}

	src.send(Event{ScrollY: 70, Extents: threeExtents()})
	if tr.Active() != SectionAbout {
		t.Errorf("Active() = %q after event, want %q", tr.Active(), SectionAbout)
	}

	tr.Unmount()
	tr.Unmount()
	if src.unsubscribed != 1 {
		t.Errorf("unsubscribed %d times, want 1", src.unsubscribed)
	}
	if tr.Mounted() {
		t.Error("Mounted() = true after Unmount")
	}

	src.send(Event{ScrollY: 300, Extents: threeExtents()})
	if tr.Active() != SectionAbout {
		t.Errorf("unmounted tracker moved to %q", tr.Active())
	}
}
