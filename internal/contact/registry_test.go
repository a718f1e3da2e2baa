package contact

import (
	"context"
	"testing"
	"time"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(LogSender{}, time.Minute, 0)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	id, s := r.Get("")
	if id == "" || s == nil {
		t.Fatalf("Get(\"\") = %q, %v", id, s)
	}

	again, s2 := r.Get(id)
	if again != id || s2 != s {
		t.Errorf("Get(%q) returned a different session", id)
	}

	bogus, s3 := r.Get("not-a-uuid")
	if bogus == "not-a-uuid" || s3 == s {
		t.Errorf("Get(bogus) = %q, want fresh id and session", bogus)
	}

	now = now.Add(2 * time.Minute)
	if n := r.Sweep(); n != 2 {
		t.Errorf("Sweep() = %d, want 2", n)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after sweep, want 0", r.Len())
	}
}

func TestRegistrySnapshotDoesNotRegister(t *testing.T) {
	r := NewRegistry(LogSender{}, time.Hour, 0)

	for i := 0; i < 1000; i++ {
		snap := r.Snapshot("")
		if snap.Status != StatusIdle || !snap.Form.IsZero() || len(snap.Errors) != 0 {
			t.Fatalf("Snapshot(\"\") = %+v, want empty idle form", snap)
		}
	}
	r.Snapshot("6f1c1f1e-8d7a-4c39-9a57-1b1d8f7a2c11")
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after snapshots, want 0", r.Len())
	}
	if _, ok := r.Lookup("6f1c1f1e-8d7a-4c39-9a57-1b1d8f7a2c11"); ok {
		t.Error("Lookup found a session that was never created")
	}

	id, s := r.Get("")
	if err := s.Edit(FieldName, "Jane"); err != nil {
		t.Fatal(err)
	}
	if got := r.Snapshot(id); got.Form.Name != "Jane" {
		t.Errorf("Snapshot(%q).Form.Name = %q, want Jane", id, got.Form.Name)
	}
}

func TestRegistryLimitEvictsOldestIdle(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sender := SenderFunc(func(context.Context, Form) error {
		close(started)
		<-release
		return nil
	})

	r := NewRegistry(sender, time.Hour, 2)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	busyID, busy := r.Get("")
	busy.Apply(validForm())
	done := make(chan Outcome, 1)
	go func() { done <- busy.Submit(context.Background()) }()
	<-started

	now = now.Add(time.Second)
	idleID, _ := r.Get("")

	for i := 0; i < 100; i++ {
		now = now.Add(time.Second)
		r.Get("")
		if n := r.Len(); n > 2 {
			t.Fatalf("Len() = %d, want at most 2", n)
		}
	}

	if _, ok := r.Lookup(busyID); !ok {
		t.Error("session with a send in flight was evicted")
	}
	if _, ok := r.Lookup(idleID); ok {
		t.Error("oldest idle session survived past the limit")
	}

	close(release)
	if out := <-done; !out.Sent() {
		t.Errorf("Submit() = %+v, want sent", out)
	}
}
