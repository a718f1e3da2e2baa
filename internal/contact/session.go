package contact

import (
	"context"
	"log"
	"sync"
)

// Outcome reports what a call to Submit did.
type Outcome struct {
	// Ignored is set when a submission was already in flight.
	Ignored bool
	// Errors holds validation failures; nothing was sent.
	Errors Errors
	// Err is the collaborator failure when the send was attempted and failed.
	Err error
	// Status is the session status after the call returned.
	Status Status
}

// Sent reports whether the message was handed off successfully.
func (o Outcome) Sent() bool {
	return !o.Ignored && len(o.Errors) == 0 && o.Err == nil
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Form   Form   `json:"form"`
	Errors Errors `json:"errors"`
	Status Status `json:"status"`
}

// Session owns the state of one visitor's contact form.
type Session struct {
	sender Sender

	mu     sync.Mutex
	form   Form
	errs   Errors
	status Status
}

// NewSession returns an idle session with an empty form that delivers
// messages through sender.
func NewSession(sender Sender) *Session {
	return &Session{sender: sender, errs: Errors{}}
}

// Edit sets one field. The field's error is cleared without re-validating,
// and a finished submission (success or error) drops back to idle.
func (s *Session) Edit(field Field, value string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.set(field, value)
	delete(s.errs, field)
	if s.status == StatusSuccess || s.status == StatusError {
		s.status = StatusIdle
	}
	return nil
}

// Apply runs Edit for every field whose value differs from the session's.
func (s *Session) Apply(form Form) {
	current := s.Snapshot().Form
	for _, f := range Fields {
		if v := form.Get(f); v != current.Get(f) {
			_ = s.Edit(f, v)
		}
	}
}

// Submit validates the form and, if it passes, hands it to the sender.
// A call made while another submission is in flight is ignored.
func (s *Session) Submit(ctx context.Context) Outcome {
	s.mu.Lock()
	if s.status == StatusSubmitting {
		s.mu.Unlock()
		return Outcome{Ignored: true, Status: StatusSubmitting}
	}

	errs := Validate(s.form)
	s.errs = errs
	if len(errs) > 0 {
		status := s.status
		s.mu.Unlock()
		return Outcome{Errors: errs.clone(), Status: status}
	}

	s.status = StatusSubmitting
	form := s.form
	s.mu.Unlock()

	err := s.sender.Send(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("contact: send failed for %s: %v", form.Email, err)
		s.status = StatusError
		return Outcome{Err: err, Status: s.status}
	}

	s.status = StatusSuccess
	s.form = Form{}
	s.errs = Errors{}
	return Outcome{Status: s.status}
}

// Status returns the current submission status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Form: s.form, Errors: s.errs.clone(), Status: s.status}
}
