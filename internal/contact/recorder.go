package contact

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Recorder persists contact attempts.
type Recorder interface {
	SaveMessage(ctx context.Context, id string, form Form) error
	MarkDelivered(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// RecordingSender stores every attempt before delegating to next, then marks
// the outcome. Storage failures are logged and never fail the send.
type RecordingSender struct {
	next Sender
	rec  Recorder
}

// NewRecordingSender wraps next.
func NewRecordingSender(next Sender, rec Recorder) *RecordingSender {
	return &RecordingSender{next: next, rec: rec}
}

// Send records the form, sends it, and records the result.
func (r *RecordingSender) Send(ctx context.Context, form Form) error {
	id := uuid.NewString()
	if err := r.rec.SaveMessage(ctx, id, form); err != nil {
		log.Printf("contact: recording message %s: %v", id, err)
	}

	sendErr := r.next.Send(ctx, form)

	// The request context may already be done; the bookkeeping still runs.
	bg := context.WithoutCancel(ctx)
	if sendErr != nil {
		if err := r.rec.MarkFailed(bg, id, sendErr.Error()); err != nil {
			log.Printf("contact: marking message %s failed: %v", id, err)
		}
		return sendErr
	}
	if err := r.rec.MarkDelivered(bg, id); err != nil {
		log.Printf("contact: marking message %s delivered: %v", id, err)
	}
	return nil
}
