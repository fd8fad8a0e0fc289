// Package audit emits journey audit events. Emission is best-effort:
// callers log and ignore errors, and a failed emit never fails the request
// that produced it.
package audit

import (
	"context"
	"log"
	"time"

	"record-check-service/internal/audit/domain"
)

// emitTimeout is the max time allowed for a single async emit. Used by
// EmitAsync and by ShutdownDrainDuration.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration is how long to wait after the HTTP server drains
// before closing emitters, so in-flight async emits have time to complete.
// Must be >= emitTimeout.
const ShutdownDrainDuration = emitTimeout

// Emitter sends audit events. Implementations may block briefly; use
// EmitAsync from request handlers.
type Emitter interface {
	Emit(ctx context.Context, event *domain.Event) error
	// Close releases resources. Safe to call if already closed.
	Close() error
}

// EmitAsync runs Emit in a goroutine with a short timeout so the caller is
// not blocked. Errors are logged.
//
// emitter and event may be nil; EmitAsync returns immediately without
// starting a goroutine. The goroutine uses context.Background() with
// emitTimeout so request cancellation does not abort an in-flight emit.
func EmitAsync(emitter Emitter, ctx context.Context, event *domain.Event) {
	if emitter == nil || event == nil {
		return
	}
	go func() {
		emitCtx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := emitter.Emit(emitCtx, event); err != nil {
			log.Printf("audit: async emit failed: %v", err)
		}
	}()
}

// LogEmitter writes audit events to the process log. Used when no Kafka
// brokers are configured so events are still visible in development.
type LogEmitter struct{}

// Emit logs the event name and session.
func (LogEmitter) Emit(_ context.Context, event *domain.Event) error {
	if event == nil {
		return nil
	}
	log.Printf("audit: event=%s session=%s", event.EventName, event.User.SessionID)
	return nil
}

// Close is a no-op.
func (LogEmitter) Close() error { return nil }
