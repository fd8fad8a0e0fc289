package domain

import "time"

// Outcome labels a verification attempt.
type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
)

// Attempt is one durable record of a verification call made for a session.
// Created once per check that reaches the matching API; never mutated afterwards.
type Attempt struct {
	ID        string
	SessionID string
	Timestamp time.Time
	Status    int     // HTTP status returned by the matching API
	Text      string  // raw response body, or serialized error map for 401s
	Outcome   Outcome // PASS or FAIL
	TTL       int64   // epoch seconds; row lifecycle enforced by an external sweeper
}
