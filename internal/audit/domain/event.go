// Package domain defines the audit events emitted at each stage of a
// record check journey.
package domain

import "time"

// User carries the session context attached to every audit event.
type User struct {
	UserID               string `json:"user_id,omitempty"`
	SessionID            string `json:"session_id,omitempty"`
	GovukSigninJourneyID string `json:"govuk_signin_journey_id,omitempty"`
	IPAddress            string `json:"ip_address,omitempty"`
	PersistentSessionID  string `json:"persistent_session_id,omitempty"`
}

// Event is a single audit record. EventName is the configured prefix plus
// a stage suffix, e.g. IPV_HMRC_RECORD_CHECK_CRI_REQUEST_SENT.
type Event struct {
	EventName   string         `json:"event_name"`
	ComponentID string         `json:"component_id,omitempty"`
	Timestamp   int64          `json:"timestamp"`
	User        User           `json:"user"`
	Extensions  map[string]any `json:"extensions,omitempty"`
}

// Stage suffixes appended to the configured event prefix.
const (
	StageStart            = "START"
	StageRequestSent      = "REQUEST_SENT"
	StageResponseReceived = "RESPONSE_RECEIVED"
	StageEnd              = "END"
	StageAbandoned        = "ABANDONED"
)

// NewEvent builds an event for the given prefix and stage stamped with now.
func NewEvent(prefix, stage, componentID string, user User, now time.Time) *Event {
	return &Event{
		EventName:   prefix + "_" + stage,
		ComponentID: componentID,
		Timestamp:   now.Unix(),
		User:        user,
	}
}
