package domain

import "time"

// Session represents a user's in-progress verification journey, keyed by session id.
// ExpiryDate and AuthorizationCodeExpiryDate are epoch seconds; row lifecycle (TTL
// deletion) is enforced by an external sweeper, not by this service.
type Session struct {
	SessionID                   string
	ClientID                    string
	ExpiryDate                  int64
	ClientIPAddress             string
	PersistentSessionID         string
	Subject                     string
	ClientSessionID             string // journey id assigned by the calling client
	Txn                         string // correlation token from the last matching call; empty until set
	AuthorizationCode           string // empty until issued
	AuthorizationCodeExpiryDate int64  // zero until issued
	CreatedAt                   time.Time
}

// Valid reports whether the session has not expired at the given time.
func (s *Session) Valid(now time.Time) bool {
	if s == nil {
		return false
	}
	return now.Unix() <= s.ExpiryDate
}
