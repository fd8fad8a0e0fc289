package domain

import "errors"

// ErrMalformedRecord is returned when a person identity record does not meet the
// minimum shape needed for a matching call: at least one name entry with at least
// two name parts, and at least one birth date.
var ErrMalformedRecord = errors.New("malformed person identity record")

// NamePart is one component of a structured name (e.g. GivenName, FamilyName).
type NamePart struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Name is an ordered list of name parts. The first two parts are treated
// positionally as given name and family name.
type Name struct {
	NameParts []NamePart `json:"nameParts"`
}

// BirthDate holds a date of birth as an ISO-8601 date string.
type BirthDate struct {
	Value string `json:"value"`
}

// PersonIdentity is a previously captured identity record keyed by session id.
// Read-only from the check workflow's perspective.
type PersonIdentity struct {
	SessionID  string
	Names      []Name
	BirthDates []BirthDate
	ExpiryDate int64
}

// MatchDetails holds the fields submitted to the matching API.
type MatchDetails struct {
	FirstName   string
	LastName    string
	DateOfBirth string
}

// MatchDetails extracts the matching fields from the record: the first two parts of
// the first name entry and the first birth date. Returns ErrMalformedRecord when the
// record does not have that minimum shape, instead of an out-of-bounds access.
func (p *PersonIdentity) MatchDetails() (MatchDetails, error) {
	if p == nil || len(p.Names) == 0 || len(p.Names[0].NameParts) < 2 || len(p.BirthDates) == 0 {
		return MatchDetails{}, ErrMalformedRecord
	}
	parts := p.Names[0].NameParts
	return MatchDetails{
		FirstName:   parts[0].Value,
		LastName:    parts[1].Value,
		DateOfBirth: p.BirthDates[0].Value,
	}, nil
}
