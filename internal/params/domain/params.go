package domain

// Parameters is the per-client configuration resolved fresh for each check
// invocation. Absent keys resolve to empty strings; callers decide whether a
// missing value is fatal for their step.
type Parameters struct {
	OtgURL                  string
	MatchingURL             string
	PersonIdentityTableName string
	SessionTableName        string
	Issuer                  string
}
