package types

// MatchResult is an Opportunity scored against a volunteer profile. It is
// computed per request and never stored.
type MatchResult struct {
	Opportunity
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}
