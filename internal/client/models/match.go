package models

import "time"

type MatchStatus string

const (
	MatchActive   MatchStatus = "ACTIVE"
	MatchNotified MatchStatus = "NOTIFIED"
	MatchIgnored  MatchStatus = "IGNORED"
	MatchExpired  MatchStatus = "EXPIRED"
)

// StrongMatchScore is the score at or above which a match is rendered with
// the "Strong alignment" badge. GoodMatchScore is the server's default
// notification threshold and marks the lower "Good match" tier.
const (
	StrongMatchScore = 8.0
	GoodMatchScore   = 7.0
)

// Match is a scored pairing of the current user and an opportunity.
type Match struct {
	ID            int64       `json:"id"`
	Opportunity   Opportunity `json:"opportunity"`
	MatchScore    float64     `json:"match_score"`
	Justification string      `json:"justification"`
	Status        MatchStatus `json:"status"`
	NotifiedAt    *time.Time  `json:"notified_at"`
	ViewedAt      *time.Time  `json:"viewed_at"`
	SavedAt       *time.Time  `json:"saved_at"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Strong reports whether the match score clears the strong-alignment bar.
func (m *Match) Strong() bool {
	return m.MatchScore >= StrongMatchScore
}
