package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type VoteView struct {
	ID            uuid.UUID `json:"id"`
	VoterID       uuid.UUID `json:"voter_id"`
	VoterName     string    `json:"voter_name"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	CastAt        time.Time `json:"cast_at"`
}

type ResultRow struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VoteCount   int64     `json:"vote_count"`
}

type CandidateStat struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	VoteCount     int64     `json:"vote_count"`
	Percentage    float64   `json:"percentage"`
}

type RecentVotes struct {
	Last24Hours int64 `json:"last_24_hours"`
	Last7Days   int64 `json:"last_7_days"`
}

type ProviderCount struct {
	AuthProvider string `json:"auth_provider"`
	Count        int64  `json:"count"`
}

type StatisticsReport struct {
	TotalVotes          int64            `json:"total_votes"`
	CandidateStatistics []*CandidateStat `json:"candidate_statistics"`
	RecentVotes         RecentVotes      `json:"recent_votes"`
	VotesByAuthProvider []*ProviderCount `json:"votes_by_auth_provider"`
}

// VoterListItem deliberately has no candidate reference: the roster must not
// be able to leak who voted for whom, no matter where it is reused.
type VoterListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LinkedinURL string    `json:"linkedin_url"`
	VotedAt     time.Time `json:"voted_at"`
}

type CandidateView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	LinkedinURL string    `json:"linkedin_url"`
	TeamID      int32     `json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	AuthProvider string    `json:"auth_provider"`
	Role         string    `json:"role"`
	HasVoted     bool      `json:"has_voted"`
	IsActive     bool      `json:"is_active"`
}
