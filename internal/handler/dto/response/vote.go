package response

import (
	"time"

	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoteResponse struct {
	ID            uuid.UUID `json:"id"`
	VoterID       uuid.UUID `json:"voter_id"`
	VoterName     string    `json:"voter_name"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	CastAt        time.Time `json:"cast_at"`
}

func FromVoteView(view *queries.VoteView) *VoteResponse {
	return &VoteResponse{
		ID:            view.ID,
		VoterID:       view.VoterID,
		VoterName:     view.VoterName,
		CandidateID:   view.CandidateID,
		CandidateName: view.CandidateName,
		CastAt:        view.CastAt,
	}
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type ResultResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VoteCount   int64     `json:"vote_count"`
}

func FromResultRows(rows []*queries.ResultRow) []*ResultResponse {
	result := make([]*ResultResponse, len(rows))
	for i, row := range rows {
		result[i] = &ResultResponse{
			ID:          row.CandidateID,
			Name:        row.Name,
			Description: row.Description,
			VoteCount:   row.VoteCount,
		}
	}
	return result
}

type VoterResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LinkedinURL string    `json:"linkedin_url"`
	VotedAt     time.Time `json:"voted_at"`
}

func FromVoterListItems(items []*queries.VoterListItem) []*VoterResponse {
	result := make([]*VoterResponse, len(items))
	for i, item := range items {
		result[i] = &VoterResponse{
			ID:          item.ID,
			Name:        item.Name,
			LinkedinURL: item.LinkedinURL,
			VotedAt:     item.VotedAt,
		}
	}
	return result
}

type CandidateStatResponse struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	VoteCount     int64     `json:"vote_count"`
	Percentage    float64   `json:"percentage"`
}

type RecentVotesResponse struct {
	Last24Hours int64 `json:"last_24_hours"`
	Last7Days   int64 `json:"last_7_days"`
}

type ProviderCountResponse struct {
	AuthProvider string `json:"auth_provider"`
	Count        int64  `json:"count"`
}

type StatisticsResponse struct {
	TotalVotes          int64                    `json:"total_votes"`
	CandidateStatistics []*CandidateStatResponse `json:"candidate_statistics"`
	RecentVotes         RecentVotesResponse      `json:"recent_votes"`
	VotesByAuthProvider []*ProviderCountResponse `json:"votes_by_auth_provider"`
}

func FromStatisticsReport(report *queries.StatisticsReport) *StatisticsResponse {
	stats := make([]*CandidateStatResponse, len(report.CandidateStatistics))
	for i, stat := range report.CandidateStatistics {
		stats[i] = &CandidateStatResponse{
			CandidateID:   stat.CandidateID,
			CandidateName: stat.CandidateName,
			VoteCount:     stat.VoteCount,
			Percentage:    stat.Percentage,
		}
	}

	providers := make([]*ProviderCountResponse, len(report.VotesByAuthProvider))
	for i, pc := range report.VotesByAuthProvider {
		providers[i] = &ProviderCountResponse{
			AuthProvider: pc.AuthProvider,
			Count:        pc.Count,
		}
	}

	return &StatisticsResponse{
		TotalVotes:          report.TotalVotes,
		CandidateStatistics: stats,
		RecentVotes: RecentVotesResponse{
			Last24Hours: report.RecentVotes.Last24Hours,
			Last7Days:   report.RecentVotes.Last7Days,
		},
		VotesByAuthProvider: providers,
	}
}
