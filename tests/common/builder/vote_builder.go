//go:build unit || e2e

package builder

import (
	"time"

	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoteBuilder struct {
	ID            uuid.UUID
	VoterID       uuid.UUID
	VoterName     string
	CandidateID   uuid.UUID
	CandidateName string
	CastAt        time.Time
}

func NewVoteBuilder() *VoteBuilder {
	return &VoteBuilder{
		ID:            uuid.New(),
		VoterID:       uuid.New(),
		VoterName:     "Test Voter",
		CandidateID:   uuid.New(),
		CandidateName: "Grace Hopper",
		CastAt:        time.Now().UTC(),
	}
}

func (b *VoteBuilder) WithVoterID(id uuid.UUID) *VoteBuilder {
	b.VoterID = id
	return b
}

func (b *VoteBuilder) WithCandidateID(id uuid.UUID) *VoteBuilder {
	b.CandidateID = id
	return b
}

func (b *VoteBuilder) BuildView() *queries.VoteView {
	return &queries.VoteView{
		ID:            b.ID,
		VoterID:       b.VoterID,
		VoterName:     b.VoterName,
		CandidateID:   b.CandidateID,
		CandidateName: b.CandidateName,
		CastAt:        b.CastAt,
	}
}

func (b *VoteBuilder) BuildResultRow(count int64) *queries.ResultRow {
	return &queries.ResultRow{
		CandidateID: b.CandidateID,
		Name:        b.CandidateName,
		Description: "Builds the data platform",
		VoteCount:   count,
	}
}

func (b *VoteBuilder) BuildVoterListItem() *queries.VoterListItem {
	return &queries.VoterListItem{
		ID:          b.VoterID,
		Name:        b.VoterName,
		LinkedinURL: "https://linkedin.com/in/test-voter",
		VotedAt:     b.CastAt,
	}
}

func (b *VoteBuilder) BuildStatisticsReport(total int64) *queries.StatisticsReport {
	return &queries.StatisticsReport{
		TotalVotes: total,
		CandidateStatistics: []*queries.CandidateStat{
			{
				CandidateID:   b.CandidateID,
				CandidateName: b.CandidateName,
				VoteCount:     total,
				Percentage:    100,
			},
		},
		RecentVotes: queries.RecentVotes{
			Last24Hours: total,
			Last7Days:   total,
		},
		VotesByAuthProvider: []*queries.ProviderCount{
			{AuthProvider: "local", Count: total},
		},
	}
}
