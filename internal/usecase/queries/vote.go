package queries

import (
	"context"
	"math"
	"time"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/pkg/clock"
	"voting-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errs.New("admin privileges required")
)

type VoteReadStore interface {
	HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error)
	CountByCandidate(ctx context.Context) ([]*ResultRow, error)
	CountVotedCandidates(ctx context.Context) ([]*CandidateStat, error)
	CountTotal(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByAuthProvider(ctx context.Context) ([]*ProviderCount, error)
	FindAllVoters(ctx context.Context) ([]*VoterListItem, error)
}

type VoteQueries interface {
	HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error)
	Results(ctx context.Context, role user.Role) ([]*ResultRow, error)
	Statistics(ctx context.Context) (*StatisticsReport, error)
	Voters(ctx context.Context) ([]*VoterListItem, error)
}

type voteQueriesImpl struct {
	readStore VoteReadStore
	clock     clock.Clock
}

func NewVoteQueries(readStore VoteReadStore, clock clock.Clock) VoteQueries {
	return &voteQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// HasVoted consults the ledger itself, not the cached flag, so the answer is
// authoritative immediately after a racing insert commits.
func (q *voteQueriesImpl) HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error) {
	return q.readStore.HasVoted(ctx, voterID)
}

// Results is the admin-gated standings view. Every catalog candidate appears,
// including those nobody voted for.
func (q *voteQueriesImpl) Results(ctx context.Context, role user.Role) ([]*ResultRow, error) {
	if role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return q.readStore.CountByCandidate(ctx)
}

// Statistics is publicly readable while Results is admin-only. The asymmetry
// is inherited behavior; see DESIGN.md before changing either gate.
func (q *voteQueriesImpl) Statistics(ctx context.Context) (*StatisticsReport, error) {
	total, err := q.readStore.CountTotal(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := q.readStore.CountVotedCandidates(ctx)
	if err != nil {
		return nil, err
	}
	for _, stat := range stats {
		stat.Percentage = percentage(stat.VoteCount, total)
	}

	now := q.clock.Now()
	last24h, err := q.readStore.CountSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	last7d, err := q.readStore.CountSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}

	providers, err := q.readStore.CountByAuthProvider(ctx)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = []*CandidateStat{}
	}
	if providers == nil {
		providers = []*ProviderCount{}
	}

	return &StatisticsReport{
		TotalVotes:          total,
		CandidateStatistics: stats,
		RecentVotes: RecentVotes{
			Last24Hours: last24h,
			Last7Days:   last7d,
		},
		VotesByAuthProvider: providers,
	}, nil
}

func (q *voteQueriesImpl) Voters(ctx context.Context) ([]*VoterListItem, error) {
	voters, err := q.readStore.FindAllVoters(ctx)
	if err != nil {
		return nil, err
	}
	if voters == nil {
		voters = []*VoterListItem{}
	}
	return voters, nil
}

// percentage returns count/total*100 rounded to 2 decimal places, 0 when the
// ledger is empty.
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
