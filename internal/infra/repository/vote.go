package repository

import (
	"context"
	"time"

	"voting-platform/internal/domain/vote"
	"voting-platform/internal/infra"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VoteRepository is the vote ledger. Rows are insert-only; the UNIQUE
// constraint on voter_id is what actually enforces one vote per voter under
// concurrent inserts.
type VoteRepository struct {
	db DBTX
}

func NewVoteRepository(db DBTX) *VoteRepository {
	return &VoteRepository{db: db}
}

const insertVoteSQL = `
INSERT INTO votes (id, voter_id, candidate_id, cast_at)
VALUES ($1, $2, $3, $4)`

// Insert adds one ledger row. A unique violation on voter_id surfaces as
// KindConflict so the intake layer can report the duplicate vote.
func (r *VoteRepository) Insert(ctx context.Context, tx DBTX, v *vote.Vote) error {
	_, err := tx.Exec(ctx, insertVoteSQL, v.ID(), v.VoterID(), v.CandidateID(), v.CastAt())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("voter has already voted", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert vote", err)
	}
	return nil
}

func (r *VoteRepository) HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM votes WHERE voter_id = $1)`, voterID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check vote existence", err)
	}
	return exists, nil
}

const voteViewSQL = `
SELECT v.id, v.voter_id, u.name, v.candidate_id, c.name, v.cast_at
FROM votes v
JOIN users u ON u.id = v.voter_id
JOIN candidates c ON c.id = v.candidate_id
WHERE v.voter_id = $1`

func (r *VoteRepository) FindByVoterID(ctx context.Context, voterID uuid.UUID) (*queries.VoteView, error) {
	var view queries.VoteView
	err := r.db.QueryRow(ctx, voteViewSQL, voterID).Scan(
		&view.ID, &view.VoterID, &view.VoterName, &view.CandidateID, &view.CandidateName, &view.CastAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("vote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vote by voter id", err)
	}
	return &view, nil
}

// Candidates with zero votes are part of the result set, so the scan starts
// from the catalog, not the ledger. Ties resolve in catalog order.
const countByCandidateSQL = `
SELECT c.id, c.name, COALESCE(c.description, ''), COUNT(v.id) AS vote_count
FROM candidates c
LEFT JOIN votes v ON v.candidate_id = c.id
GROUP BY c.id, c.name, c.description, c.team_id
ORDER BY vote_count DESC, c.team_id, c.name`

func (r *VoteRepository) CountByCandidate(ctx context.Context) ([]*queries.ResultRow, error) {
	rows, err := r.db.Query(ctx, countByCandidateSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count votes by candidate", err)
	}
	defer rows.Close()

	var result []*queries.ResultRow
	for rows.Next() {
		var row queries.ResultRow
		if err := rows.Scan(&row.CandidateID, &row.Name, &row.Description, &row.VoteCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan result row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read result rows", err)
	}
	return result, nil
}

// Statistics mirror the ledger: only candidates with at least one vote appear.
const countVotedCandidatesSQL = `
SELECT c.id, c.name, COUNT(v.id) AS vote_count
FROM votes v
JOIN candidates c ON c.id = v.candidate_id
GROUP BY c.id, c.name, c.team_id
ORDER BY vote_count DESC, c.team_id, c.name`

func (r *VoteRepository) CountVotedCandidates(ctx context.Context) ([]*queries.CandidateStat, error) {
	rows, err := r.db.Query(ctx, countVotedCandidatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count voted candidates", err)
	}
	defer rows.Close()

	var result []*queries.CandidateStat
	for rows.Next() {
		var stat queries.CandidateStat
		if err := rows.Scan(&stat.CandidateID, &stat.CandidateName, &stat.VoteCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate stat", err)
		}
		result = append(result, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read candidate stats", err)
	}
	return result, nil
}

func (r *VoteRepository) CountTotal(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM votes`).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count votes", err)
	}
	return total, nil
}

func (r *VoteRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM votes WHERE cast_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count votes since", err)
	}
	return count, nil
}

const countByAuthProviderSQL = `
SELECT u.auth_provider, COUNT(v.id)
FROM votes v
JOIN users u ON u.id = v.voter_id
GROUP BY u.auth_provider
ORDER BY u.auth_provider`

func (r *VoteRepository) CountByAuthProvider(ctx context.Context) ([]*queries.ProviderCount, error) {
	rows, err := r.db.Query(ctx, countByAuthProviderSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count votes by auth provider", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ProviderCount, error) {
		var pc queries.ProviderCount
		err := row.Scan(&pc.AuthProvider, &pc.Count)
		return &pc, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan provider counts", err)
	}
	return result, nil
}

// Roster projection: who voted and when, never for whom. The candidate column
// is not selected at all.
const findAllVotersSQL = `
SELECT u.id, u.name, COALESCE(u.linkedin_url, ''), v.cast_at
FROM votes v
JOIN users u ON u.id = v.voter_id
ORDER BY v.cast_at DESC`

func (r *VoteRepository) FindAllVoters(ctx context.Context) ([]*queries.VoterListItem, error) {
	rows, err := r.db.Query(ctx, findAllVotersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voters", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.VoterListItem, error) {
		var item queries.VoterListItem
		err := row.Scan(&item.ID, &item.Name, &item.LinkedinURL, &item.VotedAt)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan voter rows", err)
	}
	return result, nil
}

// DeleteAll truncates the ledger. Must stay TRUNCATE, not DELETE: its
// ACCESS EXCLUSIVE lock blocks concurrent inserts until the reset commits,
// so no vote row can land between the wipe and the flag clear.
func (r *VoteRepository) DeleteAll(ctx context.Context, tx DBTX) error {
	if _, err := tx.Exec(ctx, `TRUNCATE votes`); err != nil {
		return infra.WrapRepoErr("failed to truncate votes", err)
	}
	return nil
}
