package repository

import (
	"context"

	"voting-platform/internal/domain/candidate"
	"voting-platform/internal/infra"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CandidateRepository struct {
	db DBTX
}

func NewCandidateRepository(db DBTX) *CandidateRepository {
	return &CandidateRepository{db: db}
}

const createCandidateSQL = `
INSERT INTO candidates (id, name, description, linkedin_url, team_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	_, err := r.db.Exec(ctx, createCandidateSQL,
		c.ID(), c.Name(), c.Description(), c.LinkedinURL(), c.TeamID(), c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create candidate", err)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete candidate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("candidate not found", nil, infra.KindNotFound)
	}
	return nil
}

const findCandidateByIDSQL = `
SELECT id, name, description, linkedin_url, team_id, created_at
FROM candidates
WHERE id = $1`

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CandidateView, error) {
	var view queries.CandidateView
	err := r.db.QueryRow(ctx, findCandidateByIDSQL, id).Scan(
		&view.ID, &view.Name, &view.Description, &view.LinkedinURL, &view.TeamID, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("candidate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find candidate by id", err)
	}
	return &view, nil
}

// Catalog order: by team then name, the order the ballot shows.
const findAllCandidatesSQL = `
SELECT id, name, description, linkedin_url, team_id, created_at
FROM candidates
ORDER BY team_id, name`

func (r *CandidateRepository) FindAll(ctx context.Context) ([]*queries.CandidateView, error) {
	rows, err := r.db.Query(ctx, findAllCandidatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidates", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.CandidateView, error) {
		var view queries.CandidateView
		err := row.Scan(&view.ID, &view.Name, &view.Description, &view.LinkedinURL, &view.TeamID, &view.CreatedAt)
		return &view, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan candidate rows", err)
	}
	return result, nil
}
