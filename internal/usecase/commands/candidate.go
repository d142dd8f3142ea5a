package commands

import (
	"context"

	"voting-platform/internal/domain/candidate"
	"voting-platform/internal/domain/user"
	"voting-platform/internal/infra"
	"voting-platform/internal/pkg/clock"
	"voting-platform/internal/pkg/errs"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	Create(ctx context.Context, c *candidate.Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CandidateView, error)
}

type CreateCandidateParams struct {
	Name        string
	Description *string
	LinkedinURL string
	TeamID      int32
}

type CandidateCommands interface {
	Create(ctx context.Context, role user.Role, params CreateCandidateParams) (*queries.CandidateView, error)
	Delete(ctx context.Context, role user.Role, id uuid.UUID) error
}

type candidateCommandsImpl struct {
	candidateRepo CandidateRepository
	clock         clock.Clock
}

func NewCandidateCommands(candidateRepo CandidateRepository, clock clock.Clock) CandidateCommands {
	return &candidateCommandsImpl{
		candidateRepo: candidateRepo,
		clock:         clock,
	}
}

func (c *candidateCommandsImpl) Create(ctx context.Context, role user.Role, params CreateCandidateParams) (*queries.CandidateView, error) {
	if role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	entity, err := candidate.NewCandidate(uuid.Nil, params.Name, params.LinkedinURL, params.TeamID, params.Description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.candidateRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.candidateRepo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Delete removes a candidate and, through the FK cascade, every vote cast for
// them. Only meaningful before or between elections; votes for remaining
// candidates are untouched.
func (c *candidateCommandsImpl) Delete(ctx context.Context, role user.Role, id uuid.UUID) error {
	if role != user.RoleAdmin {
		return ErrForbidden
	}

	if err := c.candidateRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCandidateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
