package commands

import (
	"context"
	"errors"
	"log/slog"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/domain/vote"
	"voting-platform/internal/infra"
	"voting-platform/internal/infra/repository"
	"voting-platform/internal/pkg/clock"
	"voting-platform/internal/pkg/errs"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAlreadyVoted            = errs.New("already voted")
	ErrCandidateNotFound       = errs.New("candidate not found")
	ErrVoterNotFound           = errs.New("voter not found")
	ErrForbidden               = errs.New("admin privileges required")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type VoteLedger interface {
	Insert(ctx context.Context, tx repository.DBTX, v *vote.Vote) error
	FindByVoterID(ctx context.Context, voterID uuid.UUID) (*queries.VoteView, error)
	DeleteAll(ctx context.Context, tx repository.DBTX) error
}

type VoterFlagRepository interface {
	HasVotedFlag(ctx context.Context, id uuid.UUID) (bool, error)
	SetHasVoted(ctx context.Context, tx repository.DBTX, id uuid.UUID) error
	ClearAllHasVoted(ctx context.Context, tx repository.DBTX) error
}

type CandidateCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CandidateView, error)
}

type VoteCommands interface {
	CastVote(ctx context.Context, voterID, candidateID uuid.UUID) (*queries.VoteView, error)
	ResetVotes(ctx context.Context, callerID uuid.UUID, role user.Role) error
}

type voteCommandsImpl struct {
	ledger    VoteLedger
	voterRepo VoterFlagRepository
	catalog   CandidateCatalog
	db        *pgxpool.Pool
	clock     clock.Clock
}

func NewVoteCommands(
	ledger VoteLedger,
	voterRepo VoterFlagRepository,
	catalog CandidateCatalog,
	db *pgxpool.Pool,
	clock clock.Clock,
) VoteCommands {
	return &voteCommandsImpl{
		ledger:    ledger,
		voterRepo: voterRepo,
		catalog:   catalog,
		db:        db,
		clock:     clock,
	}
}

// CastVote commits one ballot. The has_voted flag is only a fast path; the
// ledger's unique constraint decides races, so a voter losing a concurrent
// race gets the same ErrAlreadyVoted as one who voted yesterday. If the
// context expires during the transaction the outcome is unknown and the
// caller should re-query HasVoted instead of assuming failure.
func (v *voteCommandsImpl) CastVote(ctx context.Context, voterID, candidateID uuid.UUID) (*queries.VoteView, error) {
	hasVoted, err := v.voterRepo.HasVotedFlag(ctx, voterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hasVoted {
		return nil, ErrAlreadyVoted
	}

	if _, err := v.catalog.FindByID(ctx, candidateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ballot, err := vote.NewVote(voterID, candidateID, v.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := v.commitVote(ctx, ballot); err != nil {
		return nil, err
	}

	view, err := v.ledger.FindByVoterID(ctx, voterID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// commitVote writes the ledger row and the voter's flag as one unit.
func (v *voteCommandsImpl) commitVote(ctx context.Context, ballot *vote.Vote) error {
	tx, err := v.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback vote transaction", "error", rollbackErr)
		}
	}()

	if err := v.ledger.Insert(ctx, tx, ballot); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrAlreadyVoted
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := v.voterRepo.SetHasVoted(ctx, tx, ballot.VoterID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// ResetVotes clears the whole ledger and every voter's flag atomically.
// Destructive and unrecoverable, hence the audit log with the caller.
func (v *voteCommandsImpl) ResetVotes(ctx context.Context, callerID uuid.UUID, role user.Role) error {
	if role != user.RoleAdmin {
		return ErrForbidden
	}

	tx, err := v.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback reset transaction", "error", rollbackErr)
		}
	}()

	if err := v.ledger.DeleteAll(ctx, tx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := v.voterRepo.ClearAllHasVoted(ctx, tx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("vote ledger reset", "caller_id", callerID)
	return nil
}
