package vote

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingVoter     = errors.New("vote must reference a voter")
	ErrMissingCandidate = errors.New("vote must reference a candidate")
)

// Vote is immutable once created: no field is ever updated, and the only
// destructive operation is the administrative full reset. Uniqueness per
// voter is enforced by the ledger's storage constraint, not here; this type
// only guarantees a well-formed record.
type Vote struct {
	id          uuid.UUID
	voterID     uuid.UUID
	candidateID uuid.UUID
	castAt      time.Time
}

func NewVote(voterID, candidateID uuid.UUID, now time.Time) (*Vote, error) {
	if voterID == uuid.Nil {
		return nil, ErrMissingVoter
	}
	if candidateID == uuid.Nil {
		return nil, ErrMissingCandidate
	}

	return &Vote{
		id:          uuid.New(),
		voterID:     voterID,
		candidateID: candidateID,
		castAt:      now,
	}, nil
}

func (v *Vote) ID() uuid.UUID          { return v.id }
func (v *Vote) VoterID() uuid.UUID     { return v.voterID }
func (v *Vote) CandidateID() uuid.UUID { return v.candidateID }
func (v *Vote) CastAt() time.Time      { return v.castAt }
