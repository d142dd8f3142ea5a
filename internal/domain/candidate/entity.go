package candidate

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("candidate name must not be empty")
	ErrInvalidLinkedinURL = errors.New("candidate linkedin url must not be empty")
	ErrInvalidTeamID      = errors.New("team id must be positive")
)

// Candidate entity. The catalog is intentionally count-free: vote totals are
// never attached here so listing candidates can stay public.
type Candidate struct {
	id          uuid.UUID
	name        string
	description *string
	linkedinURL string
	teamID      int32
	createdAt   time.Time
}

func NewCandidate(id uuid.UUID, name, linkedinURL string, teamID int32, description *string, now time.Time) (*Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	linkedinURL = strings.TrimSpace(linkedinURL)
	if linkedinURL == "" {
		return nil, ErrInvalidLinkedinURL
	}

	if teamID <= 0 {
		return nil, ErrInvalidTeamID
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Candidate{
		id:          id,
		name:        name,
		description: description,
		linkedinURL: linkedinURL,
		teamID:      teamID,
		createdAt:   now,
	}, nil
}

func (c *Candidate) ID() uuid.UUID        { return c.id }
func (c *Candidate) Name() string         { return c.name }
func (c *Candidate) Description() *string { return c.description }
func (c *Candidate) LinkedinURL() string  { return c.linkedinURL }
func (c *Candidate) TeamID() int32        { return c.teamID }
func (c *Candidate) CreatedAt() time.Time { return c.createdAt }
