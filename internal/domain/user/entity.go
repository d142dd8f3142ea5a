package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Identity source for voting: the ledger references users by ID
// and the statistics report groups votes by their auth provider.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	linkedinURL  *string
	authProvider AuthProvider
	role         Role
	hasVoted     bool
	isActive     bool
	createdAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, provider AuthProvider, role Role, linkedinURL *string) *User {
	return &User{
		id:           uuid.New(),
		name:         name.Value(),
		email:        email,
		passwordHash: passwordHash,
		linkedinURL:  linkedinURL,
		authProvider: provider,
		role:         role,
		hasVoted:     false,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Name() string               { return u.name }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) LinkedinURL() *string       { return u.linkedinURL }
func (u *User) AuthProvider() AuthProvider { return u.authProvider }
func (u *User) Role() Role                 { return u.role }
func (u *User) HasVoted() bool             { return u.hasVoted }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) CreatedAt() time.Time       { return u.createdAt }

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
