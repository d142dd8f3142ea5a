package user

type Role string

const (
	RoleVoter Role = "voter"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleVoter, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AuthProvider labels how the account was created. Only "local" accounts can
// log in with a password; OAuth providers are recorded for statistics.
type AuthProvider string

const (
	ProviderLocal    AuthProvider = "local"
	ProviderGoogle   AuthProvider = "google"
	ProviderLinkedin AuthProvider = "linkedin"
)

func (p AuthProvider) String() string {
	return string(p)
}

func (p AuthProvider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderLinkedin:
		return true
	default:
		return false
	}
}

func NewAuthProvider(s string) (AuthProvider, error) {
	provider := AuthProvider(s)
	if !provider.IsValid() {
		return "", ErrInvalidAuthProvider
	}
	return provider, nil
}
