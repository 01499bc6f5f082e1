package domain

// AuthMethod records how a caller was authenticated.
type AuthMethod string

const (
	AuthMethodAuth0         AuthMethod = "auth0"
	AuthMethodTrustedHeader AuthMethod = "trusted_header"

	// AuthMethodOperator is an operator running reviewctl against the database directly.
	AuthMethodOperator AuthMethod = "operator"
)

// Caller is the identity a request acts as. The zero value is an anonymous guest.
type Caller struct {
	UserID    string
	Moderator bool
	Method    AuthMethod
}

// IsAuthenticated reports whether the caller carries a stable user identifier.
func (c Caller) IsAuthenticated() bool {
	return c.UserID != ""
}
