package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/jbeshir/interview-insights/internal/transport/web/controller"
)

const (
	auth0AuthHeaderPrefix = "Bearer auth0|"

	// ModeratePermission is the Auth0 API permission granting the moderator role.
	ModeratePermission = "moderate:reviews"

	TrustedUserIDHeader    = "X-User-Id"
	TrustedModeratorHeader = "X-User-Moderator"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID    string
	Moderator bool
	Method    domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeAuthError(w, http.StatusUnauthorized, err.Error())
					return
				}

				ctx := domain.ContextWithCaller(r.Context(), domain.Caller{
					UserID:    result.UserID,
					Moderator: result.Moderator,
					Method:    result.Method,
				})
				logger := domain.LoggerFromContext(ctx).With("user_id", result.UserID)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Public endpoints accept guests; the caller stays anonymous.
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(controller.ErrorResponse{Error: msg})
}

type permissionClaims struct {
	Permissions []string `json:"permissions"`
}

func (c *permissionClaims) Validate(context.Context) error {
	return nil
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
// Callers holding ModeratePermission are moderators.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &permissionClaims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		result := &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}
		if perms, ok := claims.CustomClaims.(*permissionClaims); ok {
			result.Moderator = slices.Contains(perms.Permissions, ModeratePermission)
		}
		return result, nil
	}, nil
}

// NewTrustedHeaderValidator trusts identity headers set by a fronting proxy.
// Only enable it when the service is unreachable except through that proxy.
func NewTrustedHeaderValidator() AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		userID := strings.TrimSpace(r.Header.Get(TrustedUserIDHeader))
		if userID == "" {
			return nil, nil
		}

		var moderator bool
		switch strings.ToLower(r.Header.Get(TrustedModeratorHeader)) {
		case "", "false":
		case "true":
			moderator = true
		default:
			return nil, fmt.Errorf("invalid %s header", TrustedModeratorHeader)
		}

		return &AuthResult{
			UserID:    userID,
			Moderator: moderator,
			Method:    domain.AuthMethodTrustedHeader,
		}, nil
	}
}
