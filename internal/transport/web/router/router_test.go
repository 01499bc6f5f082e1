package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/interview-insights/internal/command"
	cmdmocks "github.com/jbeshir/interview-insights/internal/command/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRequest(method, target string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	return req.WithContext(ctx)
}

func TestTrustedHeaderValidator(t *testing.T) {
	cases := []struct {
		name       string
		headers    map[string]string
		wantResult *AuthResult
		wantErr    bool
	}{
		{
			name: "no_headers",
		},
		{
			name:    "user",
			headers: map[string]string{TrustedUserIDHeader: "user-1"},
			wantResult: &AuthResult{
				UserID: "user-1",
				Method: domain.AuthMethodTrustedHeader,
			},
		},
		{
			name:    "moderator",
			headers: map[string]string{TrustedUserIDHeader: "mod-1", TrustedModeratorHeader: "TRUE"},
			wantResult: &AuthResult{
				UserID:    "mod-1",
				Moderator: true,
				Method:    domain.AuthMethodTrustedHeader,
			},
		},
		{
			name:    "garbled_moderator_flag",
			headers: map[string]string{TrustedUserIDHeader: "mod-1", TrustedModeratorHeader: "yes"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NewTrustedHeaderValidator()(testRequest(http.MethodGet, "/v1/tags", tc.headers))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	var seen domain.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = domain.CallerFromContext(r.Context())
	})
	mw := NewAuthMiddleware([]AuthValidator{NewTrustedHeaderValidator()})(next)

	t.Run("anonymous_passes_through", func(t *testing.T) {
		seen = domain.Caller{UserID: "stale"}
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/tags", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.Caller{}, seen)
	})

	t.Run("caller_attached", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/tags", map[string]string{
			TrustedUserIDHeader: "user-1",
		}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.Caller{UserID: "user-1", Method: domain.AuthMethodTrustedHeader}, seen)
	})

	t.Run("invalid_credentials_rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/tags", map[string]string{
			TrustedUserIDHeader:    "user-1",
			TrustedModeratorHeader: "maybe",
		}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMakeRouter_RouteGuards(t *testing.T) {
	stats := cmdmocks.NewMockCommand[command.GetModerationStatsRequest, domain.ModerationStats](t)
	myReviews := cmdmocks.NewMockCommand[command.ListMyReviewsRequest, []domain.Review](t)

	moderator := domain.Caller{UserID: "mod-1", Moderator: true, Method: domain.AuthMethodTrustedHeader}
	stats.EXPECT().
		Execute(mock.Anything, command.GetModerationStatsRequest{Caller: moderator}).
		Return(domain.ModerationStats{TotalReviews: 3}, nil)

	handler, err := MakeRouter(
		Commands{GetModerationStats: stats, ListMyReviews: myReviews},
		FeedConfig{},
		time.Minute,
		NewAuthMiddleware([]AuthValidator{NewTrustedHeaderValidator()}),
	)
	require.NoError(t, err)

	cases := []struct {
		name       string
		method     string
		target     string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "guest_on_auth_route",
			method:     http.MethodGet,
			target:     "/v1/me/reviews",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user_on_moderator_route",
			method:     http.MethodGet,
			target:     "/v1/moderation/stats",
			headers:    map[string]string{TrustedUserIDHeader: "user-1"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "moderator_on_moderator_route",
			method: http.MethodGet,
			target: "/v1/moderation/stats",
			headers: map[string]string{
				TrustedUserIDHeader:    "mod-1",
				TrustedModeratorHeader: "true",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight_skips_auth",
			method:     http.MethodOptions,
			target:     "/v1/moderation/stats",
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, testRequest(tc.method, tc.target, tc.headers))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
		})
	}
}
