package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/datasources/mysql"
	"github.com/jbeshir/interview-insights/internal/datasources/sqlite"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/jbeshir/interview-insights/internal/screening"
	"github.com/jbeshir/interview-insights/internal/transport/web/router"
	"github.com/jbeshir/interview-insights/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// DatabaseConfig selects and prepares the review store.
type DatabaseConfig struct {
	Driver     string
	MySQLURI   string
	SQLitePath string
	Migrate    bool
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, db, err := OpenRepository(ctx, DatabaseConfig{
		Driver:     MustGetEnvAsString(ctx, "DATABASE_DRIVER"),
		MySQLURI:   GetEnvAsString("MYSQL_URI"),
		SQLitePath: GetEnvAsString("SQLITE_PATH"),
		Migrate:    MustGetEnvAsBoolean(ctx, "DATABASE_MIGRATE"),
	})
	if err != nil {
		return nil, fmt.Errorf("setting up review repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		BuildCommands(repo, nil),
		router.FeedConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		},
		MustGetEnvAsDuration(ctx, "PUBLIC_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		dbCloser{db: db},
	}, nil
}

// dbCloser closes the database once the other components have stopped.
type dbCloser struct {
	db *sql.DB
}

func (c dbCloser) Run(ctx context.Context) error {
	<-ctx.Done()
	return c.db.Close()
}

// OpenRepository connects to the configured store, applying migrations when asked.
// The caller owns the returned *sql.DB.
func OpenRepository(ctx context.Context, cfg DatabaseConfig) (datasources.Repository, *sql.DB, error) {
	var (
		db      *sql.DB
		err     error
		migrate func(context.Context, *sql.DB) error
	)
	switch cfg.Driver {
	case "mysql":
		db, err = mysql.Connect(ctx, cfg.MySQLURI)
		migrate = mysql.Migrate
	case "sqlite":
		db, err = sqlite.Open(ctx, cfg.SQLitePath)
		migrate = sqlite.Migrate
	default:
		return nil, nil, fmt.Errorf("unknown database driver [%s]", cfg.Driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %w", cfg.Driver, err)
	}

	if cfg.Migrate {
		if err := migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrating %s: %w", cfg.Driver, err)
		}
		domain.LoggerFromContext(ctx).InfoContext(ctx, "applied database migrations", "driver", cfg.Driver)
	}

	if cfg.Driver == "mysql" {
		return mysql.New(db), db, nil
	}
	return sqlite.New(db), db, nil
}

// BuildCommands wires every command to repo. A nil now uses the wall clock.
func BuildCommands(repo datasources.Repository, now func() time.Time) router.Commands {
	ledger := command.NewContributionLedger(now)
	screener := screening.New()
	policy := domain.DefaultModerationPolicy()

	return router.Commands{
		ListTags:      &command.ListTags{Lister: repo},
		ListCompanies: &command.ListCompanies{Lister: repo},
		CreateCompany: &command.CreateCompany{Creator: repo, Now: now},
		GetCompanySummary: &command.GetCompanySummary{
			Companies: repo,
			Reviews:   repo,
			Now:       now,
		},
		GetWeightedRating: &command.GetWeightedRating{
			Companies: repo,
			Reviews:   repo,
			Now:       now,
		},
		GetInsights: &command.GetInsights{
			Companies:     repo,
			Reviews:       repo,
			Contributions: repo,
			Ledger:        ledger,
			Config:        domain.DefaultInsightsConfig(),
			Now:           now,
		},
		ListCompanyReviews: &command.ListCompanyReviews{Companies: repo, Reviews: repo},
		SubmitReview: &command.SubmitReview{
			Screener:   screener,
			Companies:  repo,
			Tags:       repo,
			Transactor: repo,
			Ledger:     ledger,
			Policy:     policy,
			Now:        now,
		},
		EditReview: &command.EditReview{
			Screener:   screener,
			Reviews:    repo,
			Tags:       repo,
			Transactor: repo,
			Ledger:     ledger,
			Policy:     policy,
			Now:        now,
		},
		DeleteReview:        command.NewDeleteReview(repo, repo),
		ToggleVote:          &command.ToggleVote{Reviews: repo, Votes: repo, Now: now},
		ListMyReviews:       &command.ListMyReviews{Reviews: repo},
		ListMyContributions: &command.ListMyContributions{Contributions: repo},
		ListModerationQueue: &command.ListModerationQueue{Lister: repo},
		GetModerationStats:  &command.GetModerationStats{Counts: repo, Now: now},
		ModerateReview: &command.ModerateReview{
			Reviews:    repo,
			Transactor: repo,
			Ledger:     ledger,
			Now:        now,
		},
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "trusted_header":
			domain.LoggerFromContext(ctx).WarnContext(ctx,
				"trusting identity headers; the service must only be reachable through the proxy setting them")
			validators = append(validators, router.NewTrustedHeaderValidator())
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
