package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jbeshir/interview-insights/internal/app"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/jbeshir/interview-insights/internal/transport/web/router"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Shared dependencies, initialized lazily so `help` works without a database.
var (
	ui   *UI
	cmds *router.Commands
	db   *sql.DB

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reviewctl",
	Short: "Operate the interview review store",
	Long: `reviewctl works directly against the review database.
It applies migrations, lists the moderation queue, approves or rejects
pending reviews and reports moderation statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeDB()
	},
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/reviewctl/config.yaml)")
	rootCmd.PersistentFlags().String("moderator", "", "Moderator id recorded on decisions")
	_ = viper.BindPFlag("moderator_id", rootCmd.PersistentFlags().Lookup("moderator"))
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "reviewctl")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("REVIEWCTL")
	viper.AutomaticEnv()

	setDefaults()

	// The config file is optional.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.sqlite_path", filepath.Join(configDir(), "reviews.db"))
	viper.SetDefault("database.mysql_uri", "")
	viper.SetDefault("moderator_id", "")
}

func initDeps() {
	ui = NewUI()
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return domain.ContextWithLogger(ctx, logger)
}

func databaseConfig(migrate bool) app.DatabaseConfig {
	return app.DatabaseConfig{
		Driver:     viper.GetString("database.driver"),
		MySQLURI:   viper.GetString("database.mysql_uri"),
		SQLitePath: viper.GetString("database.sqlite_path"),
		Migrate:    migrate,
	}
}

// getCommands opens the configured database on first use.
func getCommands(ctx context.Context) (*router.Commands, error) {
	if cmds != nil {
		return cmds, nil
	}

	repo, conn, err := app.OpenRepository(ctx, databaseConfig(false))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	built := app.BuildCommands(repo, nil)
	cmds, db = &built, conn
	return cmds, nil
}

func closeDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	cmds, db = nil, nil
	return err
}

// moderator is the caller moderation commands act as.
func moderator() (domain.Caller, error) {
	id := viper.GetString("moderator_id")
	if id == "" {
		return domain.Caller{}, fmt.Errorf("no moderator id: pass --moderator or set REVIEWCTL_MODERATOR_ID")
	}
	return domain.Caller{UserID: id, Moderator: true, Method: domain.AuthMethodOperator}, nil
}
