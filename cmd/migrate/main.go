// Command migrate applies, rolls back and reports the embedded goose
// migrations against the configured database.
//
//	migrate up      apply all pending migrations
//	migrate down    roll back the most recent migration
//	migrate status  list every migration and whether it is applied
//	migrate version print the current schema version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/wayfarer-app/wayfarer-backend/internal/app"
	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/migrations"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		results, err := p.Up(ctx)
		for _, r := range results {
			fmt.Printf("OK   %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
		}
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("no pending migrations")
		}
		return nil
	}),
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}
		fmt.Printf("OK   %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and their state",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d %-30s %s\n", s.Source.Version, s.Source.Path, applied)
		}
		return nil
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		v, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		fmt.Println(v)
		return nil
	}),
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the command")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, versionCmd)
}

// withProvider loads configuration, opens the database and hands a goose
// provider over the embedded migrations to fn.
func withProvider(fn func(ctx context.Context, p *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		db, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("goose provider: %w", err)
		}
		return fn(ctx, provider)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}
