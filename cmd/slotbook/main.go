package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/config"
	"github.com/emilianohg/slotbook/internal/db"
	"github.com/emilianohg/slotbook/internal/lifecycle"
	"github.com/emilianohg/slotbook/internal/repository"
	"github.com/emilianohg/slotbook/internal/store"
	"github.com/emilianohg/slotbook/internal/tui"
)

// app bundles what every command needs. It is built per invocation.
type app struct {
	cfg      *config.Config
	database *sql.DB
	kv       *store.SQLite
	repo     *repository.SessionRepo
	svc      *lifecycle.Service
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, err
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Fresh databases are migrated without asking
	status, _ := db.GetMigrationStatus(database)
	if status != nil && status.CurrentVersion == 0 {
		if err := db.RunMigrations(database); err != nil {
			database.Close()
			return nil, fmt.Errorf("running initial migrations: %w", err)
		}
	}

	kv := store.NewSQLite(database)
	repo := repository.NewSessionRepo(kv)
	repo.Warn = func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logError("warning", err)
	}

	return &app{
		cfg:      cfg,
		database: database,
		kv:       kv,
		repo:     repo,
		svc:      lifecycle.NewService(repo),
	}, nil
}

// printLastSaved reports when the session collection was last written.
func (a *app) printLastSaved() error {
	saved, err := a.kv.UpdatedAt(repository.SessionsKey)
	if err != nil {
		return fmt.Errorf("reading last save time: %w", err)
	}
	if saved == nil {
		fmt.Println("Last saved: never")
		return nil
	}
	fmt.Printf("Last saved: %s\n", saved.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *app) Close() {
	a.database.Close()
}

// withApp opens the app for the duration of fn and exits on error.
func withApp(name string, fn func(a *app) error) {
	a, err := openApp()
	if err != nil {
		fail(name, err)
	}
	defer a.Close()

	if err := fn(a); err != nil {
		a.Close()
		fail(name, err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slotbook",
	Short: "Interview slot scheduler",
	Long:  `Slotbook schedules interview slots, tracks each booking through the interview, and shortlists the best rated applicants.`,
	Run: func(cmd *cobra.Command, args []string) {
		withApp("tui", func(a *app) error {
			// Warnings would corrupt the alternate screen
			a.repo.Warn = func(err error) { logError("warning", err) }
			return tui.Run(a.repo, a.svc, a.cfg)
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		withApp("migrate", func(a *app) error {
			if err := db.RunMigrations(a.database); err != nil {
				return err
			}
			status, err := db.GetMigrationStatus(a.database)
			if err != nil {
				return err
			}
			fmt.Printf("Schema version %d of %d\n", status.CurrentVersion, status.LatestVersion)
			return a.printLastSaved()
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(bookCmd, confirmCmd, cancelCmd, startCmd, completeCmd, editCmd, unbookCmd)
	rootCmd.AddCommand(shortlistCmd, exportCmd, linkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fail(name string, err error) {
	logError(name, err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		os.Exit(3)
	case errors.Is(err, apperr.ErrSlotUnavailable), errors.Is(err, apperr.ErrValidation):
		os.Exit(2)
	}
	os.Exit(1)
}

func logError(name string, err error) {
	logPath, pathErr := config.ErrorLogPath()
	if pathErr != nil {
		return
	}

	if err := config.EnsureDirectories(); err != nil {
		return
	}

	f, fileErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s [%s] %v\n", time.Now().Format(time.RFC3339), name, err)
}
