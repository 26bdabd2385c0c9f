package commands

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/config"
	"github.com/balkashynov/blueprint/internal/db"
	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/logging"
	"github.com/balkashynov/blueprint/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags
var (
	configFile string
	dataDir    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "A CLI strength and cardio tracker",
	Long: `blueprint tracks a rotating strength / cardio / rest week from the terminal.
Check off exercises, log weights and reps, log cardio minutes against weekly
aerobic targets, and keep your history in a local SQLite database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// session is everything a command needs, opened once per invocation
type session struct {
	cfg     *config.Config
	log     zerolog.Logger
	tracker *tracker.Tracker
	closers []io.Closer
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
}

// openSession loads config, sets up logging, opens the database and loads
// the tracker state
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logger, logCloser := logging.New(logging.Params{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Verbose: verbose,
	})
	s := &session{cfg: cfg, log: logger, closers: []io.Closer{logCloser}}

	store, err := db.Open(cfg.DataDir)
	if err != nil {
		s.Close()
		return nil, errors.Wrap(err, "failed to open database")
	}
	s.closers = append(s.closers, store)

	s.tracker = tracker.New(store, tracker.Options{
		Logger: logger,
		Targets: tracker.Targets{
			Zone2Minutes:    cfg.Targets.Zone2Minutes,
			VigorousMinutes: cfg.Targets.VigorousMinutes,
		},
		Retry: tracker.RetryPolicy{
			Attempts: cfg.Storage.RetryAttempts,
			Delay:    cfg.Storage.RetryDelay,
		},
	})
	if err := s.tracker.Load(ctx); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "failed to load state")
	}

	logger.Debug().Str("data_dir", cfg.DataDir).Str("command", "load").Msg("session opened")
	return s, nil
}

// withTracker wraps a command function to open the database and tracker first
func withTracker(fn func(*cobra.Command, []string, *tracker.Tracker) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(cmd, args, s.tracker)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// ExitCode maps an error to the process exit code: 2 for input the user
// can fix, 1 for everything else
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errors.ErrValidation),
		errors.Is(err, errors.ErrImport),
		errors.Is(err, errors.ErrUnknownExercise),
		errors.Is(err, errors.ErrConfirmationRequired),
		errors.Is(err, errors.ErrInvalidConfig):
		return 2
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.blueprint/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding blueprint.db")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(unsubCmd)
	rootCmd.AddCommand(cardioCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(customizeCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
