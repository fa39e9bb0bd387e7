package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagestreak/pagestreak/internal/config"
	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/notify"
	"github.com/pagestreak/pagestreak/internal/progress"
	"github.com/pagestreak/pagestreak/internal/reminder"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// App-wide wiring, built once per invocation by openApp
var (
	cfg    *config.Config
	logger *zap.Logger
	store  *db.Store
	agg    *progress.Aggregator
	sched  *reminder.Scheduler
)

var rootCmd = &cobra.Command{
	Use:   "pagestreak",
	Short: "A CLI reading tracker",
	Long: `pagestreak tracks your personal library, reading sessions and streaks.
Log minutes and pages, watch weekly stats, and get a desktop nudge on days
that are about to slip.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lifecycleExempt(cmd) {
			return
		}
		openApp()
		// Each invocation counts as an app open: the anchor for reminder
		// timing moves, and any pending reminder is now stale.
		if err := sched.AppOpened(); err != nil {
			logger.Warn("failed to record app open", zap.Error(err))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lifecycleExempt(cmd) || store == nil {
			return
		}
		if err := sched.AppClosed(); err != nil {
			logger.Warn("failed to record app close", zap.Error(err))
		}
		store.Close()
	},
}

// lifecycleExempt marks commands that must not count as the user opening
// the app. The remind command in particular would otherwise cancel the
// very reminder it is about to fire.
func lifecycleExempt(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "remind", "help", "version", "completion":
		return true
	}
	return false
}

// openApp initializes config, database and services, panicking on failure
func openApp() {
	if store != nil {
		return
	}

	cfg = config.Load()
	logger = cfg.Logger()

	s, err := db.Open(cfg.DBPath, logger)
	if err != nil {
		panic(err) // Nothing works without the database
	}

	store = s
	agg = progress.NewAggregator(store, nil)
	sched = reminder.NewScheduler(store, agg, notify.NewDesktop(), nil, logger)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pagestreak %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(shelveCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
