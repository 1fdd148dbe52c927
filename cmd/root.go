// Package cmd implements the kakeibo CLI commands.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/config"
	"github.com/theirongolddev/kakeibo/internal/logger"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/store"
)

var (
	flagMonth   string
	flagDB      string
	flagVerbose bool

	appCfg config.Config
	log    *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kakeibo",
	Short: "Personal monthly finance tracker",
	Long:  "Track shift income, expenses, multi-currency deals, and FX-adjusted savings, month by month.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		appCfg, _ = config.Load()
		level := appCfg.Log.Level
		if flagVerbose {
			level = "debug"
		}
		log = logger.New(level)
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month key (2006-01), defaults to the active month")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path override")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// dbPath resolves the database location: flag, then config, then default.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	if appCfg.General.DBPath != "" {
		return appCfg.General.DBPath
	}
	return store.DefaultPath()
}

// openStore opens the database at the resolved path.
func openStore() (*store.Store, error) {
	return store.Open(dbPath())
}

// loadState opens the store and assembles the state for the selected
// month. The caller must close the returned store.
func loadState() (*store.Store, *model.State, error) {
	db, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	st, err := db.LoadState(flagMonth)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, st, nil
}

// saveState persists settings and the active month after a mutation.
// An unsaved mutation is lost when the process exits, so every mutating
// command writes through regardless of the autosave setting.
func saveState(db *store.Store, st *model.State) error {
	return db.SaveState(st)
}
