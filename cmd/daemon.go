package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/daemon"
)

var (
	flagDaemonAddr     string
	flagDaemonInterval time.Duration
	flagDaemonFXSpec   string
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Background service: totals API and scheduled FX refresh",
	RunE:  runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&flagDaemonAddr, "addr", "", "Listen address (default 127.0.0.1:8790)")
	daemonCmd.Flags().DurationVar(&flagDaemonInterval, "interval", 0, "Store poll interval (default 30s)")
	daemonCmd.Flags().StringVar(&flagDaemonFXSpec, "fx-cron", "", "Cron spec for FX refresh (default \"0 6 * * *\")")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := daemon.New(daemon.Config{
		DBPath:    dbPath(),
		FXBaseURL: appCfg.FX.BaseURL,
		Addr:      flagDaemonAddr,
		Interval:  flagDaemonInterval,
		FXSpec:    flagDaemonFXSpec,
	}, log)

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
