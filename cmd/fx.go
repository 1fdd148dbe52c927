package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
)

var fxCmd = &cobra.Command{
	Use:   "fx",
	Short: "Exchange rate snapshots",
	RunE:  runFXShow,
}

var fxShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored snapshot",
	RunE:  runFXShow,
}

var flagFXForce bool

var fxRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch today's rates and store them",
	RunE:  runFXRefresh,
}

func init() {
	fxRefreshCmd.Flags().BoolVarP(&flagFXForce, "force", "f", false, "Fetch even if today's snapshot is already stored")
	fxCmd.AddCommand(fxShowCmd, fxRefreshCmd)
	rootCmd.AddCommand(fxCmd)
}

func runFXShow(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	snap, ok, err := db.LatestFX()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(cli.Muted("  No rates stored yet. Run `kakeibo fx refresh`."))
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("1 %s equals (%s)", model.Reference, snap.Date),
		Headers: []string{"Currency", "Rate"},
		Rows: [][]string{
			{string(model.BRL), cli.FormatRate(snap.BRL)},
			{string(model.USD), cli.FormatRate(snap.USD)},
		},
	}))
	fmt.Println(cli.Muted(fmt.Sprintf("  fetched %s", snap.FetchedAt.Format("2006-01-02 15:04"))))
	return nil
}

func runFXRefresh(cmd *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	today := model.TodayISO()
	if !flagFXForce {
		if snap, ok, err := db.LoadFX(today); err == nil && ok {
			fmt.Println(cli.Muted(fmt.Sprintf("  Snapshot for %s already stored (BRL %s, USD %s). Use --force to refetch.",
				snap.Date, cli.FormatRate(snap.BRL), cli.FormatRate(snap.USD))))
			return nil
		}
	}

	client := fx.NewClient(appCfg.FX.BaseURL, log)
	snap, err := client.FetchLatest(cmd.Context())
	if err != nil {
		return fmt.Errorf("refreshing rates: %w", err)
	}
	if err := db.SaveFX(snap); err != nil {
		return err
	}

	fmt.Printf("  Stored snapshot for %s: 1 %s = %s %s, %s %s\n",
		snap.Date, model.Reference,
		cli.FormatRate(snap.BRL), model.BRL,
		cli.FormatRate(snap.USD), model.USD)
	return nil
}
