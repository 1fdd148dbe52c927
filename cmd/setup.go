package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive profile and shift configuration",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	set := st.Settings
	name := set.Name
	company := set.Company
	rangeText := set.RangeText
	hourValue := fmt.Sprintf("%g", set.HourValue)
	overtime := fmt.Sprintf("%g", set.OvertimeMult)
	aNormal := fmt.Sprintf("%g", set.ANormal)
	aExtra := fmt.Sprintf("%g", set.AExtra)
	bNormal := fmt.Sprintf("%g", set.BNormal)
	bExtra := fmt.Sprintf("%g", set.BExtra)
	dayScale := fmt.Sprintf("%g", set.DayScale)
	autosave := set.Autosave

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&name),
			huh.NewInput().
				Title("Company").
				Value(&company),
			huh.NewInput().
				Title("Pay period label").
				Description("Free text shown on reports, e.g. \"21st to 20th\"").
				Value(&rangeText),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hourly rate (JPY)").
				Value(&hourValue),
			huh.NewInput().
				Title("Overtime multiplier").
				Description("Extra hours pay this times the hourly rate").
				Value(&overtime),
			huh.NewInput().
				Title("Day scale").
				Description("Seasonal adjustment, 0.9 to 1.25").
				Value(&dayScale),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Shift A normal hours").
				Value(&aNormal),
			huh.NewInput().
				Title("Shift A extra hours").
				Value(&aExtra),
			huh.NewInput().
				Title("Shift B normal hours").
				Value(&bNormal),
			huh.NewInput().
				Title("Shift B extra hours").
				Value(&bExtra),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Autosave in the TUI?").
				Value(&autosave),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	set.Name = name
	set.Company = company
	set.RangeText = rangeText
	set.HourValue = model.ParseAmount(hourValue)
	set.OvertimeMult = model.ParseAmount(overtime)
	if set.OvertimeMult == 0 {
		set.OvertimeMult = model.DefaultSettings().OvertimeMult
	}
	set.ANormal = model.ParseAmount(aNormal)
	set.AExtra = model.ParseAmount(aExtra)
	set.BNormal = model.ParseAmount(bNormal)
	set.BExtra = model.ParseAmount(bExtra)
	set.DayScale = model.ClampDayScale(model.ParseAmount(dayScale))
	set.Autosave = autosave

	if err := db.SaveSettings(set, st.Month); err != nil {
		return err
	}
	fmt.Println("  Settings saved.")
	return nil
}
