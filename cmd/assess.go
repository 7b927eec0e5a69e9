package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siga-angola/envrisk-cli/internal/dashboard"
)

var (
	assessSeed   int64
	assessMonth  int
	assessNotify bool
)

var assessCmd = &cobra.Command{
	Use:   "assess <region>",
	Short: "Score one region across all risk categories",
	Long:  "Builds the full dashboard payload for a province or municipality: per-category assessments, overall risk, advisories and any severe-risk alerts, printed as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("assess"); err != nil {
			return err
		}
		if assessMonth < 0 || assessMonth > 12 {
			return eris.Errorf("assess: month must be 1-12, got %d", assessMonth)
		}

		env, err := initApp(assessSeed, time.Month(assessMonth))
		if err != nil {
			return eris.Wrap(err, "assess")
		}

		loc, err := env.catalog.Lookup(args[0])
		if err != nil {
			return eris.Wrap(err, "assess")
		}

		payload, err := env.builder.Build(cmd.Context(), loc)
		if err != nil {
			return eris.Wrap(err, "assess")
		}

		if assessNotify && len(payload.Alerts) > 0 {
			notifier := dashboard.NewNotifier(cfg.Alerts)
			sent := notifier.Send(cmd.Context(), payload.Alerts)
			zap.L().Info("alerts delivered", zap.Int("sent", sent), zap.Int("total", len(payload.Alerts)))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	},
}

func init() {
	assessCmd.Flags().Int64Var(&assessSeed, "seed", 0, "seed for the simulated provider (default from config, 0 = random)")
	assessCmd.Flags().IntVar(&assessMonth, "month", 0, "pin the seasonal month 1-12 (default: current month)")
	assessCmd.Flags().BoolVar(&assessNotify, "notify", false, "deliver HIGH/CRITICAL alerts to the configured webhook")
	rootCmd.AddCommand(assessCmd)
}
