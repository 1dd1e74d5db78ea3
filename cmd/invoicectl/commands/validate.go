package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"invoice-manifest/internal/gateway"
	"invoice-manifest/internal/presenter"
	"invoice-manifest/internal/usecase"
)

// ErrValidationFailed is returned when the manifest fails at least one consistency check.
// The report has already been written when it is returned.
var ErrValidationFailed = errors.New("manifest validation failed")

var (
	validateManifest string
	validateFormat   string
	validateLimit    int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the invoice manifest for consistency",
	Long: `Validate reads the invoice manifest (a JSON array of invoice records) and reports
missing fields, duplicate invoice ids, totals that do not add up and gaps in the
invoice id sequence. It exits with status 1 when any issue is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Paths.ManifestFile
		if cmd.Flags().Changed("manifest") {
			path = validateManifest
		}
		format := cfg.Report.Format
		if cmd.Flags().Changed("format") {
			format = validateFormat
		}
		limit := cfg.Report.DisplayLimit
		if cmd.Flags().Changed("limit") {
			if validateLimit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", validateLimit)
			}
			limit = validateLimit
		}

		uc := usecase.NewValidationUseCase(gateway.NewJSONInvoiceRepository(), cfg.Sequence, log)
		report, err := uc.ValidateManifest(cmd.Context(), path)
		if err != nil {
			return err
		}

		if err := presenter.NewReportWriter(format, limit).Write(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.Passed {
			return ErrValidationFailed
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateManifest, "manifest", "m", "", "manifest file (overrides MANIFEST_FILE)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "console", "output format: console, json or yaml")
	validateCmd.Flags().IntVar(&validateLimit, "limit", 10, "diagnostics listed per category in console output (0 = all)")
	rootCmd.AddCommand(validateCmd)
}
