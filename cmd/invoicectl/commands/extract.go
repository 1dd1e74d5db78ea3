package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoice-manifest/internal/gateway"
	"invoice-manifest/internal/usecase"
)

var extractResultsDir string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Map saved field-extraction results onto searchable invoice documents",
	Long: `Extract walks the document manifest, reads each invoice PDF and maps the saved
analyze result of the field-extraction service (<results>/<pdf name>.json) onto a
flat invoice document. The documents are written as JSON lines to the extraction file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Analyze.ResultsDir
		if cmd.Flags().Changed("results") {
			dir = extractResultsDir
		}

		uc := usecase.NewExtractionUseCase(
			gateway.NewFileDocumentRepository(log),
			gateway.NewJSONInvoiceRepository(),
			gateway.NewReplayAnalyzer(dir),
			cfg.Analyze.ModelID,
			log,
		)
		invoices, err := uc.Extract(cmd.Context(), cfg.Paths.DocumentManifestFile, cfg.Paths.InvoicesFolder, cfg.Paths.ExtractionFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, invoice := range invoices {
			fmt.Fprintf(out, "%-15s %-25s %s %s\n", invoice.InvoiceID, invoice.Vendor, invoice.Currency, invoice.Total.StringFixed(2))
		}
		fmt.Fprintf(out, "\nExtracted %d invoices to %s\n", len(invoices), cfg.Paths.ExtractionFile)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractResultsDir, "results", "", "directory of saved analyze results (overrides ANALYZE_RESULTS_DIR)")
	rootCmd.AddCommand(extractCmd)
}
