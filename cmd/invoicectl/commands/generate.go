package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoice-manifest/internal/gateway"
	"invoice-manifest/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate-manifest",
	Short: "Build the document manifest from the PDFs in the invoices folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := usecase.NewManifestGenerationUseCase(gateway.NewFileDocumentRepository(log), log)
		manifest, err := uc.Generate(cmd.Context(), cfg.Paths.InvoicesFolder, cfg.Paths.DocumentManifestFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Manifest summary:")
		fmt.Fprintf(out, "  - Total PDFs: %d\n", manifest.NumCreated)
		fmt.Fprintf(out, "  - Output directory: %s\n", manifest.OutputDir)
		fmt.Fprintf(out, "  - Manifest file: %s\n", cfg.Paths.DocumentManifestFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
