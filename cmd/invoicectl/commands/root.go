package commands

import (
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoice-manifest/internal/config"
	"invoice-manifest/internal/logger"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "invoicectl",
	Short: "Invoice pipeline tooling - manifest validation, extraction mapping and prompt building",
	Long: `invoicectl validates the invoice manifest (required fields, duplicate ids,
arithmetic and sequence completeness), builds the document manifest from the
invoices folder, maps saved field-extraction results onto searchable invoice
documents and assembles chat prompts over them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if noColor {
			loaded.Report.NoColor = true
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		if loaded.Report.NoColor {
			color.NoColor = true
		}

		cfg = loaded
		log = logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()).
			With().
			Str("run_id", uuid.NewString()).
			Str("command", cmd.Name()).
			Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
