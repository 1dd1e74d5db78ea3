package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoice-manifest/internal/domain"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the invoice search index schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tTYPE\tATTRIBUTES")
		for _, f := range domain.InvoiceIndexFields() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Type, strings.Join(fieldAttributes(f), ", "))
		}
		return w.Flush()
	},
}

func fieldAttributes(f domain.IndexField) []string {
	var attrs []string
	if f.Key {
		attrs = append(attrs, "Key")
	}
	if f.Searchable {
		attrs = append(attrs, "Searchable")
	}
	if f.Filterable {
		attrs = append(attrs, "Filterable")
	}
	if f.Sortable {
		attrs = append(attrs, "Sortable")
	}
	if f.Analyzer != "" {
		attrs = append(attrs, "Analyzer="+f.Analyzer)
	}
	return attrs
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
