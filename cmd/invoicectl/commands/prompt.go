package commands

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"invoice-manifest/internal/domain"
	"invoice-manifest/internal/gateway"
	"invoice-manifest/internal/usecase"
)

var promptHistory string

var promptCmd = &cobra.Command{
	Use:   "prompt QUESTION...",
	Short: "Print the chat request that would answer a question about the extracted invoices",
	Long: `Prompt selects the extracted invoices relevant to the question and prints the chat
request that would be sent for it. --history continues a conversation saved as a JSON
array of {"role","content"} messages; the system message is only added to a new one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		var history []domain.ChatMessage
		if promptHistory != "" {
			loaded, err := gateway.NewJSONChatHistoryRepository().GetChatHistory(cmd.Context(), promptHistory)
			if err != nil {
				return err
			}
			history = loaded
		}

		uc := usecase.NewPromptUseCase(gateway.NewJSONInvoiceRepository(), log)
		request, err := uc.BuildPrompt(cmd.Context(), question, cfg.Paths.ExtractionFile, history)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(request)
	},
}

func init() {
	promptCmd.Flags().StringVar(&promptHistory, "history", "", "JSON file with the conversation so far")
	rootCmd.AddCommand(promptCmd)
}
