package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"invoice-manifest/internal/domain"
)

const (
	// maxContextInvoices caps how many search results are handed to the model.
	maxContextInvoices = 20
	// maxContentChars caps the content excerpt per invoice in the context.
	maxContentChars = 300

	chatTemperature         = 0.3
	chatMaxCompletionTokens = 2000

	noInvoicesContext = "No relevant invoices found in the database."
)

const systemPrompt = `You are an invoice assistant. Answer questions about invoices based on the provided context.

Guidelines:
- Always cite the invoice ID when referencing specific invoices
- If the answer isn't in the context, say you don't have that information
- Be concise and accurate for specific questions
- Format numbers and dates clearly
- When asked to "show" or "list" invoices, display ALL invoices from the context, not just a few examples`

var monthYearPattern = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})`)

var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// PromptUseCase assembles the chat-completion request for a question about invoices.
type PromptUseCase struct {
	invoices InvoiceRepository
	log      zerolog.Logger
}

// NewPromptUseCase creates a new instance of the usecase.
func NewPromptUseCase(invoices InvoiceRepository, log zerolog.Logger) *PromptUseCase {
	return &PromptUseCase{invoices: invoices, log: log}
}

// BuildPrompt selects the invoices relevant to question from the extraction file and
// returns the request that would be sent to the chat service. history is the prior
// conversation; the system message is only added when it is empty.
func (uc *PromptUseCase) BuildPrompt(ctx context.Context, question, extractionPath string, history []domain.ChatMessage) (*domain.ChatRequest, error) {
	invoices, err := uc.invoices.GetExtractedInvoices(ctx, extractionPath)
	if err != nil {
		return nil, fmt.Errorf("could not get extracted invoices: %w", err)
	}

	request := &domain.ChatRequest{
		Temperature:         chatTemperature,
		MaxCompletionTokens: chatMaxCompletionTokens,
	}

	filter := DetectDateFilter(question)
	if filter != nil {
		request.Filter = filter.Expression()
		invoices = FilterInvoices(invoices, *filter)
		uc.log.Debug().Str("filter", request.Filter).Msg("applying date filter")
	}

	if len(invoices) > maxContextInvoices {
		uc.log.Debug().Int("found", len(invoices)).Int("used", maxContextInvoices).Msg("truncating context")
		invoices = invoices[:maxContextInvoices]
	}
	uc.log.Info().Int("invoices", len(invoices)).Msg("relevant invoices selected")

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, history...)
	if len(messages) == 0 {
		messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: buildUserMessage(question, BuildChatContext(invoices)),
	})
	request.Messages = messages

	return request, nil
}

// DetectDateFilter looks for "<Month> <Year>" in question and returns the matching
// invoice_date range, or nil. The range always ends on day 31.
func DetectDateFilter(question string) *domain.DateFilter {
	match := monthYearPattern.FindStringSubmatch(question)
	if match == nil {
		return nil
	}
	month, ok := monthNumbers[strings.ToLower(match[1])]
	if !ok {
		return nil
	}
	year := match[2]
	return &domain.DateFilter{
		Start: fmt.Sprintf("%s-%s-01", year, month),
		End:   fmt.Sprintf("%s-%s-31", year, month),
	}
}

// FilterInvoices keeps the invoices whose invoice_date falls within filter.
func FilterInvoices(invoices []domain.ExtractedInvoice, filter domain.DateFilter) []domain.ExtractedInvoice {
	var kept []domain.ExtractedInvoice
	for _, invoice := range invoices {
		if filter.Matches(invoice.InvoiceDate) {
			kept = append(kept, invoice)
		}
	}
	return kept
}

// BuildChatContext renders invoices as the context block of the user message.
func BuildChatContext(invoices []domain.ExtractedInvoice) string {
	if len(invoices) == 0 {
		return noInvoicesContext
	}

	parts := make([]string, 0, len(invoices))
	for i, invoice := range invoices {
		content := invoice.Content
		if runes := []rune(content); len(runes) > maxContentChars {
			content = string(runes[:maxContentChars])
		}
		part := fmt.Sprintf("Invoice %d:\n- ID: %s\n- Vendor: %s\n- Date: %s\n- Due Date: %s\n- Total: %s %s\n- Content: %s",
			i+1,
			orNA(invoice.InvoiceID), orNA(invoice.Vendor),
			orNA(invoice.InvoiceDate), orNA(invoice.DueDate),
			invoice.Currency, invoice.Total.StringFixed(2),
			content)
		parts = append(parts, strings.TrimSpace(part))
	}
	return strings.Join(parts, "\n\n")
}

func buildUserMessage(question, invoiceContext string) string {
	return fmt.Sprintf("Context from invoice database:\n%s\n\nUser question: %s\n\nPlease answer the question based on the invoice information provided above.",
		invoiceContext, question)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
