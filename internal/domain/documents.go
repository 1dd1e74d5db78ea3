package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DocumentManifest lists the invoice PDFs available for extraction.
type DocumentManifest struct {
	OutputDir   string   `json:"output_dir"`
	NumExpected int      `json:"num_expected"`
	NumCreated  int      `json:"num_created"`
	PDFFiles    []string `json:"pdf_files"`
	Manifest    string   `json:"manifest"`
}

// CurrencyValue is a typed currency amount as returned by the field-extraction service.
type CurrencyValue struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

// ExtractedField is a single field detected on a document.
type ExtractedField struct {
	Type          string         `json:"type,omitempty"`
	Content       string         `json:"content,omitempty"`
	ValueString   string         `json:"valueString,omitempty"`
	ValueDate     string         `json:"valueDate,omitempty"`
	ValueCurrency *CurrencyValue `json:"valueCurrency,omitempty"`
}

// Text returns the field content, falling back to its string value.
func (f ExtractedField) Text() string {
	if f.Content != "" {
		return f.Content
	}
	return f.ValueString
}

// Date returns the field content, falling back to its date value.
func (f ExtractedField) Date() string {
	if f.Content != "" {
		return f.Content
	}
	return f.ValueDate
}

// ExtractedDocument is one document detected in an analyzed file.
type ExtractedDocument struct {
	DocType string                    `json:"docType,omitempty"`
	Fields  map[string]ExtractedField `json:"fields"`
}

// AnalyzeResult is the structured output of the field-extraction service for one file.
type AnalyzeResult struct {
	ModelID   string              `json:"modelId,omitempty"`
	Documents []ExtractedDocument `json:"documents"`
}

// Field names produced by the prebuilt invoice model.
const (
	ExtractedInvoiceID = "InvoiceId"
	ExtractedVendor    = "VendorName"
	ExtractedDate      = "InvoiceDate"
	ExtractedDueDate   = "DueDate"
	ExtractedTotal     = "InvoiceTotal"
	ExtractedSubTotal  = "SubTotal"
	ExtractedTax       = "TotalTax"
)

// ExtractedInvoice is the flat record pushed to the search index.
type ExtractedInvoice struct {
	InvoiceID   string          `json:"invoice_id"`
	Vendor      string          `json:"vendor"`
	InvoiceDate string          `json:"invoice_date"`
	DueDate     string          `json:"due_date"`
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Shipping    decimal.Decimal `json:"shipping"`
	Total       decimal.Decimal `json:"total"`
	Content     string          `json:"content"`
	SourceFile  string          `json:"source_file"`
}

// Search index field types.
const (
	IndexFieldString = "Edm.String"
	IndexFieldDouble = "Edm.Double"
)

// IndexField describes one field of the search index schema.
type IndexField struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Key        bool   `json:"key" yaml:"key"`
	Filterable bool   `json:"filterable" yaml:"filterable"`
	Sortable   bool   `json:"sortable" yaml:"sortable"`
	Searchable bool   `json:"searchable" yaml:"searchable"`
	Analyzer   string `json:"analyzer,omitempty" yaml:"analyzer,omitempty"`
}

// InvoiceIndexFields returns the schema of the invoice search index.
func InvoiceIndexFields() []IndexField {
	return []IndexField{
		{Name: "invoice_id", Type: IndexFieldString, Key: true, Filterable: true, Sortable: true},
		{Name: "vendor", Type: IndexFieldString, Filterable: true, Searchable: true},
		{Name: "invoice_date", Type: IndexFieldString, Filterable: true, Sortable: true},
		{Name: "due_date", Type: IndexFieldString, Filterable: true, Sortable: true},
		{Name: "currency", Type: IndexFieldString, Filterable: true},
		{Name: "subtotal", Type: IndexFieldDouble},
		{Name: "tax", Type: IndexFieldDouble},
		{Name: "shipping", Type: IndexFieldDouble},
		{Name: "total", Type: IndexFieldDouble, Filterable: true, Sortable: true},
		{Name: "content", Type: IndexFieldString, Searchable: true, Analyzer: "en.microsoft"},
		{Name: "source_file", Type: IndexFieldString},
	}
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a role-tagged message for the chat-completion service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is what would be sent to the chat-completion service.
type ChatRequest struct {
	Filter              string        `json:"filter,omitempty"`
	Messages            []ChatMessage `json:"messages"`
	Temperature         float64       `json:"temperature"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

// DateFilter restricts invoices to an inclusive invoice_date range (YYYY-MM-DD strings).
type DateFilter struct {
	Start string
	End   string
}

// Expression renders the filter in the search service's filter syntax.
func (f DateFilter) Expression() string {
	return fmt.Sprintf("invoice_date ge '%s' and invoice_date le '%s'", f.Start, f.End)
}

// Matches applies the filter to a date string using the same string comparison the index does.
func (f DateFilter) Matches(date string) bool {
	return date >= f.Start && date <= f.End
}
