package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MissingField records a required field absent from the record at Index.
type MissingField struct {
	Index int    `json:"index" yaml:"index"`
	Field string `json:"field" yaml:"field"`
}

func (m MissingField) String() string {
	return fmt.Sprintf("Record %d: missing field %s", m.Index, m.Field)
}

// DuplicateID records a repeat occurrence of an invoice id.
type DuplicateID struct {
	Index     int    `json:"index" yaml:"index"`
	InvoiceID string `json:"invoice_id" yaml:"invoice_id"`
}

func (d DuplicateID) String() string {
	return fmt.Sprintf("Duplicate invoice_id: %s", d.InvoiceID)
}

// InvalidField records a manifest value of the wrong JSON type. Text fields keep the
// literal, other fields fall back to their default. It does not affect the verdict.
type InvalidField struct {
	Index int    `json:"index" yaml:"index"`
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

func (f InvalidField) String() string {
	if f.Field == RecordAnomalyField {
		return fmt.Sprintf("Record %d: not an object: %s", f.Index, f.Value)
	}
	return fmt.Sprintf("Record %d: invalid value for field %s: %s", f.Index, f.Field, f.Value)
}

// MathError records a record whose components do not add up to its total.
type MathError struct {
	InvoiceID     string          `json:"invoice_id" yaml:"invoice_id"`
	ExpectedTotal decimal.Decimal `json:"expected_total" yaml:"expected_total"`
	RecordedTotal decimal.Decimal `json:"recorded_total" yaml:"recorded_total"`
	Subtotal      decimal.Decimal `json:"subtotal" yaml:"subtotal"`
	Tax           decimal.Decimal `json:"tax" yaml:"tax"`
	Shipping      decimal.Decimal `json:"shipping" yaml:"shipping"`
}

func (m MathError) String() string {
	return fmt.Sprintf("%s: Expected %s, got %s (subtotal:%s + tax:%s + shipping:%s)",
		m.InvoiceID,
		m.ExpectedTotal.StringFixed(2), m.RecordedTotal.StringFixed(2),
		m.Subtotal.StringFixed(2), m.Tax.StringFixed(2), m.Shipping.StringFixed(2))
}

// ValidationReport is the result of a single manifest validation pass.
// Diagnostic lists are complete; truncation is a presentation concern.
type ValidationReport struct {
	TotalRecords  int            `json:"total_records" yaml:"total_records"`
	MissingFields []MissingField `json:"missing_fields" yaml:"missing_fields"`
	DuplicateIDs  []DuplicateID  `json:"duplicate_ids" yaml:"duplicate_ids"`
	MathErrors    []MathError    `json:"math_errors" yaml:"math_errors"`
	SequenceGaps  []string       `json:"sequence_gaps" yaml:"sequence_gaps"`
	InvalidFields []InvalidField `json:"invalid_fields" yaml:"invalid_fields"`
	Currencies    map[string]int `json:"currencies" yaml:"currencies"`
	Vendors       map[string]int `json:"vendors" yaml:"vendors"`
	Passed        bool           `json:"passed" yaml:"passed"`
}

// HasIssues reports whether any verdict-bearing category is non-empty.
// InvalidFields is not one of them.
func (r *ValidationReport) HasIssues() bool {
	return len(r.MissingFields) > 0 ||
		len(r.DuplicateIDs) > 0 ||
		len(r.MathErrors) > 0 ||
		len(r.SequenceGaps) > 0
}

// SequenceGapMessage formats a sequence gap the way it is shown to users.
func SequenceGapMessage(id string) string {
	return fmt.Sprintf("Missing invoice: %s", id)
}
