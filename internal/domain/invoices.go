package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names of a manifest record, as they appear in the JSON input.
const (
	FieldInvoiceID   = "invoice_id"
	FieldVendor      = "vendor"
	FieldCurrency    = "currency"
	FieldInvoiceDate = "invoice_date"
	FieldDueDate     = "due_date"
	FieldTerms       = "terms"
	FieldSubtotal    = "subtotal"
	FieldTax         = "tax"
	FieldShipping    = "shipping"
	FieldTotal       = "total"
	FieldFilePath    = "file_path"
)

// RequiredFields lists every field a manifest record must carry, in reporting order.
var RequiredFields = []string{
	FieldInvoiceID, FieldVendor, FieldCurrency, FieldInvoiceDate,
	FieldDueDate, FieldTerms, FieldSubtotal, FieldTax, FieldShipping,
	FieldTotal, FieldFilePath,
}

// UnknownLabel is used in statistics for records without a vendor or currency.
const UnknownLabel = "Unknown"

// InvoiceRecord represents one entry of the invoice manifest.
// A nil field holds no usable value (absent, null or mistyped); whether the key was
// present at all is tracked separately when the record is decoded from JSON.
type InvoiceRecord struct {
	InvoiceID   *string          `json:"invoice_id,omitempty"`
	Vendor      *string          `json:"vendor,omitempty"`
	Currency    *string          `json:"currency,omitempty"` // ISO 4217, e.g. "USD"
	InvoiceDate *string          `json:"invoice_date,omitempty"`
	DueDate     *string          `json:"due_date,omitempty"`
	Terms       *string          `json:"terms,omitempty"` // e.g. "Net 30"
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	Shipping    *decimal.Decimal `json:"shipping,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	FilePath    *string          `json:"file_path,omitempty"` // not checked for existence

	// Anomalies lists values that had the wrong JSON type and were replaced by a default.
	Anomalies []FieldAnomaly `json:"-"`

	// present holds the keys of the decoded JSON object, null values included.
	// It is nil for records built in code, where a non-nil field means present.
	present map[string]struct{}
}

// MissingFields returns the required fields absent from the record, in RequiredFields order.
func (r InvoiceRecord) MissingFields() []string {
	var missing []string
	for _, field := range RequiredFields {
		if !r.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Has reports whether the named field is present on the record.
// A key present with a null value counts as present.
func (r InvoiceRecord) Has(field string) bool {
	if r.present != nil {
		_, ok := r.present[field]
		return ok
	}
	return r.hasValue(field)
}

func (r InvoiceRecord) hasValue(field string) bool {
	switch field {
	case FieldInvoiceID:
		return r.InvoiceID != nil
	case FieldVendor:
		return r.Vendor != nil
	case FieldCurrency:
		return r.Currency != nil
	case FieldInvoiceDate:
		return r.InvoiceDate != nil
	case FieldDueDate:
		return r.DueDate != nil
	case FieldTerms:
		return r.Terms != nil
	case FieldSubtotal:
		return r.Subtotal != nil
	case FieldTax:
		return r.Tax != nil
	case FieldShipping:
		return r.Shipping != nil
	case FieldTotal:
		return r.Total != nil
	case FieldFilePath:
		return r.FilePath != nil
	default:
		return false
	}
}

// The accessors below coalesce absent, null and mistyped fields with a typed default:
// text fields fall back to "", amounts to 0.

// ID returns the invoice id, or "" when absent.
func (r InvoiceRecord) ID() string { return stringOr(r.InvoiceID, "") }

// SubtotalAmount returns the subtotal, or 0 when absent.
func (r InvoiceRecord) SubtotalAmount() decimal.Decimal { return amountOr(r.Subtotal) }

// TaxAmount returns the tax, or 0 when absent.
func (r InvoiceRecord) TaxAmount() decimal.Decimal { return amountOr(r.Tax) }

// ShippingAmount returns the shipping cost, or 0 when absent.
func (r InvoiceRecord) ShippingAmount() decimal.Decimal { return amountOr(r.Shipping) }

// TotalAmount returns the recorded total, or 0 when absent.
func (r InvoiceRecord) TotalAmount() decimal.Decimal { return amountOr(r.Total) }

// VendorLabel returns the vendor for statistics, "Unknown" when absent.
func (r InvoiceRecord) VendorLabel() string { return stringOr(r.Vendor, UnknownLabel) }

// CurrencyLabel returns the currency for statistics, "Unknown" when absent.
func (r InvoiceRecord) CurrencyLabel() string { return stringOr(r.Currency, UnknownLabel) }

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func amountOr(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// SequenceRange describes the canonical invoice id sequence, e.g. INV-2025-0001..INV-2025-0120.
type SequenceRange struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Width  int    `json:"width" yaml:"width"` // zero-padding of the sequence number
}

// DefaultSequenceRange returns INV-2025-0001 through INV-2025-0120.
func DefaultSequenceRange() SequenceRange {
	return SequenceRange{Prefix: "INV-2025", Start: 1, End: 120, Width: 4}
}

// Empty reports whether the range holds no ids.
func (s SequenceRange) Empty() bool {
	return s.Start > s.End
}

// FormatID builds the id for sequence number n.
func (s SequenceRange) FormatID(n int) string {
	width := s.Width
	if width <= 0 {
		width = 4
	}
	return fmt.Sprintf("%s-%0*d", s.Prefix, width, n)
}

// ExpectedIDs returns every id in the range, in sequence order.
func (s SequenceRange) ExpectedIDs() []string {
	if s.Empty() {
		return nil
	}
	ids := make([]string, 0, s.End-s.Start+1)
	for n := s.Start; n <= s.End; n++ {
		ids = append(ids, s.FormatID(n))
	}
	return ids
}
