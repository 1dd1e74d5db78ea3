package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RecordAnomalyField names the anomaly raised when a manifest entry is not a JSON object.
const RecordAnomalyField = "record"

// FieldAnomaly is a manifest value that could not be used as given.
type FieldAnomaly struct {
	Field string
	Value string // the raw JSON text
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes a manifest entry leniently. Key presence is recorded as is, null
// values leave the field unset, and values of the wrong type are replaced by the field's
// default and listed in Anomalies. It only fails on input that is not valid JSON, which
// the enclosing decoder has already rejected.
func (r *InvoiceRecord) UnmarshalJSON(data []byte) error {
	*r = InvoiceRecord{present: make(map[string]struct{})}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		// null, arrays and scalars: every field is missing
		r.Anomalies = append(r.Anomalies, FieldAnomaly{Field: RecordAnomalyField, Value: compact(data)})
		return nil
	}
	for key := range raw {
		r.present[key] = struct{}{}
	}

	r.InvoiceID = r.decodeText(raw, FieldInvoiceID)
	r.Vendor = r.decodeText(raw, FieldVendor)
	r.Currency = r.decodeText(raw, FieldCurrency)
	r.InvoiceDate = r.decodeText(raw, FieldInvoiceDate)
	r.DueDate = r.decodeText(raw, FieldDueDate)
	r.Terms = r.decodeText(raw, FieldTerms)
	r.Subtotal = r.decodeAmount(raw, FieldSubtotal)
	r.Tax = r.decodeAmount(raw, FieldTax)
	r.Shipping = r.decodeAmount(raw, FieldShipping)
	r.Total = r.decodeAmount(raw, FieldTotal)
	r.FilePath = r.decodeText(raw, FieldFilePath)
	return nil
}

// decodeText accepts a JSON string. Other scalars keep their literal text and are
// reported; objects and arrays are dropped.
func (r *InvoiceRecord) decodeText(raw map[string]json.RawMessage, field string) *string {
	value, ok := raw[field]
	if !ok || isNull(value) {
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return &s
	}

	text := compact(value)
	r.Anomalies = append(r.Anomalies, FieldAnomaly{Field: field, Value: text})
	if text == "" || text[0] == '{' || text[0] == '[' {
		return nil
	}
	return &text
}

// decodeAmount accepts a JSON number. A numeric string is used but reported;
// anything else falls back to zero.
func (r *InvoiceRecord) decodeAmount(raw map[string]json.RawMessage, field string) *decimal.Decimal {
	value, ok := raw[field]
	if !ok || isNull(value) {
		return nil
	}
	trimmed := bytes.TrimSpace(value)

	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		r.Anomalies = append(r.Anomalies, FieldAnomaly{Field: field, Value: compact(value)})
		return nil
	}
	if trimmed[0] == '"' {
		r.Anomalies = append(r.Anomalies, FieldAnomaly{Field: field, Value: compact(value)})
	}
	return &d
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), jsonNull)
}

func compact(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(bytes.TrimSpace(data))
	}
	return buf.String()
}
