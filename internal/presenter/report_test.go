package presenter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"invoice-manifest/internal/domain"
)

func init() {
	color.NoColor = true
}

func sampleReport() *domain.ValidationReport {
	return &domain.ValidationReport{
		TotalRecords:  3,
		MissingFields: []domain.MissingField{{Index: 2, Field: domain.FieldVendor}},
		DuplicateIDs:  []domain.DuplicateID{},
		MathErrors: []domain.MathError{{
			InvoiceID:     "INV-2025-0003",
			ExpectedTotal: decimal.RequireFromString("120.75"),
			RecordedTotal: decimal.RequireFromString("125"),
			Subtotal:      decimal.RequireFromString("100"),
			Tax:           decimal.RequireFromString("8.25"),
			Shipping:      decimal.RequireFromString("12.5"),
		}},
		SequenceGaps: []string{},
		Currencies:   map[string]int{"USD": 2, "EUR": 1},
		Vendors:      map[string]int{"Contoso Ltd": 2, domain.UnknownLabel: 1},
		Passed:       false,
	}
}

func TestReportWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportWriter("console", 10).Write(&buf, sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Total records: 3\n"))
	assert.Contains(t, out, "=== CONSISTENCY CHECK RESULTS ===")
	assert.Contains(t, out, "Missing fields: 1\n  - Record 2: missing field vendor\n")
	assert.Contains(t, out, "Duplicate IDs: 0\n")
	assert.Contains(t, out, "Math errors (subtotal+tax+shipping != total): 1\n"+
		"  - INV-2025-0003: Expected 120.75, got 125.00 (subtotal:100.00 + tax:8.25 + shipping:12.50)\n")
	assert.Contains(t, out, "Sequence gaps: 0\n")
	assert.Contains(t, out, "Currencies: {EUR: 1, USD: 2}\n")
	assert.Contains(t, out, "Vendors: {Contoso Ltd: 2, Unknown: 1}\n")
	assert.True(t, strings.HasSuffix(out, "✗ Issues found - see details above\n"))
}

func TestReportWriter_Console_Passed(t *testing.T) {
	report := &domain.ValidationReport{
		TotalRecords:  1,
		MissingFields: []domain.MissingField{},
		DuplicateIDs:  []domain.DuplicateID{},
		MathErrors:    []domain.MathError{},
		SequenceGaps:  []string{},
		Currencies:    map[string]int{"USD": 1},
		Vendors:       map[string]int{"Contoso Ltd": 1},
		Passed:        true,
	}

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter("", 10).Write(&buf, report))
	assert.True(t, strings.HasSuffix(buf.String(), "✓ All consistency checks PASSED!\n"))
}

func TestReportWriter_Console_Truncation(t *testing.T) {
	gaps := make([]string, 0, 15)
	for i := 1; i <= 15; i++ {
		gaps = append(gaps, fmt.Sprintf("INV-2025-%04d", i))
	}
	report := &domain.ValidationReport{SequenceGaps: gaps}

	tests := []struct {
		name      string
		limit     int
		wantShown int
		wantMore  string
	}{
		{name: "default limit", limit: 10, wantShown: 10, wantMore: "  ... and 5 more\n"},
		{name: "limit above count", limit: 20, wantShown: 15},
		{name: "no limit", limit: 0, wantShown: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewReportWriter("console", tt.limit).Write(&buf, report))
			out := buf.String()

			assert.Contains(t, out, "Sequence gaps: 15\n")
			assert.Equal(t, tt.wantShown, strings.Count(out, "  - Missing invoice: "))
			if tt.wantMore != "" {
				assert.Contains(t, out, tt.wantMore)
			} else {
				assert.NotContains(t, out, "... and")
			}
		})
	}
}

func TestReportWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportWriter("json", 10).Write(&buf, sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 3, got["total_records"])
	assert.Equal(t, false, got["passed"])
	assert.Len(t, got["missing_fields"], 1)
	assert.Len(t, got["duplicate_ids"], 0)
	assert.Len(t, got["math_errors"], 1)
}

func TestReportWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportWriter("yaml", 10).Write(&buf, sampleReport()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got["total_records"])
	assert.Equal(t, false, got["passed"])
	assert.Contains(t, buf.String(), "currencies:")
}

func TestReportWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportWriter("xml", 10).Write(&buf, sampleReport())
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestReportWriter_Console_InvalidValues(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter("console", 10).Write(&buf, report))
	assert.NotContains(t, buf.String(), "Invalid values")

	report.InvalidFields = []domain.InvalidField{
		{Index: 4, Field: domain.FieldVendor, Value: "42"},
		{Index: 5, Field: domain.RecordAnomalyField, Value: "null"},
	}
	buf.Reset()
	require.NoError(t, NewReportWriter("console", 10).Write(&buf, report))
	assert.Contains(t, buf.String(), "Invalid values: 2\n"+
		"  - Record 4: invalid value for field vendor: 42\n"+
		"  - Record 5: not an object: null\n")
}
