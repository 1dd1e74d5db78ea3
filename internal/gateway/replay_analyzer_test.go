package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-manifest/internal/domain"
)

const envelopeResult = `{
  "status": "succeeded",
  "analyzeResult": {
    "modelId": "prebuilt-invoice",
    "documents": [{
      "docType": "invoice",
      "fields": {
        "InvoiceId": {"type": "string", "content": "INV-2025-0001"},
        "VendorName": {"type": "string", "valueString": "Contoso Ltd"},
        "InvoiceTotal": {"type": "currency", "valueCurrency": {"amount": 120.75, "currencyCode": "USD"}}
      }
    }]
  }
}`

func TestReplayAnalyzer_AnalyzeDocument(t *testing.T) {
	tests := []struct {
		name    string
		saved   string
		modelID string
		wantErr domain.ErrorType
		check   func(t *testing.T, got *domain.AnalyzeResult)
	}{
		{
			name:    "service envelope",
			saved:   envelopeResult,
			modelID: "prebuilt-invoice",
			check: func(t *testing.T, got *domain.AnalyzeResult) {
				require.Len(t, got.Documents, 1)
				fields := got.Documents[0].Fields
				assert.Equal(t, "INV-2025-0001", fields[domain.ExtractedInvoiceID].Text())
				assert.Equal(t, "Contoso Ltd", fields[domain.ExtractedVendor].Text())
				require.NotNil(t, fields[domain.ExtractedTotal].ValueCurrency)
				assert.True(t, decimal.RequireFromString("120.75").Equal(fields[domain.ExtractedTotal].ValueCurrency.Amount))
			},
		},
		{
			name:  "bare result",
			saved: `{"documents": [{"fields": {"InvoiceId": {"content": "INV-2025-0002"}}}]}`,
			check: func(t *testing.T, got *domain.AnalyzeResult) {
				require.Len(t, got.Documents, 1)
				assert.Equal(t, "INV-2025-0002", got.Documents[0].Fields[domain.ExtractedInvoiceID].Text())
			},
		},
		{
			name:    "failed analysis",
			saved:   `{"status": "failed", "analyzeResult": {"documents": []}}`,
			wantErr: domain.ErrorTypeExtraction,
		},
		{
			name:    "different model",
			saved:   envelopeResult,
			modelID: "prebuilt-receipt",
			wantErr: domain.ErrorTypeExtraction,
		},
		{
			name:    "malformed result",
			saved:   `{"documents": [`,
			wantErr: domain.ErrorTypeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_INV-2025-0001.json"), []byte(tt.saved), 0o644))

			analyzer := NewReplayAnalyzer(dir)
			got, err := analyzer.AnalyzeDocument(context.Background(), tt.modelID, "invoice_INV-2025-0001.pdf", []byte("%PDF"))

			if tt.wantErr != "" {
				assert.Nil(t, got)
				assertErrorType(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestReplayAnalyzer_AnalyzeDocument_NoSavedResult(t *testing.T) {
	analyzer := NewReplayAnalyzer(t.TempDir())

	got, err := analyzer.AnalyzeDocument(context.Background(), "prebuilt-invoice", "invoice_INV-2025-0009.pdf", nil)

	assert.Nil(t, got)
	assertErrorType(t, err, domain.ErrorTypeExtraction)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
