package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoice-manifest/internal/domain"
)

// DefaultCurrency is assumed when the extracted total carries no currency code.
const DefaultCurrency = "USD"

// ExtractionUseCase turns the PDFs listed in the document manifest into flat invoice documents.
type ExtractionUseCase struct {
	docs     DocumentRepository
	invoices InvoiceRepository
	analyzer DocumentAnalyzer
	modelID  string
	log      zerolog.Logger
}

// NewExtractionUseCase creates a new instance of the usecase.
func NewExtractionUseCase(docs DocumentRepository, invoices InvoiceRepository, analyzer DocumentAnalyzer, modelID string, log zerolog.Logger) *ExtractionUseCase {
	return &ExtractionUseCase{
		docs:     docs,
		invoices: invoices,
		analyzer: analyzer,
		modelID:  modelID,
		log:      log,
	}
}

// Extract analyzes every PDF in the manifest and writes the mapped invoices to outputPath.
// Missing files and failed analyses are logged and skipped.
func (uc *ExtractionUseCase) Extract(ctx context.Context, manifestPath, folder, outputPath string) ([]domain.ExtractedInvoice, error) {
	manifest, err := uc.docs.GetDocumentManifest(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("could not get document manifest: %w", err)
	}
	uc.log.Info().Int("pdf_files", len(manifest.PDFFiles)).Msg("processing invoice PDFs")

	extracted := make([]domain.ExtractedInvoice, 0, len(manifest.PDFFiles))
	for _, pdfFile := range manifest.PDFFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := uc.docs.ReadDocument(ctx, filepath.Join(folder, pdfFile))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				uc.log.Warn().Str("file", pdfFile).Msg("document not found, skipping")
			} else {
				uc.log.Error().Err(err).Str("file", pdfFile).Msg("could not read document")
			}
			continue
		}

		result, err := uc.analyzer.AnalyzeDocument(ctx, uc.modelID, pdfFile, content)
		if err != nil {
			uc.log.Error().Err(err).Str("file", pdfFile).Msg("document analysis failed")
			continue
		}

		for _, doc := range result.Documents {
			invoice := MapExtractedDocument(doc, pdfFile)
			extracted = append(extracted, invoice)
			uc.log.Info().
				Str("file", pdfFile).
				Str("invoice_id", invoice.InvoiceID).
				Str("total", invoice.Currency+" "+invoice.Total.StringFixed(2)).
				Msg("invoice extracted")
		}
	}

	if err := uc.invoices.SaveExtractedInvoices(ctx, outputPath, extracted); err != nil {
		return nil, fmt.Errorf("could not save extracted invoices: %w", err)
	}
	uc.log.Info().Int("invoices", len(extracted)).Str("path", outputPath).Msg("extraction saved")

	return extracted, nil
}

// MapExtractedDocument maps the fields of one analyzed document onto a flat invoice.
func MapExtractedDocument(doc domain.ExtractedDocument, sourceFile string) domain.ExtractedInvoice {
	invoice := domain.ExtractedInvoice{
		Currency:   DefaultCurrency,
		Subtotal:   decimal.Zero,
		Tax:        decimal.Zero,
		Shipping:   decimal.Zero,
		Total:      decimal.Zero,
		SourceFile: sourceFile,
	}
	if len(doc.Fields) == 0 {
		return invoice
	}

	if f, ok := doc.Fields[domain.ExtractedInvoiceID]; ok {
		invoice.InvoiceID = f.Text()
	}
	if f, ok := doc.Fields[domain.ExtractedVendor]; ok {
		invoice.Vendor = f.Text()
	}
	if f, ok := doc.Fields[domain.ExtractedDate]; ok {
		invoice.InvoiceDate = f.Date()
	}
	if f, ok := doc.Fields[domain.ExtractedDueDate]; ok {
		invoice.DueDate = f.Date()
	}

	if f, ok := doc.Fields[domain.ExtractedTotal]; ok && f.ValueCurrency != nil {
		invoice.Currency = f.ValueCurrency.CurrencyCode
		if invoice.Currency == "" {
			invoice.Currency = DefaultCurrency
		}
		invoice.Total = f.ValueCurrency.Amount
	}
	if f, ok := doc.Fields[domain.ExtractedSubTotal]; ok && f.ValueCurrency != nil {
		invoice.Subtotal = f.ValueCurrency.Amount
	}
	if f, ok := doc.Fields[domain.ExtractedTax]; ok && f.ValueCurrency != nil {
		invoice.Tax = f.ValueCurrency.Amount
	}

	invoice.Content = fmt.Sprintf("Invoice %s from %s dated %s. Total: %s %s",
		invoice.InvoiceID, invoice.Vendor, invoice.InvoiceDate,
		invoice.Currency, invoice.Total.StringFixed(2))

	return invoice
}
