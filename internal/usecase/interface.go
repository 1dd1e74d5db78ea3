package usecase

import (
	"context"

	"invoice-manifest/internal/domain"
)

// InvoiceRepository defines the interface for reading and writing invoice data files.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type InvoiceRepository interface {
	GetInvoiceRecords(ctx context.Context, path string) ([]domain.InvoiceRecord, error)
	GetExtractedInvoices(ctx context.Context, path string) ([]domain.ExtractedInvoice, error)
	SaveExtractedInvoices(ctx context.Context, path string, invoices []domain.ExtractedInvoice) error
}

// DocumentRepository gives access to the invoice PDFs and their document manifest.
type DocumentRepository interface {
	ListInvoiceDocuments(ctx context.Context, folder string) ([]string, error)
	GetDocumentManifest(ctx context.Context, path string) (*domain.DocumentManifest, error)
	SaveDocumentManifest(ctx context.Context, path string, manifest domain.DocumentManifest) error
	ReadDocument(ctx context.Context, path string) ([]byte, error)
}

// DocumentAnalyzer is the document field-extraction service.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, modelID, name string, content []byte) (*domain.AnalyzeResult, error)
}
