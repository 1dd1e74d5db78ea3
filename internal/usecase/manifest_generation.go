package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"invoice-manifest/internal/domain"
)

// ErrNoDocuments is returned when the invoices folder holds no PDF files.
var ErrNoDocuments = errors.New("no PDF files found in the invoices folder")

// ManifestGenerationUseCase builds the document manifest from the invoices folder.
type ManifestGenerationUseCase struct {
	docs DocumentRepository
	log  zerolog.Logger
}

// NewManifestGenerationUseCase creates a new instance of the usecase.
func NewManifestGenerationUseCase(docs DocumentRepository, log zerolog.Logger) *ManifestGenerationUseCase {
	return &ManifestGenerationUseCase{docs: docs, log: log}
}

// Generate scans folder for PDFs and saves the resulting manifest at manifestPath.
func (uc *ManifestGenerationUseCase) Generate(ctx context.Context, folder, manifestPath string) (*domain.DocumentManifest, error) {
	pdfFiles, err := uc.docs.ListInvoiceDocuments(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("could not list invoice documents: %w", err)
	}
	if len(pdfFiles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, folder)
	}
	uc.log.Info().Str("folder", folder).Int("pdf_files", len(pdfFiles)).Msg("invoice documents found")

	manifest := domain.DocumentManifest{
		OutputDir:   filepath.Base(folder),
		NumExpected: len(pdfFiles),
		NumCreated:  len(pdfFiles),
		PDFFiles:    pdfFiles,
		Manifest:    filepath.Base(manifestPath),
	}

	if err := uc.docs.SaveDocumentManifest(ctx, manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("could not save document manifest: %w", err)
	}
	uc.log.Info().Str("path", manifestPath).Msg("document manifest saved")

	return &manifest, nil
}
