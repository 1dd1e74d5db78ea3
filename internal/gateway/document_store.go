package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"invoice-manifest/internal/domain"
)

// FileDocumentRepository implements the DocumentRepository interface on the local filesystem.
type FileDocumentRepository struct {
	log zerolog.Logger
}

// NewFileDocumentRepository creates a new repository instance.
func NewFileDocumentRepository(log zerolog.Logger) *FileDocumentRepository {
	return &FileDocumentRepository{log: log}
}

// ListInvoiceDocuments returns the names of the PDF files in folder, sorted alphabetically.
// A missing folder yields an empty list.
func (r *FileDocumentRepository) ListInvoiceDocuments(ctx context.Context, folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Warn().Str("folder", folder).Msg("invoices folder does not exist")
		return []string{}, nil
	}
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to read folder %s", folder), err)
	}

	pdfFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		pdfFiles = append(pdfFiles, entry.Name())
	}
	sort.Strings(pdfFiles)
	return pdfFiles, nil
}

// GetDocumentManifest reads the document manifest at path.
func (r *FileDocumentRepository) GetDocumentManifest(ctx context.Context, path string) (*domain.DocumentManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to open document manifest %s", path), err)
	}
	var manifest domain.DocumentManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, domain.ParseError(fmt.Sprintf("could not parse document manifest %s", path), err)
	}
	return &manifest, nil
}

// SaveDocumentManifest writes manifest to path as indented JSON, creating parent directories.
func (r *FileDocumentRepository) SaveDocumentManifest(ctx context.Context, path string, manifest domain.DocumentManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.IOError(fmt.Sprintf("failed to create directory for %s", path), err)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return domain.IOError(fmt.Sprintf("failed to write document manifest %s", path), err)
	}
	return nil
}

// ReadDocument returns the raw bytes of the document at path.
func (r *FileDocumentRepository) ReadDocument(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to read document %s", path), err)
	}
	return data, nil
}
