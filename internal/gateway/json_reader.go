package gateway

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"invoice-manifest/internal/domain"
)

// JSONInvoiceRepository implements the InvoiceRepository interface for JSON and JSON lines files.
type JSONInvoiceRepository struct{}

// NewJSONInvoiceRepository creates a new repository instance.
func NewJSONInvoiceRepository() *JSONInvoiceRepository {
	return &JSONInvoiceRepository{}
}

// GetInvoiceRecords reads and decodes the invoice manifest, a JSON array of records.
func (r *JSONInvoiceRepository) GetInvoiceRecords(ctx context.Context, path string) ([]domain.InvoiceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to open manifest file %s", path), err)
	}

	var records []domain.InvoiceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.ParseError(fmt.Sprintf("could not parse manifest file %s", path), err)
	}
	if records == nil {
		// a literal null decodes without error
		return nil, domain.ParseError(fmt.Sprintf("manifest file %s is not a JSON array", path), nil)
	}
	return records, nil
}

// GetExtractedInvoices reads a JSON lines file of extracted invoices. Blank lines are ignored.
func (r *JSONInvoiceRepository) GetExtractedInvoices(ctx context.Context, path string) ([]domain.ExtractedInvoice, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to open extraction file %s", path), err)
	}
	defer file.Close()

	var invoices []domain.ExtractedInvoice
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var invoice domain.ExtractedInvoice
		if err := json.Unmarshal(raw, &invoice); err != nil {
			return nil, domain.ParseError(fmt.Sprintf("could not parse line %d of %s", line, path), err)
		}
		invoices = append(invoices, invoice)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.IOError(fmt.Sprintf("error reading %s", path), err)
	}
	return invoices, nil
}

// SaveExtractedInvoices writes invoices to path as JSON lines, replacing any existing file.
func (r *JSONInvoiceRepository) SaveExtractedInvoices(ctx context.Context, path string, invoices []domain.ExtractedInvoice) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.IOError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return domain.IOError(fmt.Sprintf("failed to create extraction file %s", path), err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, invoice := range invoices {
		if err := encoder.Encode(invoice); err != nil {
			return domain.IOError(fmt.Sprintf("failed to write invoice %s", invoice.InvoiceID), err)
		}
	}
	if err := writer.Flush(); err != nil {
		return domain.IOError(fmt.Sprintf("failed to flush %s", path), err)
	}
	return file.Close()
}
