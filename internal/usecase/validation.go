package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoice-manifest/internal/domain"
)

// totalTolerance is the largest accepted gap between computed and recorded totals.
var totalTolerance = decimal.New(1, -2)

// ValidationUseCase loads an invoice manifest and validates it.
type ValidationUseCase struct {
	repo     InvoiceRepository
	sequence domain.SequenceRange
	log      zerolog.Logger
}

// NewValidationUseCase creates a new instance of the usecase.
func NewValidationUseCase(repo InvoiceRepository, sequence domain.SequenceRange, log zerolog.Logger) *ValidationUseCase {
	return &ValidationUseCase{repo: repo, sequence: sequence, log: log}
}

// ValidateManifest reads the manifest at path and returns its validation report.
// Only a failure to load the manifest is returned as an error.
func (uc *ValidationUseCase) ValidateManifest(ctx context.Context, path string) (*domain.ValidationReport, error) {
	records, err := uc.repo.GetInvoiceRecords(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get invoice records: %w", err)
	}
	uc.log.Debug().Str("path", path).Int("records", len(records)).Msg("manifest loaded")

	report := Validate(records, uc.sequence)

	uc.log.Info().
		Int("total_records", report.TotalRecords).
		Int("missing_fields", len(report.MissingFields)).
		Int("duplicate_ids", len(report.DuplicateIDs)).
		Int("math_errors", len(report.MathErrors)).
		Int("sequence_gaps", len(report.SequenceGaps)).
		Int("invalid_fields", len(report.InvalidFields)).
		Bool("passed", report.Passed).
		Msg("manifest validated")

	return report, nil
}

// Validate runs every consistency check over records and aggregates the results.
// It never fails: absent fields fall back to their defaults and are reported as diagnostics.
func Validate(records []domain.InvoiceRecord, sequence domain.SequenceRange) *domain.ValidationReport {
	report := &domain.ValidationReport{
		TotalRecords:  len(records),
		MissingFields: make([]domain.MissingField, 0),
		DuplicateIDs:  make([]domain.DuplicateID, 0),
		MathErrors:    make([]domain.MathError, 0),
		SequenceGaps:  make([]string, 0),
		InvalidFields: make([]domain.InvalidField, 0),
		Currencies:    make(map[string]int),
		Vendors:       make(map[string]int),
	}

	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		for _, field := range record.MissingFields() {
			report.MissingFields = append(report.MissingFields, domain.MissingField{Index: i, Field: field})
		}
		for _, anomaly := range record.Anomalies {
			report.InvalidFields = append(report.InvalidFields, domain.InvalidField{Index: i, Field: anomaly.Field, Value: anomaly.Value})
		}

		// A repeated empty id is reported like any other.
		id := record.ID()
		if _, ok := seen[id]; ok {
			report.DuplicateIDs = append(report.DuplicateIDs, domain.DuplicateID{Index: i, InvoiceID: id})
		} else {
			seen[id] = struct{}{}
		}

		if mathErr, ok := checkTotal(record); !ok {
			report.MathErrors = append(report.MathErrors, mathErr)
		}

		report.Currencies[record.CurrencyLabel()]++
		report.Vendors[record.VendorLabel()]++
	}

	report.SequenceGaps = append(report.SequenceGaps, findSequenceGaps(seen, sequence)...)
	report.Passed = !report.HasIssues()

	return report
}

// checkTotal verifies subtotal + tax + shipping against the recorded total, both rounded to cents.
func checkTotal(record domain.InvoiceRecord) (domain.MathError, bool) {
	subtotal := record.SubtotalAmount()
	tax := record.TaxAmount()
	shipping := record.ShippingAmount()

	calculated := subtotal.Add(tax).Add(shipping).Round(2)
	recorded := record.TotalAmount().Round(2)

	if calculated.Sub(recorded).Abs().LessThanOrEqual(totalTolerance) {
		return domain.MathError{}, true
	}
	return domain.MathError{
		InvoiceID:     record.ID(),
		ExpectedTotal: calculated,
		RecordedTotal: recorded,
		Subtotal:      subtotal,
		Tax:           tax,
		Shipping:      shipping,
	}, false
}

// findSequenceGaps returns the expected ids not present among actual, in sequence order.
func findSequenceGaps(actual map[string]struct{}, sequence domain.SequenceRange) []string {
	var gaps []string
	for _, id := range sequence.ExpectedIDs() {
		if _, ok := actual[id]; !ok {
			gaps = append(gaps, id)
		}
	}
	return gaps
}
