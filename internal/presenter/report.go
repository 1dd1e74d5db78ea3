// Package presenter renders validation reports for people and for machines.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"invoice-manifest/internal/domain"
)

// ReportWriter writes a ValidationReport in one output format.
type ReportWriter struct {
	format string
	limit  int
}

// NewReportWriter creates a writer for format ("console", "json" or "yaml").
// limit caps the diagnostics listed per category in console output; 0 lists all.
func NewReportWriter(format string, limit int) *ReportWriter {
	return &ReportWriter{format: format, limit: limit}
}

// Write renders report to w.
func (p *ReportWriter) Write(w io.Writer, report *domain.ValidationReport) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "console", "":
		return p.writeConsole(w, report)
	default:
		return fmt.Errorf("unknown report format: %s", p.format)
	}
}

func (p *ReportWriter) writeConsole(w io.Writer, report *domain.ValidationReport) error {
	var sb strings.Builder
	heading := color.New(color.FgCyan, color.Bold)

	fmt.Fprintf(&sb, "Total records: %d\n\n", report.TotalRecords)

	sb.WriteString(heading.Sprint("=== CONSISTENCY CHECK RESULTS ===") + "\n\n")
	p.writeSection(&sb, "Missing fields", stringify(report.MissingFields))
	p.writeSection(&sb, "Duplicate IDs", stringify(report.DuplicateIDs))
	p.writeSection(&sb, "Math errors (subtotal+tax+shipping != total)", stringify(report.MathErrors))

	gaps := make([]string, len(report.SequenceGaps))
	for i, id := range report.SequenceGaps {
		gaps[i] = domain.SequenceGapMessage(id)
	}
	p.writeSection(&sb, "Sequence gaps", gaps)
	if len(report.InvalidFields) > 0 {
		p.writeSection(&sb, "Invalid values", stringify(report.InvalidFields))
	}

	sb.WriteString(heading.Sprint("=== STATISTICS ===") + "\n")
	fmt.Fprintf(&sb, "Currencies: %s\n", formatCounts(report.Currencies))
	fmt.Fprintf(&sb, "Vendors: %s\n\n", formatCounts(report.Vendors))

	if report.Passed {
		sb.WriteString(color.New(color.FgGreen, color.Bold).Sprint("✓ All consistency checks PASSED!") + "\n")
	} else {
		sb.WriteString(color.New(color.FgRed, color.Bold).Sprint("✗ Issues found - see details above") + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (p *ReportWriter) writeSection(sb *strings.Builder, title string, entries []string) {
	count := fmt.Sprintf("%d", len(entries))
	if len(entries) > 0 {
		count = color.YellowString(count)
	}
	fmt.Fprintf(sb, "%s: %s\n", title, count)

	shown := entries
	if p.limit > 0 && len(entries) > p.limit {
		shown = entries[:p.limit]
	}
	for _, entry := range shown {
		fmt.Fprintf(sb, "  - %s\n", entry)
	}
	if rest := len(entries) - len(shown); rest > 0 {
		fmt.Fprintf(sb, "  ... and %d more\n", rest)
	}
	sb.WriteString("\n")
}

// formatCounts renders a frequency map with keys in sorted order.
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, counts[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func stringify[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}
