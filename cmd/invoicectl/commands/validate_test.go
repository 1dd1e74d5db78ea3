package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-manifest/internal/domain"
)

func manifestJSON(n int) string {
	records := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, fmt.Sprintf(`{"invoice_id":"INV-2025-%04d","vendor":"Contoso Ltd","currency":"USD",
			"invoice_date":"2025-01-05","due_date":"2025-02-04","terms":"Net 30",
			"subtotal":100.00,"tax":8.25,"shipping":12.50,"total":120.75,
			"file_path":"invoices/invoice_INV-2025-%04d.pdf"}`, i, i))
	}
	return "[" + strings.Join(records, ",") + "]"
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INVOICE_SEQ_START", "1")
	t.Setenv("INVOICE_SEQ_END", "3")
	t.Setenv("LOG_LEVEL", "disabled")

	complete := filepath.Join(dir, "complete.json")
	require.NoError(t, os.WriteFile(complete, []byte(manifestJSON(3)), 0o644))
	partial := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(partial, []byte(manifestJSON(2)), 0o644))

	t.Run("complete manifest passes", func(t *testing.T) {
		out, err := runRoot(t, "validate", "--no-color", "--manifest", complete, "--format", "console")
		require.NoError(t, err)
		assert.Contains(t, out, "Total records: 3")
		assert.Contains(t, out, "✓ All consistency checks PASSED!")
	})

	t.Run("sequence gap fails", func(t *testing.T) {
		out, err := runRoot(t, "validate", "--no-color", "--manifest", partial, "--format", "console")
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, out, "  - Missing invoice: INV-2025-0003")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runRoot(t, "validate", "--manifest", partial, "--format", "json")
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, out, `"sequence_gaps": [`)
		assert.Contains(t, out, `"passed": false`)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		out, err := runRoot(t, "validate", "--manifest", complete, "--limit", "-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--limit must not be negative")
		assert.NotErrorIs(t, err, ErrValidationFailed)
		assert.Empty(t, out)
	})

	t.Run("null and mistyped values do not fail the manifest", func(t *testing.T) {
		lenient := filepath.Join(dir, "lenient.json")
		data := strings.Replace(manifestJSON(3), `"vendor":"Contoso Ltd"`, `"vendor":null`, 1)
		data = strings.Replace(data, `"vendor":"Contoso Ltd"`, `"vendor":42`, 1)
		require.NoError(t, os.WriteFile(lenient, []byte(data), 0o644))

		out, err := runRoot(t, "validate", "--no-color", "--manifest", lenient)
		require.NoError(t, err)
		assert.Contains(t, out, "Missing fields: 0\n")
		assert.Contains(t, out, "  - Record 1: invalid value for field vendor: 42\n")
		assert.Contains(t, out, "Vendors: {42: 1, Contoso Ltd: 1, Unknown: 1}\n")
		assert.Contains(t, out, "✓ All consistency checks PASSED!")
	})

	t.Run("missing manifest is an input error", func(t *testing.T) {
		_, err := runRoot(t, "validate", "--manifest", filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.True(t, domain.IsInputError(err))
	})
}
