package docs

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// EncodeCSV serializes tabular rows with the fixed two-column schema
// (name, text), one row per rendered command in traversal order.
func EncodeCSV(rows []TabularRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "text"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Name, row.Text}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
