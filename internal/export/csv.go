// Package export serializes a table's current filtered, sorted rows.
// It is a pure consumer of the grid engine's query surface: the engine
// guarantees the snapshot, this package owns the output format.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"crewdesk/internal/grid"
)

// CSV writes the table's filtered, sorted rows as delimited text with a
// leading title row. Pagination is ignored: exports always cover the
// whole filtered set. A zero delim falls back to a comma.
func CSV[T any](w io.Writer, t *grid.Table[T], delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}

	cols := t.Columns()
	titles := make([]string, len(cols))
	for i := range cols {
		titles[i] = cols[i].Title
	}
	if err := cw.Write(titles); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(cols))
	for _, row := range t.FilteredSorted() {
		for i := range cols {
			record[i] = t.CellString(row, cols[i].Key)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
