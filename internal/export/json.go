package export

import (
	"encoding/json"
	"fmt"
	"io"

	"crewdesk/internal/grid"
)

// JSON writes the table's filtered, sorted rows as an array of objects
// keyed by column key, for scripted consumers.
//
// NOTE: Output is strict JSON only; no trailing commentary. Anything a
// pipeline needs beyond the rows belongs in a separate command.
func JSON[T any](w io.Writer, t *grid.Table[T], pretty bool) error {
	cols := t.Columns()
	rows := t.FilteredSorted()

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]any, len(cols))
		for i := range cols {
			obj[cols[i].Key] = t.CellValue(row, cols[i].Key)
		}
		out = append(out, obj)
	}

	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(out, "", "  ")
	} else {
		b, err = json.Marshal(out)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
