package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"crewdesk/internal/export"
	"crewdesk/internal/grid"
	"crewdesk/internal/model"
	"crewdesk/internal/tables"

	"github.com/spf13/cobra"
)

type exportSpec struct {
	query  string
	sort   string
	desc   bool
	format string
	pretty bool
}

func newExportCmd(app *App) *cobra.Command {
	var (
		spec    exportSpec
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export <dataset>",
		Short: "Write a filtered, sorted dataset as CSV, TSV, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := model.Dataset(strings.ToLower(args[0]))
			if !ds.Valid() {
				return fmt.Errorf("unknown dataset %q (expected one of: employees, events, expenses)", args[0])
			}

			ctx := cmd.Context()
			_, db, err := openDB(ctx, app)
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch ds {
			case model.DatasetEmployees:
				rows, err := db.Employees(ctx)
				if err != nil {
					return err
				}
				return exportRows(out, rows, tables.EmployeeColumns(), tables.EmployeeFields(), tables.EmployeeKey, spec)
			case model.DatasetEvents:
				rows, err := db.Events(ctx)
				if err != nil {
					return err
				}
				return exportRows(out, rows, tables.EventColumns(), tables.EventFields(), tables.EventKey, spec)
			default:
				rows, err := db.Expenses(ctx)
				if err != nil {
					return err
				}
				return exportRows(out, rows, tables.ExpenseColumns(), tables.ExpenseFields(), tables.ExpenseKey, spec)
			}
		},
	}

	cmd.Flags().StringVarP(&spec.query, "query", "q", "", "Keep only rows where some cell contains this text (case-insensitive)")
	cmd.Flags().StringVar(&spec.sort, "sort", "", "Column key to sort by")
	cmd.Flags().BoolVar(&spec.desc, "desc", false, "Sort descending (with --sort)")
	cmd.Flags().StringVar(&spec.format, "format", "csv", "Output format (csv|tsv|json)")
	cmd.Flags().BoolVar(&spec.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

// exportRows runs one dataset through a headless table. Export sorting
// is unrestricted, so the table-wide sortable override is on here even
// though the interactive screens keep a few columns pinned.
func exportRows[T any](w io.Writer, rows []T, cols []grid.Column[T], fields map[string]func(T) any, key func(T, int) grid.RowKey, spec exportSpec) error {
	tbl := grid.New(grid.Config[T]{
		Columns: cols,
		Fields:  fields,
		KeyOf:   key,
		Rows:    rows,
		Options: grid.Options{Search: true, Sort: true, SortAll: true},
	})

	if spec.query != "" {
		tbl.SetSearch(spec.query)
	}
	if spec.sort != "" {
		if !hasColumn(cols, spec.sort) {
			return fmt.Errorf("unknown sort column %q for this dataset", spec.sort)
		}
		tbl.CycleSort(spec.sort)
		if spec.desc {
			tbl.CycleSort(spec.sort)
		}
	}

	switch spec.format {
	case "csv":
		return export.CSV(w, tbl, 0)
	case "tsv":
		return export.CSV(w, tbl, '\t')
	case "json":
		return export.JSON(w, tbl, spec.pretty)
	}
	return fmt.Errorf("unknown format %q (expected csv, tsv, or json)", spec.format)
}

func hasColumn[T any](cols []grid.Column[T], key string) bool {
	for _, c := range cols {
		if c.Key == key {
			return true
		}
	}
	return false
}
