package export

import (
	"strings"
	"testing"

	"crewdesk/internal/grid"
)

type lineItem struct {
	id     string
	vendor string
	amount float64
}

func lineItemTable(opts grid.Options) *grid.Table[lineItem] {
	return grid.New(grid.Config[lineItem]{
		Columns: []grid.Column[lineItem]{
			{Key: "id", Title: "ID", Sortable: true},
			{Key: "vendor", Title: "Vendor", Sortable: true},
			{Key: "amount", Title: "Amount", Sortable: true},
		},
		Fields: map[string]func(lineItem) any{
			"id":     func(r lineItem) any { return r.id },
			"vendor": func(r lineItem) any { return r.vendor },
			"amount": func(r lineItem) any { return r.amount },
		},
		KeyOf: func(r lineItem, _ int) grid.RowKey { return grid.RowKey(r.id) },
		Rows: []lineItem{
			{id: "x2", vendor: "CityPrint", amount: 318},
			{id: "x1", vendor: "Nordic Catering", amount: 2140.5},
			{id: "x3", vendor: "Rail Nord", amount: 96.2},
		},
		Options: opts,
	})
}

func TestCSVWritesTitlesAndSortedRows(t *testing.T) {
	tab := lineItemTable(grid.Options{Sort: true})
	tab.CycleSort("amount")

	var buf strings.Builder
	if err := CSV(&buf, tab, 0); err != nil {
		t.Fatalf("csv: %v", err)
	}

	want := "ID,Vendor,Amount\n" +
		"x3,Rail Nord,96.2\n" +
		"x2,CityPrint,318\n" +
		"x1,Nordic Catering,2140.5\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected csv output:\n got=%q\nwant=%q", got, want)
	}
}

func TestCSVCoversAllPages(t *testing.T) {
	tab := lineItemTable(grid.Options{Paginate: true, PageSize: 1})

	var buf strings.Builder
	if err := CSV(&buf, tab, 0); err != nil {
		t.Fatalf("csv: %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Fatalf("expected title + 3 rows, got %d lines", got)
	}
}

func TestCSVHonorsDelimiter(t *testing.T) {
	tab := lineItemTable(grid.Options{})

	var buf strings.Builder
	if err := CSV(&buf, tab, ';'); err != nil {
		t.Fatalf("csv: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "ID;Vendor;Amount\n") {
		t.Fatalf("expected semicolon delimiter, got=%q", buf.String())
	}
}

func TestCSVRespectsActiveFilter(t *testing.T) {
	tab := lineItemTable(grid.Options{Search: true})
	tab.SetSearch("nordic")

	var buf strings.Builder
	if err := CSV(&buf, tab, 0); err != nil {
		t.Fatalf("csv: %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "CityPrint") || !strings.Contains(got, "Nordic Catering") {
		t.Fatalf("expected filtered export, got=%q", got)
	}
}

func TestJSONArrayOfObjects(t *testing.T) {
	tab := lineItemTable(grid.Options{Sort: true})
	tab.CycleSort("id")

	var buf strings.Builder
	if err := JSON(&buf, tab, false); err != nil {
		t.Fatalf("json: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, `[{"amount":2140.5,"id":"x1","vendor":"Nordic Catering"}`) {
		t.Fatalf("unexpected json head: %q", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), "]") {
		t.Fatalf("expected closed array, got=%q", got)
	}
}

func TestJSONPretty(t *testing.T) {
	tab := lineItemTable(grid.Options{})

	var buf strings.Builder
	if err := JSON(&buf, tab, true); err != nil {
		t.Fatalf("json: %v", err)
	}

	if !strings.Contains(buf.String(), "\n  {") {
		t.Fatalf("expected indented output, got=%q", buf.String())
	}
}
