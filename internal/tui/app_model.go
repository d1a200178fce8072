package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"crewdesk/internal/model"
	"crewdesk/internal/store"
	"crewdesk/internal/tables"
)

// Screen rows above the grid body: the breadcrumb line, the context line
// (search box, edit box, or flash), and the frozen header strip. Mouse
// hit-testing in handleMouse depends on these offsets.
const (
	gridHeaderY = 2
	gridBodyTop = 3
)

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int
	// The very first WindowSizeMsg is initial sizing, not a user resize;
	// without this flag the resize overlay would cover the first frame.
	seenWindowSize bool

	view view
	mode inputMode

	dataset   model.Dataset
	employees *gridScreen[model.Employee]
	events    *gridScreen[model.Event]
	expenses  *gridScreen[model.Expense]

	pickerList list.Model

	// One shared input serves both the search box and the cell editor;
	// mode decides which one it is at the moment.
	input textinput.Model

	flashText string
	flashErr  bool
	flashSeq  int

	resizing  bool
	resizeSeq int

	detailMD string
}

type datasetItem struct {
	ds    model.Dataset
	count int
	blurb string
}

func (i datasetItem) FilterValue() string { return string(i.ds) }
func (i datasetItem) Title() string       { return fmt.Sprintf("%s (%d)", i.ds, i.count) }
func (i datasetItem) Description() string { return i.blurb }

func newAppModel(st store.Store, db *store.DB, initial model.Dataset) (appModel, error) {
	ctx := context.Background()

	employees, err := db.Employees(ctx)
	if err != nil {
		return appModel{}, fmt.Errorf("load employees: %w", err)
	}
	events, err := db.Events(ctx)
	if err != nil {
		return appModel{}, fmt.Errorf("load events: %w", err)
	}
	expenses, err := db.Expenses(ctx)
	if err != nil {
		return appModel{}, fmt.Errorf("load expenses: %w", err)
	}

	m := appModel{
		store: st,
		db:    db,
		view:  viewGrid,
		mode:  modeBrowse,
	}

	m.employees = newGridScreen(
		model.DatasetEmployees,
		tables.EmployeeColumns(), tables.EmployeeFields(), tables.EmployeeKey,
		employees,
		db.Employees, db.SaveEmployee, tables.ApplyEmployeeEdit,
		employeeDetail,
	)
	m.events = newGridScreen(
		model.DatasetEvents,
		tables.EventColumns(), tables.EventFields(), tables.EventKey,
		events,
		db.Events, db.SaveEvent, tables.ApplyEventEdit,
		eventDetail,
	)
	m.expenses = newGridScreen(
		model.DatasetExpenses,
		tables.ExpenseColumns(), tables.ExpenseFields(), tables.ExpenseKey,
		expenses,
		db.Expenses, db.SaveExpense, tables.ApplyExpenseEdit,
		expenseDetail,
	)

	m.dataset = resolveInitialDataset(st, initial)

	m.pickerList = newPickerList()
	m.refreshPicker()

	m.input = textinput.New()
	m.input.CharLimit = 200
	m.input.Width = 40

	return m, nil
}

// resolveInitialDataset prefers the explicit CLI argument, then the last
// dataset persisted in the workspace UI state, then employees.
func resolveInitialDataset(st store.Store, initial model.Dataset) model.Dataset {
	if initial.Valid() {
		return initial
	}
	if ui, err := st.LoadUIState(); err == nil {
		if saved := model.Dataset(ui.Dataset); saved.Valid() {
			return saved
		}
	}
	return model.DatasetEmployees
}

func (m appModel) current() screen {
	switch m.dataset {
	case model.DatasetEvents:
		return m.events
	case model.DatasetExpenses:
		return m.expenses
	default:
		return m.employees
	}
}

func newPickerList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Datasets"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func (m *appModel) refreshPicker() {
	items := []list.Item{
		datasetItem{ds: model.DatasetEmployees, count: m.employees.rowTotal(), blurb: "People, roles, and pay"},
		datasetItem{ds: model.DatasetEvents, count: m.events.rowTotal(), blurb: "Bookings and venue capacity"},
		datasetItem{ds: model.DatasetExpenses, count: m.expenses.rowTotal(), blurb: "Receipts moving through approval"},
	}
	m.pickerList.SetItems(items)
	for i, it := range items {
		if it.(datasetItem).ds == m.dataset {
			m.pickerList.Select(i)
		}
	}
}

// switchDataset changes the active grid and remembers the choice in the
// workspace UI state so the next launch lands on the same dataset.
func (m *appModel) switchDataset(ds model.Dataset) {
	if ds == m.dataset || !ds.Valid() {
		return
	}
	m.dataset = ds
	persistDataset(m.store, ds)
}

func (m appModel) nextDataset() model.Dataset {
	all := model.Datasets()
	for i, ds := range all {
		if ds == m.dataset {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func persistDataset(st store.Store, ds model.Dataset) {
	ui, err := st.LoadUIState()
	if err != nil {
		return
	}
	ui.Dataset = string(ds)
	_ = st.SaveUIState(ui)
}
