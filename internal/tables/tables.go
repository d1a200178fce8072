// Package tables binds the business record types to grid columns, field
// maps, and key extractors. The console screens and the export command
// share these bindings so both sides of the app see identical tables.
package tables

import (
	"math"

	"crewdesk/internal/grid"
	"crewdesk/internal/model"
)

func EmployeeKey(e model.Employee, _ int) grid.RowKey { return grid.RowKey(e.ID) }
func EventKey(e model.Event, _ int) grid.RowKey       { return grid.RowKey(e.ID) }
func ExpenseKey(e model.Expense, _ int) grid.RowKey   { return grid.RowKey(e.ID) }

func EmployeeColumns() []grid.Column[model.Employee] {
	return []grid.Column[model.Employee]{
		{Key: "id", Title: "ID", Width: 8, Sortable: true},
		{Key: "name", Title: "Name", Width: 18, Sortable: true, Editable: true},
		{Key: "role", Title: "Role", Width: 18, Sortable: true, Editable: true},
		{Key: "department", Title: "Department", Width: 12, Sortable: true, Editable: true},
		{Key: "email", Title: "Email", Width: 24, Editable: true},
		{Key: "salary", Title: "Salary", Width: 10, Sortable: true, Editable: true, Align: grid.AlignEnd},
		{Key: "started", Title: "Started", Width: 10, Sortable: true},
		{Key: "phone", Title: "Phone", Width: 16, Editable: true},
	}
}

func EmployeeFields() map[string]func(model.Employee) any {
	return map[string]func(model.Employee) any{
		"id":         func(e model.Employee) any { return e.ID },
		"name":       func(e model.Employee) any { return e.Name },
		"role":       func(e model.Employee) any { return e.Role },
		"department": func(e model.Employee) any { return e.Department },
		"email":      func(e model.Employee) any { return e.Email },
		"salary":     func(e model.Employee) any { return e.Salary },
		"started":    func(e model.Employee) any { return e.StartedAt },
		"phone": func(e model.Employee) any {
			if e.Phone == nil {
				return nil
			}
			return *e.Phone
		},
	}
}

func EventColumns() []grid.Column[model.Event] {
	return []grid.Column[model.Event]{
		{Key: "id", Title: "ID", Width: 8, Sortable: true},
		{Key: "name", Title: "Event", Width: 22, Sortable: true, Editable: true},
		{Key: "venue", Title: "Venue", Width: 20, Sortable: true, Editable: true},
		{Key: "date", Title: "Date", Width: 10, Sortable: true},
		{Key: "capacity", Title: "Cap", Width: 6, Sortable: true, Editable: true, Align: grid.AlignEnd},
		{Key: "booked", Title: "Booked", Width: 7, Sortable: true, Editable: true, Align: grid.AlignEnd},
		// fill has no backing field; the extractor derives it, so it is
		// sortable but never filtered on.
		{Key: "fill", Title: "Fill%", Width: 6, Sortable: true, Align: grid.AlignEnd, Value: eventFill},
		{Key: "status", Title: "Status", Width: 10, Sortable: true, Editable: true},
	}
}

func eventFill(e model.Event) any {
	if e.Capacity <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(e.Booked) / float64(e.Capacity)))
}

func EventFields() map[string]func(model.Event) any {
	return map[string]func(model.Event) any{
		"id":       func(e model.Event) any { return e.ID },
		"name":     func(e model.Event) any { return e.Name },
		"venue":    func(e model.Event) any { return e.Venue },
		"date":     func(e model.Event) any { return e.Date },
		"capacity": func(e model.Event) any { return e.Capacity },
		"booked":   func(e model.Event) any { return e.Booked },
		"status":   func(e model.Event) any { return string(e.Status) },
	}
}

func ExpenseColumns() []grid.Column[model.Expense] {
	return []grid.Column[model.Expense]{
		{Key: "id", Title: "ID", Width: 8, Sortable: true},
		{Key: "date", Title: "Date", Width: 10, Sortable: true, Editable: true},
		{Key: "vendor", Title: "Vendor", Width: 18, Sortable: true, Editable: true},
		{Key: "category", Title: "Category", Width: 12, Sortable: true, Editable: true},
		{Key: "amount", Title: "Amount", Width: 10, Sortable: true, Editable: true, Align: grid.AlignEnd},
		{Key: "status", Title: "Status", Width: 10, Sortable: true, Editable: true},
		{Key: "submittedBy", Title: "By", Width: 8, Sortable: true},
		{Key: "note", Title: "Note", Width: 18, Editable: true},
	}
}

func ExpenseFields() map[string]func(model.Expense) any {
	return map[string]func(model.Expense) any{
		"id":          func(e model.Expense) any { return e.ID },
		"date":        func(e model.Expense) any { return e.Date },
		"vendor":      func(e model.Expense) any { return e.Vendor },
		"category":    func(e model.Expense) any { return e.Category },
		"amount":      func(e model.Expense) any { return e.Amount },
		"status":      func(e model.Expense) any { return string(e.Status) },
		"submittedBy": func(e model.Expense) any { return e.SubmittedBy },
		"note": func(e model.Expense) any {
			if e.Note == nil {
				return nil
			}
			return *e.Note
		},
	}
}
