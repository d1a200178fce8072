package model

import "time"

// Dataset names one of the browsable record collections.
type Dataset string

const (
	DatasetEmployees Dataset = "employees"
	DatasetEvents    Dataset = "events"
	DatasetExpenses  Dataset = "expenses"
)

// Datasets lists all collections in display order.
func Datasets() []Dataset {
	return []Dataset{DatasetEmployees, DatasetEvents, DatasetExpenses}
}

func (d Dataset) Valid() bool {
	switch d {
	case DatasetEmployees, DatasetEvents, DatasetExpenses:
		return true
	}
	return false
}

type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventConfirmed EventStatus = "confirmed"
	EventDone      EventStatus = "done"
	EventCancelled EventStatus = "cancelled"
)

type ExpenseStatus string

const (
	ExpenseSubmitted ExpenseStatus = "submitted"
	ExpenseApproved  ExpenseStatus = "approved"
	ExpenseRejected  ExpenseStatus = "rejected"
	ExpensePaid      ExpenseStatus = "paid"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Email      string    `json:"email"`
	Salary     float64   `json:"salary"`
	StartedAt  time.Time `json:"startedAt"`

	// Phone is optional; unset renders as an empty cell and sorts after
	// every defined value.
	Phone *string `json:"phone,omitempty"`
}

type Event struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Venue    string      `json:"venue"`
	Date     time.Time   `json:"date"`
	Capacity int         `json:"capacity"`
	Booked   int         `json:"booked"`
	Status   EventStatus `json:"status"`
}

type Expense struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`
	Vendor      string        `json:"vendor"`
	Category    string        `json:"category"`
	Amount      float64       `json:"amount"`
	Status      ExpenseStatus `json:"status"`
	SubmittedBy string        `json:"submittedBy"`

	Note *string `json:"note,omitempty"`
}
