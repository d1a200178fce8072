package store

import (
	"context"
	"fmt"
	"time"

	"crewdesk/internal/model"
)

// Seeded reports whether any dataset already has rows.
func (d *DB) Seeded(ctx context.Context) (bool, error) {
	var n int
	err := d.sql.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM employees) + (SELECT COUNT(*) FROM events) + (SELECT COUNT(*) FROM expenses)`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count rows: %w", err)
	}
	return n > 0, nil
}

// Seed fills the workspace with the demo dataset. With force, existing
// rows are dropped first; otherwise a non-empty workspace is left alone.
func (d *DB) Seed(ctx context.Context, force bool) (bool, error) {
	seeded, err := d.Seeded(ctx)
	if err != nil {
		return false, err
	}
	if seeded && !force {
		return false, nil
	}

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	defer tx.Rollback()

	if force {
		for _, table := range []string{"employees", "events", "expenses"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return false, fmt.Errorf("clear %s: %w", table, err)
			}
		}
	}

	for _, e := range demoEmployees() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO employees (id, name, role, department, email, salary, started_at, phone)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Role, e.Department, e.Email, e.Salary, encodeTime(e.StartedAt), nullStr(e.Phone)); err != nil {
			return false, fmt.Errorf("seed employee %s: %w", e.ID, err)
		}
	}
	for _, e := range demoEvents() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, name, venue, date, capacity, booked, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Venue, encodeTime(e.Date), e.Capacity, e.Booked, string(e.Status)); err != nil {
			return false, fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}
	for _, e := range demoExpenses() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, date, vendor, category, amount, status, submitted_by, note)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, encodeTime(e.Date), e.Vendor, e.Category, e.Amount, string(e.Status), e.SubmittedBy, nullStr(e.Note)); err != nil {
			return false, fmt.Errorf("seed expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(s string) *string { return &s }

func demoEmployees() []model.Employee {
	return []model.Employee{
		{ID: "emp-001", Name: "Maya Lindholm", Role: "Office Manager", Department: "Operations", Email: "maya@crewdesk.test", Salary: 58000, StartedAt: day(2019, 3, 11), Phone: ptr("+46 70 112 2334")},
		{ID: "emp-002", Name: "Jonas Weber", Role: "Accountant", Department: "Finance", Email: "jonas@crewdesk.test", Salary: 61500, StartedAt: day(2020, 9, 1)},
		{ID: "emp-003", Name: "Priya Nair", Role: "Recruiter", Department: "HR", Email: "priya@crewdesk.test", Salary: 54000, StartedAt: day(2021, 1, 18), Phone: ptr("+44 7700 900123")},
		{ID: "emp-004", Name: "Tomás Herrera", Role: "Events Lead", Department: "Events", Email: "tomas@crewdesk.test", Salary: 59000, StartedAt: day(2018, 6, 4)},
		{ID: "emp-005", Name: "Alice Fontaine", Role: "HR Generalist", Department: "HR", Email: "alice@crewdesk.test", Salary: 51000, StartedAt: day(2022, 4, 25), Phone: ptr("+33 6 12 34 56 78")},
		{ID: "emp-006", Name: "Daniel Okafor", Role: "Facilities", Department: "Operations", Email: "daniel@crewdesk.test", Salary: 47000, StartedAt: day(2023, 2, 13)},
		{ID: "emp-007", Name: "Hana Sato", Role: "Controller", Department: "Finance", Email: "hana@crewdesk.test", Salary: 72000, StartedAt: day(2017, 11, 6), Phone: ptr("+81 90 1234 5678")},
		{ID: "emp-008", Name: "Viktor Balog", Role: "Event Coordinator", Department: "Events", Email: "viktor@crewdesk.test", Salary: 45500, StartedAt: day(2024, 8, 19)},
	}
}

func demoEvents() []model.Event {
	return []model.Event{
		{ID: "evt-001", Name: "Quarterly All-Hands", Venue: "Main Hall", Date: day(2026, 9, 12), Capacity: 220, Booked: 180, Status: model.EventConfirmed},
		{ID: "evt-002", Name: "Client Summit", Venue: "Harbor Conference Center", Date: day(2026, 10, 2), Capacity: 350, Booked: 290, Status: model.EventPlanned},
		{ID: "evt-003", Name: "Onboarding Week", Venue: "Training Room B", Date: day(2026, 9, 1), Capacity: 40, Booked: 36, Status: model.EventConfirmed},
		{ID: "evt-004", Name: "Summer Party", Venue: "Rooftop Terrace", Date: day(2026, 6, 26), Capacity: 150, Booked: 150, Status: model.EventDone},
		{ID: "evt-005", Name: "Budget Workshop", Venue: "Room 204", Date: day(2026, 11, 9), Capacity: 25, Booked: 11, Status: model.EventPlanned},
		{ID: "evt-006", Name: "Vendor Fair", Venue: "Expo Floor", Date: day(2026, 10, 20), Capacity: 500, Booked: 120, Status: model.EventCancelled},
	}
}

func demoExpenses() []model.Expense {
	return []model.Expense{
		{ID: "exp-001", Date: day(2026, 8, 3), Vendor: "Nordic Catering", Category: "Catering", Amount: 2140.50, Status: model.ExpenseApproved, SubmittedBy: "emp-004", Note: ptr("client summit tasting")},
		{ID: "exp-002", Date: day(2026, 8, 7), Vendor: "CityPrint", Category: "Office", Amount: 318.00, Status: model.ExpensePaid, SubmittedBy: "emp-001"},
		{ID: "exp-003", Date: day(2026, 8, 11), Vendor: "Rail Nord", Category: "Travel", Amount: 96.20, Status: model.ExpenseSubmitted, SubmittedBy: "emp-003"},
		{ID: "exp-004", Date: day(2026, 8, 12), Vendor: "AV Partners", Category: "Equipment", Amount: 4480.00, Status: model.ExpenseSubmitted, SubmittedBy: "emp-008", Note: ptr("stage audio rental")},
		{ID: "exp-005", Date: day(2026, 8, 15), Vendor: "Hotel Meridian", Category: "Travel", Amount: 642.75, Status: model.ExpenseRejected, SubmittedBy: "emp-002", Note: ptr("missing receipt")},
		{ID: "exp-006", Date: day(2026, 8, 18), Vendor: "GreenClean", Category: "Facilities", Amount: 289.90, Status: model.ExpenseApproved, SubmittedBy: "emp-006"},
		{ID: "exp-007", Date: day(2026, 8, 21), Vendor: "Nordic Catering", Category: "Catering", Amount: 1120.00, Status: model.ExpenseSubmitted, SubmittedBy: "emp-004"},
	}
}
