package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crewdesk/internal/model"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports a save against a row id that does not exist.
var ErrNotFound = errors.New("not found")

// DB is an open workspace database.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if needed) the workspace database and applies the
// schema.
func (s Store) Open(ctx context.Context) (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a script runs beside the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			department TEXT NOT NULL,
			email TEXT NOT NULL,
			salary REAL NOT NULL,
			started_at TEXT NOT NULL,
			phone TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			venue TEXT NOT NULL,
			date TEXT NOT NULL,
			capacity INTEGER NOT NULL,
			booked INTEGER NOT NULL,
			status TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			vendor TEXT NOT NULL,
			category TEXT NOT NULL,
			amount REAL NOT NULL,
			status TEXT NOT NULL,
			submitted_by TEXT NOT NULL,
			note TEXT
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Times are stored as RFC 3339 text so rows stay readable with any
// sqlite tool.
func encodeTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}

func nullStr(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func strNull(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// Employees loads the full employee collection in insertion order.
func (d *DB) Employees(ctx context.Context) ([]model.Employee, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, name, role, department, email, salary, started_at, phone
		 FROM employees ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	defer rows.Close()

	var out []model.Employee
	for rows.Next() {
		var e model.Employee
		var started string
		var phone sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Department, &e.Email, &e.Salary, &started, &phone); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if e.StartedAt, err = decodeTime(started); err != nil {
			return nil, err
		}
		e.Phone = strNull(phone)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Events loads the full event collection in insertion order.
func (d *DB) Events(ctx context.Context) ([]model.Event, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, name, venue, date, capacity, booked, status
		 FROM events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		var date, status string
		if err := rows.Scan(&e.ID, &e.Name, &e.Venue, &date, &e.Capacity, &e.Booked, &status); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if e.Date, err = decodeTime(date); err != nil {
			return nil, err
		}
		e.Status = model.EventStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Expenses loads the full expense collection in insertion order.
func (d *DB) Expenses(ctx context.Context) ([]model.Expense, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, date, vendor, category, amount, status, submitted_by, note
		 FROM expenses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	defer rows.Close()

	var out []model.Expense
	for rows.Next() {
		var e model.Expense
		var date, status string
		var note sql.NullString
		if err := rows.Scan(&e.ID, &date, &e.Vendor, &e.Category, &e.Amount, &status, &e.SubmittedBy, &note); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.Date, err = decodeTime(date); err != nil {
			return nil, err
		}
		e.Status = model.ExpenseStatus(status)
		e.Note = strNull(note)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveEmployee writes every field of an existing employee row. Cell
// commits funnel through here, so a whole-row update keeps the SQL
// trivial.
func (d *DB) SaveEmployee(ctx context.Context, e model.Employee) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE employees SET name=?, role=?, department=?, email=?, salary=?, started_at=?, phone=? WHERE id=?`,
		e.Name, e.Role, e.Department, e.Email, e.Salary, encodeTime(e.StartedAt), nullStr(e.Phone), e.ID)
	if err != nil {
		return fmt.Errorf("save employee %s: %w", e.ID, err)
	}
	return requireHit(res, "employee", e.ID)
}

// SaveEvent writes every field of an existing event row.
func (d *DB) SaveEvent(ctx context.Context, e model.Event) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE events SET name=?, venue=?, date=?, capacity=?, booked=?, status=? WHERE id=?`,
		e.Name, e.Venue, encodeTime(e.Date), e.Capacity, e.Booked, string(e.Status), e.ID)
	if err != nil {
		return fmt.Errorf("save event %s: %w", e.ID, err)
	}
	return requireHit(res, "event", e.ID)
}

// SaveExpense writes every field of an existing expense row.
func (d *DB) SaveExpense(ctx context.Context, e model.Expense) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE expenses SET date=?, vendor=?, category=?, amount=?, status=?, submitted_by=?, note=? WHERE id=?`,
		encodeTime(e.Date), e.Vendor, e.Category, e.Amount, string(e.Status), e.SubmittedBy, nullStr(e.Note), e.ID)
	if err != nil {
		return fmt.Errorf("save expense %s: %w", e.ID, err)
	}
	return requireHit(res, "expense", e.ID)
}

func requireHit(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
