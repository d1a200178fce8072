package tables

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"crewdesk/internal/model"
)

// ApplyEmployeeEdit writes a committed cell value onto the record. Input
// arrives as the raw string the user typed; parse failures leave the
// record untouched so the caller can flash the error and keep the row.
func ApplyEmployeeEdit(e model.Employee, columnKey, raw string) (model.Employee, error) {
	switch columnKey {
	case "name":
		v, err := requireText(raw, "name")
		if err != nil {
			return e, err
		}
		e.Name = v
	case "role":
		v, err := requireText(raw, "role")
		if err != nil {
			return e, err
		}
		e.Role = v
	case "department":
		v, err := requireText(raw, "department")
		if err != nil {
			return e, err
		}
		e.Department = v
	case "email":
		v := strings.TrimSpace(raw)
		if v != "" && !strings.Contains(v, "@") {
			return e, fmt.Errorf("email %q is missing an @", v)
		}
		e.Email = v
	case "salary":
		v, err := parseAmount(raw, "salary")
		if err != nil {
			return e, err
		}
		e.Salary = v
	case "phone":
		e.Phone = optionalText(raw)
	default:
		return e, fmt.Errorf("column %q is not editable", columnKey)
	}
	return e, nil
}

func ApplyEventEdit(e model.Event, columnKey, raw string) (model.Event, error) {
	switch columnKey {
	case "name":
		v, err := requireText(raw, "event name")
		if err != nil {
			return e, err
		}
		e.Name = v
	case "venue":
		v, err := requireText(raw, "venue")
		if err != nil {
			return e, err
		}
		e.Venue = v
	case "capacity":
		v, err := parseCount(raw, "capacity")
		if err != nil {
			return e, err
		}
		e.Capacity = v
	case "booked":
		v, err := parseCount(raw, "booked")
		if err != nil {
			return e, err
		}
		e.Booked = v
	case "status":
		v, err := parseEventStatus(raw)
		if err != nil {
			return e, err
		}
		e.Status = v
	default:
		return e, fmt.Errorf("column %q is not editable", columnKey)
	}
	return e, nil
}

func ApplyExpenseEdit(e model.Expense, columnKey, raw string) (model.Expense, error) {
	switch columnKey {
	case "date":
		v, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
		if err != nil {
			return e, fmt.Errorf("date must look like 2006-01-02")
		}
		e.Date = v
	case "vendor":
		v, err := requireText(raw, "vendor")
		if err != nil {
			return e, err
		}
		e.Vendor = v
	case "category":
		v, err := requireText(raw, "category")
		if err != nil {
			return e, err
		}
		e.Category = v
	case "amount":
		v, err := parseAmount(raw, "amount")
		if err != nil {
			return e, err
		}
		e.Amount = v
	case "status":
		v, err := parseExpenseStatus(raw)
		if err != nil {
			return e, err
		}
		e.Status = v
	case "note":
		e.Note = optionalText(raw)
	default:
		return e, fmt.Errorf("column %q is not editable", columnKey)
	}
	return e, nil
}

func requireText(raw, what string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%s cannot be empty", what)
	}
	return v, nil
}

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func parseAmount(raw, what string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", what)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative", what)
	}
	return v, nil
}

func parseCount(raw, what string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", what)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative", what)
	}
	return v, nil
}

func parseEventStatus(raw string) (model.EventStatus, error) {
	v := model.EventStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case model.EventPlanned, model.EventConfirmed, model.EventDone, model.EventCancelled:
		return v, nil
	}
	return "", fmt.Errorf("status must be one of planned, confirmed, done, cancelled")
}

func parseExpenseStatus(raw string) (model.ExpenseStatus, error) {
	v := model.ExpenseStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case model.ExpenseSubmitted, model.ExpenseApproved, model.ExpenseRejected, model.ExpensePaid:
		return v, nil
	}
	return "", fmt.Errorf("status must be one of submitted, approved, rejected, paid")
}
