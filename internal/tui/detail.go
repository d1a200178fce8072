package tui

import (
	"fmt"
	"strings"

	"crewdesk/internal/model"
)

// Record detail pages, rendered as markdown so glamour handles layout
// and emphasis consistently with the help overlay.

func employeeDetail(e model.Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "`%s`\n\n", e.ID)
	fmt.Fprintf(&b, "- **Role:** %s\n", e.Role)
	fmt.Fprintf(&b, "- **Department:** %s\n", e.Department)
	fmt.Fprintf(&b, "- **Email:** %s\n", e.Email)
	fmt.Fprintf(&b, "- **Salary:** %.2f\n", e.Salary)
	fmt.Fprintf(&b, "- **Started:** %s\n", e.StartedAt.Format("2006-01-02"))
	if e.Phone != nil {
		fmt.Fprintf(&b, "- **Phone:** %s\n", *e.Phone)
	}
	return b.String()
}

func eventDetail(e model.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "`%s` (%s)\n\n", e.ID, e.Status)
	fmt.Fprintf(&b, "- **Venue:** %s\n", e.Venue)
	fmt.Fprintf(&b, "- **Date:** %s\n", e.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Booked:** %d of %d\n", e.Booked, e.Capacity)
	if e.Capacity > 0 {
		fmt.Fprintf(&b, "- **Fill:** %d%%\n", int(100*float64(e.Booked)/float64(e.Capacity)))
	}
	return b.String()
}

func expenseDetail(e model.Expense) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Vendor)
	fmt.Fprintf(&b, "`%s` (%s)\n\n", e.ID, e.Status)
	fmt.Fprintf(&b, "- **Date:** %s\n", e.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Category:** %s\n", e.Category)
	fmt.Fprintf(&b, "- **Amount:** %.2f\n", e.Amount)
	fmt.Fprintf(&b, "- **Submitted by:** %s\n", e.SubmittedBy)
	if e.Note != nil {
		fmt.Fprintf(&b, "\n> %s\n", *e.Note)
	}
	return b.String()
}

const helpMD = `# Keys

## Grid

| Key | Action |
| --- | ------ |
| j / k | move row cursor |
| h / l | move column cursor |
| g / G | first / last row on page |
| [ / ] | previous / next page |
| s | cycle sort on the cursor column |
| / | filter rows (live) |
| space | select / deselect row |
| a | select or clear the whole page |
| c | clear selection |
| enter | open record |
| e | edit the cursor cell |
| E | export the filtered view to CSV |
| r | reload from the workspace |
| tab | next dataset |
| T | cycle color theme |
| esc | back to the dataset picker |
| q | quit |

Scrolling with the mouse wheel over the header or the body pans the
grid horizontally; both strips stay aligned.

## While editing

| Key | Action |
| --- | ------ |
| enter | save |
| esc | cancel |
`
