package bikespace

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/thomassth/bikespace-v2/reports"
)

var tableHeaders = []string{"ID", "Time", "Issues", "Duration", "Comments"}

// tableView lists the displayed reports in a table, newest first, following
// the order the store hands out.
type tableView struct {
	*reports.Component
	rows [][]string
	link string
}

func newTableView(store *reports.Store, options ...reports.ComponentOption) *tableView {
	v := &tableView{}
	v.Component = reports.NewComponent(store, "reports", v, options...)
	return v
}

func (v *tableView) Refresh() {
	display := v.Store().DisplayData()
	rows := make([][]string, 0, len(display))
	for _, r := range display {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.ParkingTime.Format("2006-01-02 15:04"),
			strings.Join(r.Issues, ", "),
			r.ParkingDuration,
			clipComment(r.Comments, 40),
		})
	}
	v.rows = rows
	v.link = ""
	if len(display) > 0 {
		v.link = display[0].DashboardURL()
	}
}

func (v *tableView) Name() string { return "Reports" }

func (v *tableView) Render(width, height int) string {
	tbl := table.New().
		Width(min(width, 110)).
		Height(height - 2).
		Headers(tableHeaders...).
		Rows(v.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return styleTableCell
		})
	var doc strings.Builder
	doc.WriteString(styleViewTitle.Render("Reports (" + strconv.Itoa(len(v.rows)) + ")"))
	doc.WriteString("\n")
	doc.WriteString(tbl.Render())
	if v.link != "" {
		doc.WriteString("\n")
		doc.WriteString(styleLegend.Render("newest report: " + v.link))
	}
	return doc.String()
}

// clipComment shortens a free-form comment to fit a table column.
func clipComment(comment string, limit int) string {
	comment = strings.Join(strings.Fields(comment), " ")
	if len(comment) <= limit {
		return comment
	}
	return comment[:limit-1] + "…"
}
