// Package charts renders PDF charts for a set of bicycle-parking reports
// using gonum/plot. The export mirrors what is on screen: callers pass the
// currently displayed (filtered) report set.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/thomassth/bikespace-v2/reports"
)

const (
	pageWidth  = 11 * vg.Inch
	pageHeight = 8.5 * vg.Inch
	pdfMargin  = 0.75 * vg.Inch
)

var chartBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// ExportPDF writes a three page chart report for the given report set:
// submissions per month, counts per issue tag, and counts per weekday.
// The subtitle should describe the set, for example the active date range.
func ExportPDF(path string, set []reports.Report, subtitle string) error {
	c := vgpdf.New(pageWidth, pageHeight)

	if err := drawTimeSeriesPage(c, set, subtitle); err != nil {
		return fmt.Errorf("draw time series: %w", err)
	}
	c.NextPage()
	if err := drawBarPage(c, "Reports by issue", subtitle, issueCounts(set)); err != nil {
		return fmt.Errorf("draw issue chart: %w", err)
	}
	c.NextPage()
	if err := drawBarPage(c, "Reports by weekday", subtitle, weekdayCounts(set)); err != nil {
		return fmt.Errorf("draw weekday chart: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	if _, err = c.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write canvas: %w", err)
	}
	return f.Close()
}

type labeledCount struct {
	label string
	count int
}

// monthlyCounts buckets the reports per calendar month of their parking
// time, in chronological order. Months without reports inside the covered
// span are included with a zero count so the time axis stays linear.
func monthlyCounts(set []reports.Report) []labeledCount {
	if len(set) == 0 {
		return nil
	}
	counts := make(map[string]int)
	var first, last time.Time
	for _, r := range set {
		t := r.ParkingTime
		counts[t.Format("2006-01")]++
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if last.IsZero() || t.After(last) {
			last = t
		}
	}
	var out []labeledCount
	cursor := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		label := cursor.Format("2006-01")
		out = append(out, labeledCount{label: label, count: counts[label]})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return out
}

// issueCounts counts reports per issue tag. Known tags come first in their
// display order, unknown tags after them alphabetically. A report with
// several issues counts once per issue.
func issueCounts(set []reports.Report) []labeledCount {
	counts := make(map[string]int)
	for _, r := range set {
		for _, tag := range r.Issues {
			counts[tag]++
		}
	}
	var out []labeledCount
	for _, tag := range reports.IssueTags() {
		out = append(out, labeledCount{label: tag, count: counts[tag]})
		delete(counts, tag)
	}
	var rest []string
	for tag := range counts {
		rest = append(rest, tag)
	}
	sort.Strings(rest)
	for _, tag := range rest {
		out = append(out, labeledCount{label: tag, count: counts[tag]})
	}
	return out
}

// weekdayCounts counts reports per ISO weekday, Monday first.
func weekdayCounts(set []reports.Report) []labeledCount {
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	out := make([]labeledCount, 7)
	for i, label := range labels {
		out[i] = labeledCount{label: label}
	}
	for _, r := range set {
		out[r.Weekday()-1].count++
	}
	return out
}

func drawTimeSeriesPage(c *vgpdf.Canvas, set []reports.Report, subtitle string) error {
	months := monthlyCounts(set)

	p := plot.New()
	p.Title.Text = titleWithSubtitle("Reports per month", subtitle, len(set))
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.BackgroundColor = color.White
	p.Y.Label.Text = "Reports"
	p.Y.Min = 0

	pts := make(plotter.XYs, len(months))
	labels := make([]string, len(months))
	for i, m := range months {
		pts[i] = plotter.XY{X: float64(i), Y: float64(m.count)}
		labels[i] = m.label
	}

	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plotter.NewLine: %w", err)
		}
		line.Color = chartBlue
		line.Width = vg.Points(2)

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plotter.NewScatter: %w", err)
		}
		scatter.Color = chartBlue
		scatter.Radius = vg.Points(3)
		scatter.Shape = draw.CircleGlyph{}

		p.Add(line, scatter, plotter.NewGrid())
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = 0.7
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	drawOnPage(c, p)
	return nil
}

func drawBarPage(c *vgpdf.Canvas, title, subtitle string, counts []labeledCount) error {
	p := plot.New()
	p.Title.Text = titleWithSubtitle(title, subtitle, -1)
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.BackgroundColor = color.White
	p.Y.Label.Text = "Reports"
	p.Y.Min = 0

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, lc := range counts {
		values[i] = float64(lc.count)
		labels[i] = lc.label
	}
	bars, err := plotter.NewBarChart(values, 0.5*vg.Inch)
	if err != nil {
		return fmt.Errorf("plotter.NewBarChart: %w", err)
	}
	bars.Color = chartBlue
	bars.LineStyle.Width = 0
	p.Add(bars, plotter.NewGrid())
	p.NominalX(labels...)

	drawOnPage(c, p)
	return nil
}

func drawOnPage(c *vgpdf.Canvas, p *plot.Plot) {
	dc := draw.New(c)
	area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)
	p.Draw(area)
}

// DescribeRange renders a human readable description of a report time range
// for use as a chart subtitle.
func DescribeRange(first, last time.Time) string {
	const layout = "January 2, 2006"
	return fmt.Sprintf("between and including %s and %s", first.Format(layout), last.Format(layout))
}

func titleWithSubtitle(title, subtitle string, total int) string {
	if total >= 0 {
		title = fmt.Sprintf("%s (%d reports)", title, total)
	}
	if subtitle != "" {
		title += "\n" + subtitle
	}
	return title
}
