package bikespace

import (
	"strconv"
	"strings"

	"github.com/thomassth/bikespace-v2/reports"
)

// densityGlyphs maps bucketed report counts to glyphs, lightest first.
var densityGlyphs = []rune{'·', '∘', '●', '█'}

// mapView plots the displayed reports on a character grid. The grid bounds
// come from the full source dataset so that the frame stays put while
// filtering narrows the displayed points down.
type mapView struct {
	*reports.Component
	display []reports.Report
}

func newMapView(store *reports.Store, options ...reports.ComponentOption) *mapView {
	v := &mapView{}
	v.Component = reports.NewComponent(store, "map", v, options...)
	return v
}

func (v *mapView) Refresh() {
	v.display = v.Store().DisplayData()
}

func (v *mapView) Name() string { return "Map" }

func (v *mapView) Render(width, height int) string {
	frame := styleMapFrame
	cols := width - frame.GetHorizontalFrameSize() - 4
	rows := height - frame.GetVerticalFrameSize() - 4
	cols = max(20, min(cols, 120))
	rows = max(8, min(rows, 40))
	grid := plotGrid(v.Store().SourceData(), v.display, cols, rows)
	var doc strings.Builder
	doc.WriteString(styleViewTitle.Render("Report locations"))
	doc.WriteString("\n")
	doc.WriteString(frame.Render(grid))
	doc.WriteString("\n")
	doc.WriteString(styleLegend.Render("showing " + strconv.Itoa(len(v.display)) + " reports, north up"))
	return doc.String()
}

// plotGrid buckets the displayed reports into a cols x rows character grid
// using coordinate bounds taken from source. Reports without coordinates are
// left out.
func plotGrid(source, display []reports.Report, cols, rows int) string {
	minLat, maxLat, minLon, maxLon, ok := coordinateBounds(source)
	if !ok {
		return styleLoader.Render("no report coordinates available")
	}
	counts := make([]int, cols*rows)
	for _, r := range display {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		x := scaleToCell(r.Longitude, minLon, maxLon, cols)
		// latitude grows northwards, grid rows grow downwards.
		y := rows - 1 - scaleToCell(r.Latitude, minLat, maxLat, rows)
		counts[y*cols+x]++
	}
	var peak int
	for _, n := range counts {
		peak = max(peak, n)
	}
	var doc strings.Builder
	for y := range rows {
		if y > 0 {
			doc.WriteString("\n")
		}
		line := make([]rune, cols)
		for x := range cols {
			line[x] = cellGlyph(counts[y*cols+x], peak)
		}
		doc.WriteString(string(line))
	}
	return doc.String()
}

// coordinateBounds returns the bounding box of the reports that carry
// coordinates. ok is false when none do.
func coordinateBounds(set []reports.Report) (minLat, maxLat, minLon, maxLon float64, ok bool) {
	for _, r := range set {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		if !ok {
			minLat, maxLat = r.Latitude, r.Latitude
			minLon, maxLon = r.Longitude, r.Longitude
			ok = true
			continue
		}
		minLat = min(minLat, r.Latitude)
		maxLat = max(maxLat, r.Latitude)
		minLon = min(minLon, r.Longitude)
		maxLon = max(maxLon, r.Longitude)
	}
	return minLat, maxLat, minLon, maxLon, ok
}

// scaleToCell maps v within [lo, hi] onto a cell index in [0, cells).
func scaleToCell(v, lo, hi float64, cells int) int {
	if hi <= lo {
		return 0
	}
	idx := int((v - lo) / (hi - lo) * float64(cells))
	if idx >= cells {
		idx = cells - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// cellGlyph picks a density glyph for a cell count relative to the busiest
// cell on the grid.
func cellGlyph(count, peak int) rune {
	if count == 0 || peak == 0 {
		return ' '
	}
	idx := (count*len(densityGlyphs) - 1) / peak
	if idx >= len(densityGlyphs) {
		idx = len(densityGlyphs) - 1
	}
	return densityGlyphs[idx]
}
