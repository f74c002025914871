// Package formatter renders query result sets for terminal output as
// aligned text tables and, where the shape allows, horizontal bar charts.
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salesq/salesq/internal/storage"
)

const (
	defaultMaxRows    = 50
	defaultChartWidth = 40
	minChartWidth     = 10
	maxChartRows      = 20
	labelTruncateLen  = 24
)

// Formatter handles result set output formatting.
type Formatter struct {
	maxRows    int
	chartWidth int
}

// NewFormatter creates a formatter with the given row cap and chart width.
// Non-positive values fall back to defaults.
func NewFormatter(maxRows, chartWidth int) *Formatter {
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}

	if chartWidth < minChartWidth {
		chartWidth = defaultChartWidth
	}

	return &Formatter{maxRows: maxRows, chartWidth: chartWidth}
}

// FormatTable renders the result set as an aligned text table. Numeric
// columns are right-aligned; output is capped at the configured row limit
// with a trailing note for the remainder.
func (f *Formatter) FormatTable(rs *storage.ResultSet) string {
	if rs == nil || len(rs.Columns) == 0 {
		return "(no results)"
	}

	if len(rs.Rows) == 0 {
		return "(no rows)"
	}

	shown := rs.Rows
	truncated := 0

	if len(shown) > f.maxRows {
		truncated = len(shown) - f.maxRows
		shown = shown[:f.maxRows]
	}

	cells := make([][]string, len(shown))
	for i, row := range shown {
		cells[i] = make([]string, len(rs.Columns))

		for j := range rs.Columns {
			if j < len(row) {
				cells[i][j] = formatValue(row[j])
			}
		}
	}

	widths := make([]int, len(rs.Columns))
	for j, col := range rs.Columns {
		widths[j] = len(col)
	}

	for _, row := range cells {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	numeric := make([]bool, len(rs.Columns))
	for j := range rs.Columns {
		numeric[j] = columnIsNumeric(rs, j)
	}

	var b strings.Builder

	writeRow := func(row []string) {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}

			if numeric[j] {
				b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if j < len(row)-1 {
					b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
				}
			}
		}

		b.WriteByte('\n')
	}

	writeRow(rs.Columns)

	separator := make([]string, len(rs.Columns))
	for j := range separator {
		separator[j] = strings.Repeat("-", widths[j])
	}

	b.WriteString(strings.Join(separator, "  "))
	b.WriteByte('\n')

	for _, row := range cells {
		writeRow(row)
	}

	if truncated > 0 {
		fmt.Fprintf(&b, "... (%d more rows)\n", truncated)
	}

	return b.String()
}

// CanChart reports whether the result set has the shape a bar chart needs:
// at least one label-like column, at least one numeric column, and a
// manageable number of rows.
func (f *Formatter) CanChart(rs *storage.ResultSet) bool {
	if rs == nil || len(rs.Rows) == 0 || len(rs.Rows) > maxChartRows {
		return false
	}

	labelIdx, valueIdx := chartColumns(rs)

	return labelIdx >= 0 && valueIdx >= 0
}

// FormatChart renders a horizontal bar chart from the first label-like
// column and the first numeric column. Returns "" when the result set is
// not chartable.
func (f *Formatter) FormatChart(rs *storage.ResultSet) string {
	if !f.CanChart(rs) {
		return ""
	}

	labelIdx, valueIdx := chartColumns(rs)

	type bar struct {
		label string
		value float64
	}

	bars := make([]bar, 0, len(rs.Rows))
	maxValue := 0.0
	labelWidth := 0

	for _, row := range rs.Rows {
		label := truncateLabel(formatValue(row[labelIdx]))

		value, ok := numericValue(row[valueIdx])
		if !ok {
			continue
		}

		bars = append(bars, bar{label: label, value: value})

		if value > maxValue {
			maxValue = value
		}

		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	if len(bars) == 0 || maxValue <= 0 {
		return ""
	}

	var b strings.Builder

	for _, bar := range bars {
		length := int(bar.value / maxValue * float64(f.chartWidth))
		if length < 1 && bar.value > 0 {
			length = 1
		}

		fmt.Fprintf(&b, "%-*s | %s %s\n",
			labelWidth, bar.label,
			strings.Repeat("█", length),
			formatNumber(bar.value))
	}

	return b.String()
}

// chartColumns picks the first label-like column and the first numeric
// column. Returns -1 for either when no candidate exists.
func chartColumns(rs *storage.ResultSet) (labelIdx, valueIdx int) {
	labelIdx, valueIdx = -1, -1

	for j := range rs.Columns {
		if columnIsNumeric(rs, j) {
			if valueIdx < 0 {
				valueIdx = j
			}
		} else if labelIdx < 0 {
			labelIdx = j
		}
	}

	return labelIdx, valueIdx
}

// columnIsNumeric reports whether every non-nil value in the column is
// numeric. Columns with no non-nil values are not numeric.
func columnIsNumeric(rs *storage.ResultSet, idx int) bool {
	seen := false

	for _, row := range rs.Rows {
		if idx >= len(row) || row[idx] == nil {
			continue
		}

		if _, ok := numericValue(row[idx]); !ok {
			return false
		}

		seen = true
	}

	return seen
}

// numericValue extracts a float64 from the scan types the database driver
// produces for numeric columns.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// formatValue renders a single cell value for display.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02")
	case float64:
		return formatNumber(val)
	case float32:
		return formatNumber(float64(val))
	case bool:
		return strconv.FormatBool(val)
	default:
		if n, ok := numericValue(v); ok {
			return formatNumber(n)
		}

		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders integers without a fraction and everything else
// with two decimal places.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}

	return strconv.FormatFloat(n, 'f', 2, 64)
}

func truncateLabel(s string) string {
	if len(s) <= labelTruncateLen {
		return s
	}

	return s[:labelTruncateLen-3] + "..."
}
