package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WriteFibonacciTable renders sweep rows with durations in seconds.
func WriteFibonacciTable(w io.Writer, rows []FibonacciRow) {
	table := newTable(w, []string{"n", "LRU Cache Time (s)", "ARC Cache Time (s)", "Splay Tree Time (s)"})
	for _, r := range rows {
		table.Append([]string{
			strconv.Itoa(r.N),
			seconds(r.LRU),
			seconds(r.ARC),
			seconds(r.Splay),
		})
	}
	table.Render()
}

// WriteAccessTable renders access workload results.
func WriteAccessTable(w io.Writer, results []AccessResult) {
	table := newTable(w, []string{"Cache", "Hits", "Misses", "Hit Ratio", "Entries", "Time (s)"})
	for _, r := range results {
		table.Append([]string{
			r.Cache,
			strconv.Itoa(r.Hits),
			strconv.Itoa(r.Misses),
			fmt.Sprintf("%.4f", r.HitRatio()),
			strconv.Itoa(r.Len),
			seconds(r.Duration),
		})
	}
	table.Render()
}

// WriteMetricsTable renders metric summaries produced by Summarize.
func WriteMetricsTable(w io.Writer, summaries []MetricSummary) {
	table := newTable(w, []string{"Metric", "Labels", "Type", "Count", "Value"})
	for _, s := range summaries {
		table.Append([]string{
			s.Name,
			s.Labels,
			s.Type,
			strconv.FormatUint(s.Count, 10),
			strconv.FormatFloat(s.Value, 'g', 6, 64),
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.10f", d.Seconds())
}
