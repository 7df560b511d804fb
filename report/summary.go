package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary renders a phase x level count table of the reports.
func (r Reports) WriteSummary(w io.Writer) {
	type key struct {
		phase COMPILATION_PHASE
		level PROBLEM_TYPE
	}

	counts := make(map[key]int)
	for _, report := range r {
		counts[key{report.Phase, report.Level}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].phase != keys[j].phase {
			return keys[i].phase < keys[j].phase
		}
		return keys[i].level < keys[j].level
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Phase", "Level", "Count"})
	table.SetAutoFormatHeaders(false)
	for _, k := range keys {
		table.Append([]string{string(k.phase), string(k.level), strconv.Itoa(counts[k])})
	}
	table.Render()
}
