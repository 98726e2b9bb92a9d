package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/percolate/montecarlo"
)

const (
	formatText  = "text"
	formatTable = "table"
)

func render(w io.Writer, format string, est *montecarlo.Estimator) error {
	if format == formatTable {
		renderTable(w, est)
		return nil
	}
	_, err := fmt.Fprintf(w, "mean                    = %s\nstddev                  = %s\n95%% confidence interval = [%s, %s]\n",
		formatFloat(est.Mean()), formatFloat(est.StdDev()),
		formatFloat(est.ConfidenceLo()), formatFloat(est.ConfidenceHi()))

	return err
}

func renderTable(w io.Writer, est *montecarlo.Estimator) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"grid size", strconv.Itoa(est.N())},
		{"trials", strconv.Itoa(est.TrialCount())},
		{"mean", formatFloat(est.Mean())},
		{"stddev", formatFloat(est.StdDev())},
		{"95% CI low", formatFloat(est.ConfidenceLo())},
		{"95% CI high", formatFloat(est.ConfidenceHi())},
	})
	table.Render()
}

// formatFloat prints the shortest representation that round-trips; NaN stays "NaN".
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
