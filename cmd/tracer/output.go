package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/programmedesign/core/internal/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRowsTable(w io.Writer, rows []models.TraceRow, stats models.TraceStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Award Standard\tPLO\tPLO Text\tModule\tModule Title\tMIMLO\tMIMLO Text\tAssessment\tType\tWeight\tStatus")
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join([]string{
			r.StandardLabel,
			r.PLONum,
			r.PLOText,
			r.ModuleCode,
			r.ModuleTitle,
			r.MIMLONum,
			r.MIMLOText,
			r.AssessmentTitle,
			r.AssessmentType,
			r.AssessmentWeight,
			r.StatusLabel,
		}, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ncovered %d  assessment gaps %d  PLO gaps %d  standard gaps %d\n",
		stats.CoveredCount, stats.WarningCount, stats.GapCount, stats.UncoveredCount)
	return err
}

func writeCoverageTable(w io.Writer, records []models.CoverageRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Standard\tName\tCovered\tTotal\tUncovered Threads")
	for _, c := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			c.StandardID, c.StandardName, c.CoveredIndicators, c.TotalIndicators, strings.Join(c.UncoveredThreads, ", "))
	}
	return tw.Flush()
}

func writeSankeyTable(w io.Writer, g *models.SankeyGraph) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Source\tTarget\tWeight")
	for _, l := range g.Links {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", g.NodeLabels[l.Source], g.NodeLabels[l.Target], l.Weight)
	}
	return tw.Flush()
}
