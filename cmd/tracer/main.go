// Package main implements the tracer CLI, which runs the traceability engine
// over a programme snapshot and award standard files on disk.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/programmedesign/core/internal/logger"
	"github.com/programmedesign/core/internal/models"
	"github.com/programmedesign/core/internal/parser"
	"github.com/programmedesign/core/internal/trace"
)

type options struct {
	programme string
	standards string
	format    string
	status    string
	standard  string
	query     string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tracer",
		Short:         "Curriculum traceability and coverage analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Derive the alignment chain Award Standard -> PLO -> Module -> MIMLO -> Assessment
from a programme snapshot, report award standard coverage, and build the
flow-diagram graph.

Standards are read from a YAML/JSON file or a directory of them.`,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.programme, "programme", "p", "", "programme snapshot JSON file (required)")
	flags.StringVarP(&opts.standards, "standards", "s", "", "standards file or directory")
	flags.StringVarP(&opts.format, "format", "f", "table", "output format: table or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	_ = root.MarkPersistentFlagRequired("programme")

	root.AddCommand(newRowsCmd(opts), newCoverageCmd(opts), newSankeyCmd(opts))
	return root
}

func newRowsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print trace rows and status counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := run(cmd, opts)
			if err != nil {
				return err
			}
			filter := trace.RowFilter{
				Status:     models.Status(opts.status),
				StandardID: opts.standard,
				Query:      opts.query,
			}
			if filter.Status != "" && !filter.Status.Valid() {
				return fmt.Errorf("unknown status %q", opts.status)
			}
			rows := trace.FilterRows(result.Rows, filter)
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), struct {
					Rows  []models.TraceRow `json:"rows"`
					Stats models.TraceStats `json:"stats"`
				}{rows, result.Stats})
			}
			return writeRowsTable(cmd.OutOrStdout(), rows, result.Stats)
		},
	}
	cmd.Flags().StringVar(&opts.status, "status", "", "only rows with this status (ok, warning, gap, uncovered)")
	cmd.Flags().StringVar(&opts.standard, "standard", "", "only rows for this award standard id")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "only rows whose text contains this")
	return cmd
}

func newCoverageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Print per-standard indicator coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := run(cmd, opts)
			if err != nil {
				return err
			}
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), result.Coverage)
			}
			return writeCoverageTable(cmd.OutOrStdout(), result.Coverage)
		},
	}
}

func newSankeyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sankey",
		Short: "Print the aggregated flow-diagram graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := run(cmd, opts)
			if err != nil {
				return err
			}
			graph := trace.Aggregate(result.Rows)
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), models.NewSankeyPayload(graph))
			}
			return writeSankeyTable(cmd.OutOrStdout(), graph)
		},
	}
}

func run(cmd *cobra.Command, opts *options) (*models.Traceability, error) {
	switch opts.format {
	case "table", "json":
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}

	log := logger.NewNop()
	if opts.verbose {
		l, err := logger.New("dev", "debug")
		if err != nil {
			return nil, err
		}
		log = l
		defer func() {
			if err := log.Sync(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "flush logs:", err)
			}
		}()
	}

	data, err := os.ReadFile(opts.programme)
	if err != nil {
		return nil, fmt.Errorf("read programme: %w", err)
	}
	programme, err := parser.ParseProgramme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.programme, err)
	}

	standards, err := parser.LoadStandards(cmd.Context(), opts.standards)
	if err != nil {
		return nil, err
	}
	for _, id := range programme.AwardStandardIDs {
		if len(trace.IndicatorsAt(standards, id, programme.NFQLevel)) == 0 {
			log.Warn("no reference indicators for award standard", "standard_id", id, "nfq_level", programme.NFQLevel)
		}
	}

	result := trace.Trace(programme, standards)
	log.Info("traceability derived",
		"plos", len(programme.PLOs),
		"modules", len(programme.Modules),
		"rows", len(result.Rows),
		"standards", strings.Join(standards.IDs(), ","),
	)
	return result, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tracer:", err)
		os.Exit(1)
	}
}
