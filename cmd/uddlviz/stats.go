package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uddltools/uddlviz/internal/domain/schema"
	"github.com/uddltools/uddlviz/internal/domain/services"
)

var validStatsFormats = []string{"table", "csv", "json"}

type statsFlags struct {
	format string
}

func newStatsCmd() *cobra.Command {
	var flags statsFlags

	cmd := &cobra.Command{
		Use:   "stats <input-file>",
		Short: "Print summary statistics for a schema",
		Long:  "Counts attributes, relationships, and is-a edges per entity and prints a per-entity breakdown with totals.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "Output format (table, csv, json)")

	return cmd
}

func runStats(input string, flags statsFlags) error {
	if !slices.Contains(validStatsFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validStatsFormats)
	}

	f, err := os.Open(input)
	if err != nil {
		return &schema.IOError{Op: "open", Path: input, Err: err}
	}
	defer f.Close()

	svc := services.NewTranslationService()
	g, _, err := svc.Load(f, input)
	if err != nil {
		return err
	}

	summary := services.Summarize(g)

	switch flags.format {
	case "csv":
		return statsCSV(os.Stdout, summary)
	case "json":
		return statsJSON(os.Stdout, summary)
	default:
		return statsTable(os.Stdout, summary)
	}
}

func statsTable(w io.Writer, summary services.Summary) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ENTITY", "PARENT", "ATTRIBUTES", "RELATIONSHIPS", "IS-A"})
	for _, e := range summary.Entities {
		t.AppendRow(table.Row{e.Name, e.Parent, e.Attributes, e.Relationships, e.IsA})
	}
	t.AppendFooter(table.Row{"TOTAL", "", summary.TotalAttributes, summary.TotalRelationships, summary.TotalIsA})

	t.Render()
	return nil
}

func statsCSV(w io.Writer, summary services.Summary) error {
	writer := csv.NewWriter(w)

	header := []string{"entity", "parent", "attributes", "relationships", "is_a"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range summary.Entities {
		row := []string{
			e.Name,
			e.Parent,
			strconv.Itoa(e.Attributes),
			strconv.Itoa(e.Relationships),
			strconv.Itoa(e.IsA),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func statsJSON(w io.Writer, summary services.Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
