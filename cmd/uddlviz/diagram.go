package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/uddltools/uddlviz/internal/domain/services"
	"github.com/uddltools/uddlviz/internal/infrastructure/config"
	"github.com/uddltools/uddlviz/internal/infrastructure/emitters"
)

type diagramFlags struct {
	output    string
	format    string
	direction string
}

func newRootCmd() *cobra.Command {
	var flags diagramFlags

	cmd := &cobra.Command{
		Use:     "uddlviz <input-file>...",
		Short:   "Translate UDDL tuple and OWL ontology schemas into diagram source",
		Long:    "Reads an ontology (.owl, .rdf, .xml) or tuple (.tpl, .tuple, .uddl) schema file and writes diagram-description text for an external renderer. The reader is chosen by file extension; ontologies render class-diagram style and tuple schemas entity-relationship style.",
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagram(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (single input only; default: input name with the format extension)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Diagram format (mermaid, dot)")
	cmd.Flags().StringVar(&flags.direction, "direction", "", "Layout direction (LR, TB)")

	cmd.AddCommand(
		newOwlCmd(),
		newStatsCmd(),
	)

	return cmd
}

func runDiagram(cmd *cobra.Command, args []string, flags diagramFlags) error {
	opts, err := translateOptions(flags)
	if err != nil {
		return err
	}

	if flags.output != "" && len(args) > 1 {
		return fmt.Errorf("--output requires a single input file, got %d", len(args))
	}

	svc := services.NewTranslationService()

	if len(args) == 1 {
		out := flags.output
		if out == "" {
			out = deriveOutput(args[0], opts.Format)
		}
		if err := svc.TranslateFile(args[0], out, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	}

	// Each translation owns its graph, so a batch can run concurrently.
	eg, _ := errgroup.WithContext(cmd.Context())
	for _, input := range args {
		input := input
		eg.Go(func() error {
			out := deriveOutput(input, opts.Format)
			if err := svc.TranslateFile(input, out, opts); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		})
	}
	return eg.Wait()
}

// translateOptions resolves flags against the optional config file and
// validates the format early, before any file is touched.
func translateOptions(flags diagramFlags) (services.TranslateOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return services.TranslateOptions{}, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return services.TranslateOptions{}, fmt.Errorf("loading config: %w", err)
	}

	opts := services.TranslateOptions{
		Format:    cfg.Diagram.Format,
		Direction: cfg.Diagram.Direction,
	}
	if flags.format != "" {
		opts.Format = flags.format
	}
	if flags.direction != "" {
		opts.Direction = flags.direction
	}

	if emitters.ForFormat(opts.Format, opts.Direction) == nil {
		return services.TranslateOptions{}, fmt.Errorf("invalid format %q, valid formats: mermaid, dot", opts.Format)
	}

	return opts, nil
}

// deriveOutput replaces the input extension with the format's extension.
func deriveOutput(input, format string) string {
	base := input
	if i := strings.LastIndex(base, "."); i > strings.LastIndexAny(base, "/\\") {
		base = base[:i]
	}
	return base + emitters.OutputExt(format)
}
