package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uddltools/uddlviz/internal/domain/schema"
	"github.com/uddltools/uddlviz/internal/domain/services"
	"github.com/uddltools/uddlviz/internal/infrastructure/config"
	"github.com/uddltools/uddlviz/internal/infrastructure/emitters"
	"github.com/uddltools/uddlviz/internal/infrastructure/output"
)

type owlFlags struct {
	output  string
	baseIRI string
}

func newOwlCmd() *cobra.Command {
	var flags owlFlags

	cmd := &cobra.Command{
		Use:   "owl <input-file>",
		Short: "Convert a schema to OWL RDF/XML",
		Long:  "Converts a tuple or ontology schema file into OWL RDF/XML: one class per entity, subclass-of edges for parents, object properties for relationships, and datatype properties for attributes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOwl(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&flags.baseIRI, "base-iri", "", "Ontology base IRI")

	return cmd
}

func runOwl(input string, flags owlFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	baseIRI := cfg.Ontology.BaseIRI
	if flags.baseIRI != "" {
		baseIRI = flags.baseIRI
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

	writer := &emitters.OWLWriter{BaseIRI: baseIRI}
	data, err := writer.Emit(g)
	if err != nil {
		return fmt.Errorf("converting %s: %w", input, err)
	}

	if flags.output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := output.Write(flags.output, data); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", flags.output)
	return nil
}
