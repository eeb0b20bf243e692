// Package services implements the translation pipeline over the schema
// graph: read, validate, emit.
package services

import (
	"fmt"
	"io"
	"os"

	"github.com/uddltools/uddlviz/internal/domain/schema"
	"github.com/uddltools/uddlviz/internal/infrastructure/emitters"
	"github.com/uddltools/uddlviz/internal/infrastructure/output"
	"github.com/uddltools/uddlviz/internal/infrastructure/readers"
)

// TranslateOptions selects the diagram output format and layout.
type TranslateOptions struct {
	Format    string
	Direction string
}

// TranslationService turns schema files into diagram-description text.
// Each call builds its own graph, so concurrent calls over different
// files are safe.
type TranslationService struct{}

// NewTranslationService creates a new translation service.
func NewTranslationService() *TranslationService {
	return &TranslationService{}
}

// Load parses input into a validated graph. The input name selects the
// reader by extension and is reported in errors; the returned kind is
// the reader kind driving diagram style.
func (s *TranslationService) Load(r io.Reader, inputName string) (*schema.Graph, string, error) {
	reader := readers.ForFile(inputName)
	if reader == nil {
		return nil, "", fmt.Errorf("no reader for %s: expected an ontology (.owl, .rdf, .xml) or tuple (.tpl, .tuple, .uddl) file", inputName)
	}

	g, err := reader.Parse(r)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", inputName, err)
	}
	if err := g.Validate(); err != nil {
		return nil, "", fmt.Errorf("validating %s: %w", inputName, err)
	}

	return g, reader.Kind(), nil
}

// Translate parses input and emits diagram text, entirely in memory.
func (s *TranslationService) Translate(r io.Reader, inputName string, opts TranslateOptions) ([]byte, error) {
	g, kind, err := s.Load(r, inputName)
	if err != nil {
		return nil, err
	}

	emitter := emitters.ForFormat(opts.Format, opts.Direction)
	if emitter == nil {
		return nil, fmt.Errorf("unknown diagram format %q", opts.Format)
	}

	data, err := emitter.Emit(g, styleForKind(kind))
	if err != nil {
		return nil, fmt.Errorf("emitting %s: %w", inputName, err)
	}

	return data, nil
}

// TranslateFile runs the full pipeline from one input path to one output
// path. The output file is only written when translation succeeds.
func (s *TranslationService) TranslateFile(inputPath, outputPath string, opts TranslateOptions) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return &schema.IOError{Op: "open", Path: inputPath, Err: err}
	}
	defer f.Close()

	data, err := s.Translate(f, inputPath, opts)
	if err != nil {
		return err
	}

	return output.Write(outputPath, data)
}

// styleForKind maps a reader kind to the diagram style it is drawn with.
func styleForKind(kind string) emitters.Style {
	if kind == readers.KindOntology {
		return emitters.StyleOntology
	}
	return emitters.StyleTuple
}
