// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up in the working
// directory. The file is optional; defaults apply when it is absent so
// the translator runs with zero setup.
const DefaultConfigFile = ".uddlviz.yaml"

// Config holds static translator configuration (read-only after load).
type Config struct {
	Diagram  DiagramConfig  `yaml:"diagram,omitempty"`
	Ontology OntologyConfig `yaml:"ontology,omitempty"`
}

// DiagramConfig holds defaults for diagram emission.
type DiagramConfig struct {
	// Format is the diagram output format: "mermaid" or "dot".
	Format string `yaml:"format,omitempty"`
	// Direction is the layout direction: "LR" or "TB".
	Direction string `yaml:"direction,omitempty"`
}

// OntologyConfig holds defaults for OWL output.
type OntologyConfig struct {
	// BaseIRI prefixes every class and property IRI in generated OWL.
	BaseIRI string `yaml:"base_iri,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Diagram: DiagramConfig{
			Format:    "mermaid",
			Direction: "LR",
		},
		Ontology: OntologyConfig{
			BaseIRI: "http://example.org/uddl",
		},
	}
}

// Load loads configuration from the given directory, falling back to
// defaults when no config file exists.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if f := os.Getenv("UDDLVIZ_FORMAT"); f != "" {
		c.Diagram.Format = f
	}
	if d := os.Getenv("UDDLVIZ_DIRECTION"); d != "" {
		c.Diagram.Direction = d
	}
	if iri := os.Getenv("UDDLVIZ_BASE_IRI"); iri != "" {
		c.Ontology.BaseIRI = iri
	}
}
