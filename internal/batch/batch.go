// Package batch loads a YAML job manifest for the tilezss command-line host,
// letting one invocation drive many encode/decode calls. The loader pattern
// (open file, yaml.NewDecoder, validate into a strongly-typed struct) follows
// go.mukunda.com/pmage/pmage's PmageFile.LoadYamlFile.
package batch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoJobs        = errors.New("manifest has no jobs")
	ErrMissingInput  = errors.New("job is missing an input path")
	ErrMissingOutput = errors.New("job is missing an output path")
	ErrMissingOp     = errors.New("job op must be \"compress\" or \"decompress\"")
	ErrMissingWidth  = errors.New("adaptive job is missing a width")
)

// Job is a single manifest entry: one encode or decode call.
type Job struct {
	Op       string `yaml:"op"`
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Adaptive bool   `yaml:"adaptive"`
	Delta    bool   `yaml:"delta"`
	Width    int    `yaml:"width"`
}

// Manifest is the top-level shape of a batch YAML file.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads and validates a manifest from path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Manifest
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Jobs) == 0 {
		return ErrNoJobs
	}
	for i := range m.Jobs {
		j := &m.Jobs[i]
		if j.Input == "" {
			return fmt.Errorf("job %d: %w", i, ErrMissingInput)
		}
		if j.Output == "" {
			return fmt.Errorf("job %d: %w", i, ErrMissingOutput)
		}
		switch j.Op {
		case "compress", "decompress":
		default:
			return fmt.Errorf("job %d: %w", i, ErrMissingOp)
		}
		if j.Op == "compress" && j.Adaptive && j.Width <= 0 {
			return fmt.Errorf("job %d: %w", i, ErrMissingWidth)
		}
	}
	return nil
}
