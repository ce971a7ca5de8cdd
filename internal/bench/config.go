package bench

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSuite is wrapped by every suite validation failure.
var ErrInvalidSuite = errors.New("bench: invalid suite")

// Suite describes one benchmark invocation: every combination of size, input
// and strategy is run Repeat times.
type Suite struct {
	Sizes      []int       `yaml:"sizes"`
	Inputs     []InputKind `yaml:"inputs"`
	Strategies []Strategy  `yaml:"strategies"`
	Seed       uint64      `yaml:"seed"`
	Repeat     int         `yaml:"repeat"`
	Verify     bool        `yaml:"verify"`

	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls where results are written besides the console.
type OutputConfig struct {
	CSV             string `yaml:"csv"`              // appended to; header written when the file is new
	MetricsTextfile string `yaml:"metrics_textfile"` // optional Prometheus textfile
}

// Defaults used when a suite file or flag leaves a field unset.
const (
	DefaultSize = 100000
	DefaultSeed = 1234
	DefaultCSV  = "results.csv"
)

// DefaultSuite runs the bulk strategy once over a random input.
func DefaultSuite() Suite {
	return Suite{
		Sizes:      []int{DefaultSize},
		Inputs:     []InputKind{InputRandom},
		Strategies: []Strategy{StrategyBulk},
		Seed:       DefaultSeed,
		Repeat:     1,
		Output:     OutputConfig{CSV: DefaultCSV},
	}
}

// LoadSuite reads a YAML suite file. Keys missing from the file keep their
// DefaultSuite values.
func LoadSuite(path string) (Suite, error) {
	suite := DefaultSuite()

	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite file: %w", err)
	}
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("failed to parse suite file: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

// Validate reports every problem with the suite at once.
func (s Suite) Validate() error {
	var result *multierror.Error

	if len(s.Sizes) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no sizes", ErrInvalidSuite))
	}
	for _, n := range s.Sizes {
		if n < 0 {
			result = multierror.Append(result, fmt.Errorf("%w: negative size %d", ErrInvalidSuite, n))
		}
	}
	if len(s.Inputs) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no inputs", ErrInvalidSuite))
	}
	for _, in := range s.Inputs {
		if !slices.Contains(AllInputs, in) {
			result = multierror.Append(result, fmt.Errorf("%w: %w: %q", ErrInvalidSuite, ErrUnknownInput, in))
		}
	}
	if len(s.Strategies) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no strategies", ErrInvalidSuite))
	}
	for _, st := range s.Strategies {
		if !slices.Contains(AllStrategies, st) {
			result = multierror.Append(result, fmt.Errorf("%w: %w: %q", ErrInvalidSuite, ErrUnknownStrategy, st))
		}
	}
	if s.Repeat < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalidSuite, s.Repeat))
	}

	return result.ErrorOrNil()
}
