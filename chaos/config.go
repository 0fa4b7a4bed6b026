package chaos

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config mirrors Options with YAML field names, for callers that load
// engine parameters from configuration documents:
//
//	vertex_count: 5
//	rule: r4
//	ratio: 0.5
//	seed: 42
type Config struct {
	VertexCount int     `yaml:"vertex_count"`
	Rule        Rule    `yaml:"rule"`
	Ratio       float64 `yaml:"ratio"`
	Interpolate bool    `yaml:"interpolate"`
	Seed        int64   `yaml:"seed"`
}

// ParseConfig decodes a YAML document into validated engine Options.
// Absent fields keep their defaults; unknown fields are rejected.
// An empty document yields DefaultOptions().
//
// Errors:
//   - ErrBadConfig      — undecodable YAML or unknown fields.
//   - ErrUnknownRule    — rule name outside r0..r4.
//   - ErrTooFewVertices — vertex_count below 3.
func ParseConfig(data []byte) (Options, error) {
	cfg := Config{
		VertexCount: DefaultVertexCount,
		Rule:        R0,
		Ratio:       DefaultRatio,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrUnknownRule) {
			return Options{}, err
		}

		return Options{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	opts := DefaultOptions()
	opts.VertexCount = cfg.VertexCount
	opts.Rule = cfg.Rule
	opts.Ratio = cfg.Ratio
	opts.Interpolate = cfg.Interpolate
	opts.Seed = cfg.Seed

	if err := opts.validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}
