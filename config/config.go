// Package config loads a combination session from YAML.
//
//	mode: and
//	tolerance: 1
//	max_cycles: 0
//	num_designs: 20
//	designs:
//	  - name: circuit
//	    source: promoter . cds . terminator
//	    categories:
//	      promoter: {promoter: [pLac, pTet]}
//	      cds:      {cds: [gfp]}
//
// Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/combine"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid session")

// DefaultNumDesigns is used when num_designs is omitted.
const DefaultNumDesigns = 10

// DesignSpec is one named design of the session.
type DesignSpec struct {
	Name       string       `yaml:"name"`
	Source     string       `yaml:"source"`
	Categories category.Map `yaml:"categories,omitempty"`
}

// Session is the decoded session file.
type Session struct {
	Mode       combine.Mode      `yaml:"mode"`
	Tolerance  combine.Tolerance `yaml:"tolerance"`
	MaxCycles  int               `yaml:"max_cycles"`
	NumDesigns int               `yaml:"num_designs"`
	Designs    []DesignSpec      `yaml:"designs"`
}

// Load reads and validates the session at path.
func Load(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the session file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Parse decodes and validates a session held in memory.
func Parse(data []byte) (*Session, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r, applies defaults and validates it.
func Decode(r io.Reader) (*Session, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Session
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if s.NumDesigns == 0 {
		s.NumDesigns = DefaultNumDesigns
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the session. A single design is allowed: it is compiled
// and enumerated without combination, and mode may then be omitted.
func (s *Session) Validate() error {
	var problems []string
	if len(s.Designs) == 0 {
		problems = append(problems, "no designs")
	}
	if len(s.Designs) > 1 && !s.Mode.Valid() {
		problems = append(problems, "mode must be and or merge")
	}
	if err := s.Tolerance.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if s.MaxCycles < 0 {
		problems = append(problems, "max_cycles must be >= 0")
	}
	if s.NumDesigns < 0 {
		problems = append(problems, "num_designs must be >= 0")
	}
	seen := make(map[string]struct{}, len(s.Designs))
	for i, d := range s.Designs {
		switch {
		case strings.TrimSpace(d.Name) == "":
			problems = append(problems, fmt.Sprintf("designs[%d]: name is required", i))
		case strings.TrimSpace(d.Source) == "":
			problems = append(problems, fmt.Sprintf("designs[%d] %q: source is required", i, d.Name))
		}
		if _, dup := seen[d.Name]; dup && d.Name != "" {
			problems = append(problems, fmt.Sprintf("designs[%d]: duplicate name %q", i, d.Name))
		}
		seen[d.Name] = struct{}{}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
