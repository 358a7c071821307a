package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/combine"
	"github.com/katalvlaran/constellation/config"
	"github.com/katalvlaran/constellation/design"
	"github.com/katalvlaran/constellation/stategraph"
)

// cliFlags holds every flag value of one command tree.
type cliFlags struct {
	logLevel   string
	logFormat  string
	format     string
	withGraph  bool
	maxCycles  int
	numDesigns int

	// compile
	name       string
	categories string

	// combine
	sessionFile string
	mode        string
	tolerance   int
}

// report is what both commands print.
type report struct {
	Name       string                         `yaml:"name" json:"name"`
	Source     string                         `yaml:"source,omitempty" json:"source,omitempty"`
	States     int                            `yaml:"states" json:"states"`
	Edges      int                            `yaml:"edges" json:"edges"`
	Paths      [][]string                     `yaml:"paths" json:"paths"`
	Designs    [][]string                     `yaml:"designs" json:"designs"`
	Categories map[string]map[string][]string `yaml:"categories,omitempty" json:"categories,omitempty"`
	Steps      []combine.StepStats            `yaml:"steps,omitempty" json:"steps,omitempty"`
	Graph      []stategraph.State[string]     `yaml:"graph,omitempty" json:"graph,omitempty"`
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	f := &cliFlags{}
	var logger *slog.Logger

	rootCmd := &cobra.Command{
		Use:   "constellation",
		Short: "Compile and combine genetic design specifications",
		Long: `constellation turns design specifications written in a small
regular language into state graphs, combines several of them with AND or
MERGE, and enumerates the designs the result accepts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f.format != "yaml" && f.format != "json" {
				return fmt.Errorf("unknown output format %q (want yaml or json)", f.format)
			}
			logger = newLogger(f.logLevel, f.logFormat, errOut)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&f.format, "format", "yaml", "output format: yaml or json")
	pf.BoolVar(&f.withGraph, "graph", false, "include the state graph in the output")
	pf.IntVar(&f.maxCycles, "max-cycles", 0, "how often one edge may repeat on an enumerated path")
	pf.IntVar(&f.numDesigns, "num-designs", config.DefaultNumDesigns, "maximum number of designs to print (0 = all)")

	compileCmd := &cobra.Command{
		Use:   "compile [specification]",
		Short: "Compile one design specification and enumerate its designs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := loadCategories(f.categories)
			if err != nil {
				return err
			}
			d, err := design.Compile(f.name, args[0], cats,
				design.WithLogger(logger),
				design.WithMaxCycles(f.maxCycles),
			)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, d, f.numDesigns)
		},
	}
	compileCmd.Flags().StringVar(&f.name, "name", "design", "design name")
	compileCmd.Flags().StringVarP(&f.categories, "categories", "c", "", "YAML file mapping atoms to {role: [members]}")

	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine the designs of a session file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(f.sessionFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if s.Mode, err = combine.ParseMode(f.mode); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("tolerance") {
				s.Tolerance = combine.Tolerance(f.tolerance)
			}
			if !cmd.Flags().Changed("max-cycles") {
				f.maxCycles = s.MaxCycles
			}
			if !cmd.Flags().Changed("num-designs") {
				f.numDesigns = s.NumDesigns
			}
			if err = s.Validate(); err != nil {
				return err
			}

			d, err := runSession(s, f, logger)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, d, f.numDesigns)
		},
	}
	combineCmd.Flags().StringVarP(&f.sessionFile, "file", "f", "session.yaml", "session file")
	combineCmd.Flags().StringVar(&f.mode, "mode", "", "override the session mode: and or merge")
	combineCmd.Flags().IntVar(&f.tolerance, "tolerance", 0, "override the session tolerance (0-2)")

	rootCmd.AddCommand(compileCmd, combineCmd)

	return rootCmd
}

// runSession compiles every design of s and, when there are several,
// combines them in file order.
func runSession(s *config.Session, f *cliFlags, logger *slog.Logger) (*design.Design, error) {
	opts := []design.Option{
		design.WithLogger(logger),
		design.WithMaxCycles(f.maxCycles),
	}
	compiled := make([]*design.Design, 0, len(s.Designs))
	for _, spec := range s.Designs {
		d, err := design.Compile(spec.Name, spec.Source, spec.Categories, opts...)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, d)
	}
	if len(compiled) == 1 {
		return compiled[0], nil
	}

	combined, err := design.Combine(s.Mode, compiled, s.Tolerance, opts...)
	if err != nil {
		return nil, err
	}
	if combined.Empty() {
		logger.Warn("no design satisfies the combination", "mode", s.Mode.String(), "tolerance", int(s.Tolerance))
	}

	return combined, nil
}

func loadCategories(path string) (category.Map, error) {
	if path == "" {
		return category.Map{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the categories file: %w", err)
	}
	cats := category.Map{}
	if err = yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("failed to parse the categories file: %w", err)
	}

	return cats, nil
}

func emit(w io.Writer, f *cliFlags, d *design.Design, limit int) error {
	r := report{
		Name:       d.Name,
		Source:     d.Source,
		Paths:      d.Paths,
		Designs:    d.Designs(limit),
		Categories: d.Categories.ToPlain(),
		Steps:      d.Steps,
	}
	if r.Paths == nil {
		r.Paths = [][]string{}
	}
	if r.Designs == nil {
		r.Designs = [][]string{}
	}
	if d.Graph != nil {
		r.States, r.Edges = d.Graph.Len(), d.Graph.EdgeCount()
		if f.withGraph {
			r.Graph = d.Graph.States()
		}
	}

	if f.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}
