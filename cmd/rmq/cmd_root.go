package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	rmq "github.com/ArayikKarapetyan/Algorithms-for-computational-biology"
)

// app carries the flag values and the resolved configuration of one run.
type app struct {
	configPath string
	format     string
	index      string
	logLevel   string
	validate   bool
	input      string

	cfg    resolved
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rmq",
		Short: "Range minimum queries over a static array",
		Long: `Build a Cartesian-tree range minimum index over an array of numbers
and answer queries in constant time.

Input files hold one array encoded as json, msgpack or cbor.

Subcommands:
  query   - minimum of inclusive ranges
  lca     - lowest common ancestor of two positions in the Cartesian tree
  tree    - print the tree relations and the Euler tour
  verify  - cross-check random queries against a linear scan
  gen     - write a random input array

Examples:
  rmq gen -o values.json --n 1000 --max 100
  rmq query -i values.json 3 17 0 999
  rmq lca -i values.json 3 17
  rmq verify -i values.msgpack --format msgpack --index block`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.format, "format", "", "value encoding: json, msgpack or cbor")
	pf.StringVar(&a.index, "index", "", "range-min index: sparse or block")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.validate, "validate", false, "check index invariants after building")

	root.AddCommand(
		newQueryCmd(a),
		newLCACmd(a),
		newTreeCmd(a),
		newVerifyCmd(a),
		newGenCmd(a),
	)
	return root
}

// setup merges defaults, the config file and changed flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("index") {
		cfg.Index = a.index
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("validate") {
		cfg.Validate = a.validate
	}

	if a.cfg, err = cfg.resolve(); err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.level}))
	return nil
}

func (a *app) addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.input, "input", "i", "-", "input file, - for stdin")
}

// load decodes the input array and builds the index over it.
func (a *app) load(cmd *cobra.Command) (*rmq.CartesianRMQ[float64], error) {
	var r io.Reader = cmd.InOrStdin()
	if a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	vals, err := rmq.DecodeValues[float64](r, a.cfg.format)
	if err != nil {
		return nil, err
	}
	c, err := rmq.New(vals,
		rmq.WithLogger(a.logger),
		rmq.WithIndex(a.cfg.index),
		rmq.WithValidation(a.cfg.validate),
	)
	if err != nil {
		return nil, fmt.Errorf("build index from %s: %w", a.input, err)
	}
	a.logger.Info("index ready",
		"input", a.input,
		"size", c.Len(),
		"index", a.cfg.index.String(),
	)
	return c, nil
}
