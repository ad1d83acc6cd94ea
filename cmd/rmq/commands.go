package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	rmq "github.com/ArayikKarapetyan/Algorithms-for-computational-biology"
)

func newQueryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query L R [L R ...]",
		Short: "Print the minimum of each inclusive range [L, R]",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return errors.New("query needs pairs of positions L R")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePositions(args)
			if err != nil {
				return err
			}
			c, err := a.load(cmd)
			if err != nil {
				return err
			}
			mins := make([]float64, 0, len(pos)/2)
			for k := 0; k < len(pos); k += 2 {
				v, err := c.Query(pos[k], pos[k+1])
				if err != nil {
					return err
				}
				mins = append(mins, v)
			}
			lines := lo.Map(mins, func(v float64, k int) string {
				return fmt.Sprintf("%d %d %s", pos[2*k], pos[2*k+1], formatValue(v))
			})
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	}
	a.addInputFlag(cmd)
	return cmd
}

func newLCACmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lca U V",
		Short: "Print the lowest common ancestor of positions U and V",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePositions(args)
			if err != nil {
				return err
			}
			c, err := a.load(cmd)
			if err != nil {
				return err
			}
			node, err := c.LCA(pos[0], pos[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), node)
			return nil
		},
	}
	a.addInputFlag(cmd)
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the Cartesian tree relations and its Euler tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "root %d\n", c.Root())
			fmt.Fprintln(out, "pos value parent left right first")
			for i := 0; i < c.Len(); i++ {
				fmt.Fprintf(out, "%d %s %d %d %d %d\n",
					i, formatValue(c.Lookup(i)), c.Parent(i), c.Left(i), c.Right(i), c.FirstVisit(i))
			}
			fmt.Fprintf(out, "tour %s\n", joinInts(c.Tour()))
			fmt.Fprintf(out, "depth %s\n", joinInts(c.Depths()))
			return nil
		},
	}
	a.addInputFlag(cmd)
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var samples int
	var seed int64
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Validate the index and cross-check random queries against a linear scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.load(cmd)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			n := c.Len()
			for k := 0; k < samples; k++ {
				l := rng.Intn(n)
				r := l + rng.Intn(n-l)
				got, err := c.Query(l, r)
				if err != nil {
					return err
				}
				want := c.Lookup(l)
				for i := l + 1; i <= r; i++ {
					want = min(want, c.Lookup(i))
				}
				if got != want {
					return fmt.Errorf("query(%d, %d) = %s, linear scan gives %s", l, r, formatValue(got), formatValue(want))
				}
			}
			a.logger.Debug("verify finished", "samples", samples, "seed", seed)
			fmt.Fprintf(cmd.OutOrStdout(), "ok %d values %d samples\n", n, samples)
			return nil
		},
	}
	a.addInputFlag(cmd)
	cmd.Flags().IntVar(&samples, "samples", 1000, "number of random ranges to check")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func newGenCmd(a *app) *cobra.Command {
	var (
		output string
		n      int
		maxVal int64
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random input array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 || maxVal <= 0 {
				return errors.New("gen needs --n > 0 and --max > 0")
			}
			rng := rand.New(rand.NewSource(seed))
			vals := make([]float64, n)
			for i := range vals {
				vals[i] = float64(rng.Int63n(maxVal))
			}

			w := cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := rmq.EncodeValues(w, a.cfg.format, vals); err != nil {
				return err
			}
			a.logger.Info("values written", "output", output, "n", n, "format", a.cfg.format.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&n, "n", 1000, "number of values")
	cmd.Flags().Int64Var(&maxVal, "max", 1000, "values are drawn from [0, max)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func parsePositions(args []string) ([]int, error) {
	pos := make([]int, len(args))
	for i, s := range args {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", s, err)
		}
		pos[i] = p
	}
	return pos, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinInts(xs []int) string {
	return strings.Join(lo.Map(xs, func(x int, _ int) string {
		return strconv.Itoa(x)
	}), " ")
}
