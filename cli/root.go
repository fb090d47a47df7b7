package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the hamcycle command. Input, output and error streams
// default to the process stdio and can be replaced with SetIn/SetOut/SetErr.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:   "hamcycle",
		Short: "Find the minimum-cost Hamiltonian cycle of a complete directed graph by branch and bound.",
		Long: `hamcycle reads an N×N cost matrix (one row per line, whitespace-separated
integers) and prints the cheapest tour that visits every vertex exactly once and
returns to the start vertex. Vertices are numbered from 1.`,
		Args:         cobra.NoArgs,
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	input.bindFlags(rootCmd.Flags())

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.configPath != "" {
			cfg, err := LoadConfig(input.configPath)
			if err != nil {
				return err
			}
			cfg.apply(input, cmd.Flags())
		}
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		log.WithFields(log.Fields{
			"file":   input.matrixFile,
			"start":  input.start,
			"bound":  input.bound,
			"output": input.output,
		}).Debug("resolved settings")

		bound, err := tsp.ParseBoundPolicy(input.bound)
		if err != nil {
			return err
		}
		if err = checkOutput(input.output); err != nil {
			return err
		}

		m, err := matrix.LoadFile(input.matrixFile)
		if err != nil {
			if errors.Is(err, matrix.ErrMissingInput) {
				log.Errorf("Matrix file %s not found. Put it next to the program or pass --file.", input.matrixFile)
			}

			return err
		}
		n := m.Order()
		log.Debugf("loaded %d×%d cost matrix from %s", n, n, input.matrixFile)
		if n == 0 {
			return errors.Wrapf(tsp.ErrEmptyMatrix, "%s", input.matrixFile)
		}

		start, err := resolveStart(input.start, n, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
		if err != nil {
			return err
		}

		res, err := tsp.Solve(ctx, m, tsp.Options{
			StartVertex: start - 1,
			Bound:       bound,
			TimeLimit:   input.timeLimit,
		})
		if err != nil {
			return errors.Wrap(err, "searching")
		}
		log.WithFields(log.Fields{
			"bound":        res.Bound,
			"nodes":        res.Stats.Nodes,
			"pruned":       res.Stats.Pruned,
			"leaves":       res.Stats.Leaves,
			"improvements": res.Stats.Improvements,
		}).Debug("search finished")

		var verified *bool
		if input.verify {
			ok, err := crossCheck(m, res.Tour)
			if err != nil {
				return err
			}
			verified = ok
		}

		return render(cmd.OutOrStdout(), input.output, newReport(n, res, verified))
	}
}

// resolveStart returns a 1-based start vertex: the flag value when it is in
// range, otherwise whatever the prompter gets from the user.
func resolveStart(flagValue, n int, p Prompter) (int, error) {
	if flagValue >= 1 && flagValue <= n {
		return flagValue, nil
	}
	if flagValue != 0 {
		log.Warnf("--start %d is not between 1 and %d", flagValue, n)
	}

	return p.AskStartVertex(n)
}

// crossCheck recomputes the optimal cost with Held–Karp. It returns nil (no
// verdict) when the instance is too large for the DP.
func crossCheck(m *matrix.Matrix[int64], tour tsp.Tour[int64]) (*bool, error) {
	if m.Order() > tsp.HeldKarpMaxVertices {
		log.Warnf("skipping --verify: %d vertices exceed the Held-Karp limit of %d", m.Order(), tsp.HeldKarpMaxVertices)

		return nil, nil
	}
	hk, err := tsp.HeldKarp(m, tour.Route[0])
	if err != nil {
		return nil, errors.Wrap(err, "cross-check")
	}
	if hk.Cost != tour.Cost {
		return nil, errors.Wrapf(ErrVerifyMismatch, "branch and bound %d, Held-Karp %d", tour.Cost, hk.Cost)
	}
	log.Debugf("Held-Karp agrees on cost %d", hk.Cost)
	ok := true

	return &ok, nil
}
