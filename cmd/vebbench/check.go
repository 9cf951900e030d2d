package main

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-ds/veb/internal/oracle"
)

func newCheckCmd() *cobra.Command {
	var (
		impl     string
		universe int
		inserts  int
		rounds   int
		erases   int
		runs     int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "cross-checks a set implementation against the oracle",
		Long: `Check loads a set with random keys, then verifies a full-universe
Successor sweep against a one-bit-per-key table, erasing random members
between sweeps. Every run starts from a fresh set with a random load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if universe < 1 {
				return errors.Errorf("bad --universe %d: must be positive", universe)
			}
			if inserts < 1 {
				return errors.Errorf("bad --inserts %d: must be positive", inserts)
			}
			if rounds < 0 || erases < 0 || runs < 0 {
				return errors.New("--rounds, --erases and --runs must not be negative")
			}

			rng := rand.New(rand.NewSource(seed))
			for run := 0; run < runs; run++ {
				n := 1 + rng.Intn(inserts)
				if err := checkOnce(impl, universe, n, rounds, erases, rng); err != nil {
					return errors.Wrapf(err, "run %d", run)
				}
				logrus.WithFields(logrus.Fields{
					"run":      run,
					"impl":     impl,
					"universe": universe,
					"inserts":  n,
				}).Info("check passed")
			}
			logrus.Info("all checks passed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&impl, "impl", "veb", "implementation to check: veb or critbit")
	flags.IntVar(&universe, "universe", 5000, "universe size")
	flags.IntVar(&inserts, "inserts", 1000, "upper bound of keys loaded per run")
	flags.IntVar(&rounds, "rounds", 10, "successor sweeps per run")
	flags.IntVar(&erases, "erases", 20, "random erases between sweeps")
	flags.IntVar(&runs, "runs", 10, "independent runs")
	flags.Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// checkOnce loads one fresh set and sweeps it against the oracle.
func checkOnce(impl string, universe, inserts, rounds, erases int, rng *rand.Rand) error {
	s, err := newImpl(impl, universe)
	if err != nil {
		return err
	}

	var (
		tab  = oracle.New(universe)
		pool = make([]int, 0, inserts)
	)

	for i := 0; i < inserts; i++ {
		x := rng.Intn(universe)
		if s.Has(x) != tab.Has(x) {
			return errors.Errorf("Has(%d) disagrees with the oracle", x)
		}
		if s.Add(x) {
			pool = append(pool, x)
		}
		tab.Add(x)
	}
	if s.Len() != tab.Len() {
		return errors.Errorf("Len() = %d, oracle has %d", s.Len(), tab.Len())
	}

	for round := 0; round < rounds; round++ {
		for x := oracle.None; x < tab.Universe(); x++ {
			if got, want := s.Successor(x), tab.Successor(x); got != want {
				return errors.Errorf("round %d: Successor(%d) = %d, oracle says %d",
					round, x, got, want)
			}
		}

		// erase a few random members before the next sweep
		for i := 0; i < erases && len(pool) > 0; i++ {
			k := rng.Intn(len(pool))
			x := pool[k]
			pool[k] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]

			if !s.Del(x) {
				return errors.Errorf("round %d: Del(%d) reported the key absent", round, x)
			}
			tab.Del(x)
		}
	}

	return nil
}
