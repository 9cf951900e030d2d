package main

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		config string
		sc     = defaultScenario()
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "times insert, erase and successor workloads",
		Long: `Bench runs timed scenarios against a set implementation. A scenario
either comes from the command line flags or, with --config, from a TOML
file holding [[scenario]] tables. Successor answers are folded into an
xxhash checksum, so differently-timed runs stay comparable: two correct
implementations driven by the same seed print the same checksum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := []scenario{sc}
			if config != "" {
				var err error
				if scenarios, err = loadScenarios(config); err != nil {
					return err
				}
			} else if err := sc.validate(); err != nil {
				return errors.Wrap(err, "bad flags")
			}
			for i := range scenarios {
				res, err := runScenario(&scenarios[i])
				if err != nil {
					return err
				}
				printResult(cmd, &scenarios[i], res)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config, "config", "", "TOML file with [[scenario]] tables")
	flags.StringVar(&sc.Impl, "impl", sc.Impl, "implementation to time: veb or critbit")
	flags.IntVar(&sc.Universe, "universe", sc.Universe, "universe size")
	flags.IntVar(&sc.Inserts, "inserts", sc.Inserts, "random insert attempts")
	flags.IntVar(&sc.Erases, "erases", sc.Erases, "random erases")
	flags.IntVar(&sc.Successors, "successors", sc.Successors, "random successor queries")
	flags.Int64Var(&sc.Seed, "seed", sc.Seed, "random seed")

	return cmd
}

// result carries the timings and the successor checksum of one scenario.
type result struct {
	insert, erase, successor time.Duration
	checksum                 uint64
	len                      int
}

func runScenario(sc *scenario) (result, error) {
	var res result

	s, err := newImpl(sc.Impl, sc.Universe)
	if err != nil {
		return res, err
	}

	log := logrus.WithFields(logrus.Fields{"scenario": sc.Name, "impl": sc.Impl})
	log.Debug("scenario started")

	rng := rand.New(rand.NewSource(sc.Seed))

	start := time.Now()
	for i := 0; i < sc.Inserts; i++ {
		x := rng.Intn(sc.Universe)
		if !s.Has(x) {
			s.Add(x)
		}
	}
	res.insert = time.Since(start)

	start = time.Now()
	for i := 0; i < sc.Erases; i++ {
		s.Del(rng.Intn(sc.Universe))
	}
	res.erase = time.Since(start)

	var (
		h   = xxhash.New64()
		buf [8]byte
	)
	start = time.Now()
	for i := 0; i < sc.Successors; i++ {
		r := s.Successor(rng.Intn(sc.Universe))
		binary.LittleEndian.PutUint64(buf[:], uint64(r))
		h.Write(buf[:])
	}
	res.successor = time.Since(start)
	res.checksum = h.Sum64()
	res.len = s.Len()

	log.Debug("scenario finished")
	return res, nil
}

func printResult(cmd *cobra.Command, sc *scenario, res result) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"%-16s %-8s universe=%d inserts=%d/%v erases=%d/%v successors=%d/%v len=%d checksum=%016x\n",
		sc.Name, sc.Impl, sc.Universe,
		sc.Inserts, res.insert,
		sc.Erases, res.erase,
		sc.Successors, res.successor,
		res.len, res.checksum)
}
