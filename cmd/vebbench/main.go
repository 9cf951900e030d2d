// Command vebbench drives the ordered integer sets: it cross-checks them
// against a linear-scan oracle and times insert/erase/successor workloads.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(Main())
}

// Main runs the tool and returns the code for passing to os.Exit.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vebbench",
		Short: "vebbench exercises and times the ordered integer sets",
		Long: `vebbench drives the Van Emde Boas set through correctness checks
against a linear-scan oracle and through timed scenarios, optionally
side by side with the crit-bit baseline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	addGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newCheckCmd(),
		newBenchCmd(),
	)

	return cmd
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.String("log-level", "info", "logging level: debug, info, warn or error")
}

func setupLogging(cmd *cobra.Command) error {
	name, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(err, "bad --log-level %q", name)
	}
	logrus.SetLevel(level)
	return nil
}
