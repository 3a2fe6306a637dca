package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	_exitFailure   = 1
	_exitViolation = 2
)

func main() {
	if err := _newRootCmd().Execute(); err != nil {
		eprintln(err)
		os.Exit(_exitCode(err))
	}
}

func _exitCode(err error) int {
	var violation *InvariantViolation
	if errors.As(err, &violation) {
		return _exitViolation
	}
	return _exitFailure
}

func _newRootCmd() *cobra.Command {
	var (
		configFile string
		verbosity  int
	)

	v := _newViper()

	cmd := &cobra.Command{
		Use:   "sensorgap [file]",
		Short: "Locate the position no sensor covers",
		Long: `sensorgap reads sensor reports, one per line:

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

from file or standard input, counts the positions on --row that cannot hold
a beacon, and prints the tuning frequency of the only uncovered position in
the square 0..2*row.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			SetupLogger(cmd.ErrOrStderr(), verbosity)

			c, err := LoadConfig(v, cmd.Flags(), configFile)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			readings, err := _loadReadings(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			log.Info().Int("sensors", len(readings)).Int("row", c.Row).Msg("loaded")

			result, err := Solve(readings, c.Row)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), c.Output, result)
		},
	}

	flags := cmd.Flags()
	flags.Int("row", _defaultRow, "row to count; the search square is 0..2*row")
	flags.StringP("output", "o", _defaultOutput, "output format (text, json, yaml)")
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	return cmd
}
