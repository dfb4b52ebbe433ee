package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cryptovault/cryptovault"
)

var sweepGrace time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep <dir>",
	Short: "Remove stale \".tmp-*\" files left behind by a crashed prior run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(false)
		engine := cryptovault.New()
		removed, err := engine.SweepStaleTempFiles(args[0], sweepGrace)
		if err != nil {
			return err
		}
		for _, path := range removed {
			log.Info().Str("path", path).Msg("removed stale temp file")
		}
		return nil
	},
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepGrace, "grace", time.Hour, "minimum age before a temp file is considered stale")
	rootCmd.AddCommand(sweepCmd)
}
