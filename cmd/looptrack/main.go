package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"looptrack/internal/interpreter"
	"looptrack/internal/logging"
)

func newRootCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "looptrack",
		Short: "Count origin visits of L/R commands on a circular track",
		Long: `looptrack reads one command per line from stdin, such as L68 or R14,
and walks a 100 position track starting at 50. It prints how many commands
ended on position 0 (Part 1) and how many single steps landed on it (Part 2).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tally, err := interpreter.Simulate(cmd.InOrStdin(), log)
			if err != nil {
				return err
			}
			return interpreter.Report(cmd.OutOrStdout(), tally)
		},
	}
}

func main() {
	log := logging.New(os.Stderr, zapcore.WarnLevel)
	defer log.Sync()

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error("looptrack failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
