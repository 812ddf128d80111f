package cliplugins

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fsevents/internal/cli"
	"fsevents/internal/pipeline"
	"fsevents/internal/report"
	"fsevents/internal/util/logger/sl"
)

// InterpretCommand - корневая команда: читает трассу из stdin и печатает таблицу действий.
type InterpretCommand struct {
	cmd    *cobra.Command
	appCtx *cli.AppContext
}

func NewInterpretCommand(appCtx *cli.AppContext) *InterpretCommand {
	return &InterpretCommand{appCtx: appCtx}
}

func (i *InterpretCommand) Meta() *cobra.Command {
	if i.cmd != nil {
		return i.cmd
	}
	i.cmd = &cobra.Command{
		Use:   "fsevents",
		Short: "Interprets a filesystem event trace",
		Long: `Reads a trace of add/del records from stdin and prints the operations
they describe: Added, Deleted, Renamed or Moved.

Input: the first line holds the number of records, each following line is
  <add|del> <timestamp> <path> <signature>
where signature is an 8 character fingerprint or "-" for a directory.`,
		Args: cobra.NoArgs,
	}
	return i.cmd
}

func (i *InterpretCommand) Execute(cmd *cobra.Command, args []string) error {
	log := i.appCtx.Logger

	table := report.NewTable(cmd.OutOrStdout(), report.Config{
		Location: i.appCtx.Location,
		Color:    i.appCtx.Color,
	})
	tally := report.NewTally()

	table.PrintHeader()
	summary, err := pipeline.Run(cmd.InOrStdin(), report.Fanout(table, tally), pipeline.Config{Logger: log})
	if err != nil {
		return fmt.Errorf("failed to interpret trace: %w", err)
	}

	if err := table.Err(); err != nil {
		log.Error("report output failed", sl.Err(err))
	}

	log.Info("trace interpreted",
		slog.Int("accepted", summary.Accepted),
		slog.Int("dropped", len(summary.Rejections)),
		slog.Any("actions", tally.GetStats()),
		slog.Int64("suppressed", summary.Stats.Suppressed),
	)
	return nil
}
