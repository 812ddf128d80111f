package cliplugins

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fsevents/internal/cli"
	"fsevents/internal/reader"
	"fsevents/internal/util/logger/sl"
)

// ValidateCommand выводит строки трассы, которые будут отброшены, и причину.
type ValidateCommand struct {
	cmd    *cobra.Command
	appCtx *cli.AppContext
}

func NewValidateCommand(appCtx *cli.AppContext) *ValidateCommand {
	return &ValidateCommand{appCtx: appCtx}
}

func (v *ValidateCommand) Meta() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}
	v.cmd = &cobra.Command{
		Use:   "validate",
		Short: "Lists trace lines that would be dropped",
		Long:  "Reads a trace from stdin and reports every malformed or out-of-order line with its reason.",
		Args:  cobra.NoArgs,
	}
	return v.cmd
}

func (v *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	reason := color.New(color.FgRed)
	if v.appCtx.Color {
		reason.EnableColor()
	} else {
		reason.DisableColor()
	}

	r := reader.NewReader(cmd.InOrStdin(), reader.Config{Logger: v.appCtx.Logger})
	accepted := 0
	var readErr error
	for {
		_, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			v.appCtx.Logger.Error("trace read failed", sl.Err(err))
			readErr = err
			break
		}
		accepted++
	}

	for _, rej := range r.Rejections() {
		fmt.Fprintf(out, "line %d: %s: %q\n", rej.Line, reason.Sprint(rej.Err.Error()), rej.Text)
	}
	if readErr != nil {
		fmt.Fprintf(out, "input truncated: %s\n", reason.Sprint(readErr.Error()))
	}
	fmt.Fprintf(out, "%d accepted, %d dropped\n", accepted, len(r.Rejections()))
	return nil
}
