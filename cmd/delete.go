package cmd

import (
	"fmt"
	"strconv"

	"todoctl/internal/commands"

	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:     "delete [position]...",
		Aliases: []string{"rm"},
		Short:   "Delete tasks",
		Long: `Delete tasks selected by their position in 'todoctl list' or by exact text.
Each task is deleted through the link the API returned for it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, opts, args)
		},
	}

	deleteCmd.Flags().StringP("text", "t", "", "Delete every task with exactly this text")
	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return deleteCmd
}

func runDelete(cmd *cobra.Command, opts *rootOptions, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	yes, _ := cmd.Flags().GetBool("yes")

	positions := make([]int, 0, len(args))
	for _, arg := range args {
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid position %q: must be a number", arg)
		}
		positions = append(positions, pos)
	}

	app, err := opts.loadApp(cmd)
	if err != nil {
		return err
	}

	deleteCommand := commands.NewDeleteCommand(app.TaskClient, app.Confirmer, app.Logger)

	result, err := deleteCommand.Execute(cmd.Context(), commands.DeleteRequest{
		Positions: positions,
		Text:      text,
		Yes:       yes,
	})
	if result != nil {
		if result.Aborted {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		}
		for _, task := range result.Deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task: %s\n", task.Text)
		}
	}
	return err
}
