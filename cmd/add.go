package cmd

import (
	"fmt"
	"strings"

	"todoctl/internal/commands"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Create a new task",
		Long:  `Create a new task. All arguments are joined with spaces to form the task text.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, strings.Join(args, " "))
		},
	}
}

func runAdd(cmd *cobra.Command, opts *rootOptions, text string) error {
	app, err := opts.loadApp(cmd)
	if err != nil {
		return err
	}

	addCommand := commands.NewAddCommand(app.TaskClient, app.Logger)

	result, err := addCommand.Execute(cmd.Context(), commands.AddRequest{Text: text})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task: %s\n", result.Task.Text)
	if href := result.Task.SelfHref(); href != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "   Link: %s\n", href)
	}
	return nil
}
