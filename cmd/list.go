package cmd

import (
	"fmt"
	"strings"

	"todoctl/internal/commands"
	"todoctl/internal/output"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Long:    `List the tasks of the configured collection in server order.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	listCmd.Flags().
		StringP("output", "o", output.FormatTable, "Output format ("+strings.Join(output.Formats, ", ")+")")

	return listCmd
}

func runList(cmd *cobra.Command, opts *rootOptions) error {
	format, _ := cmd.Flags().GetString("output")
	if !output.IsValidFormat(format) {
		return fmt.Errorf("invalid output format %q (expected one of: %s)", format, strings.Join(output.Formats, ", "))
	}

	app, err := opts.loadApp(cmd)
	if err != nil {
		return err
	}

	// Create list command with injected dependencies
	listCommand := commands.NewListCommand(app.TaskClient, app.Logger)

	result, err := listCommand.Execute(cmd.Context(), commands.ListRequest{})
	if err != nil {
		return err
	}

	return output.WriteTasks(cmd.OutOrStdout(), format, result.Tasks)
}
