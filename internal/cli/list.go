package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCommand returns the list subcommand
func NewListCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list",
		Long: `Print every task in list order, one per line, prefixed with its row number.
Row numbers are what rename and rm accept.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().Bool("ids", false, "Include task ids in human-readable output")

	return cmd
}

func runList(cmd *cobra.Command, opts *RootOptions) error {
	f := newFormatter(cmd)
	showIDs, _ := cmd.Flags().GetBool("ids")

	return opts.withCLI(contextOf(cmd), func(c *CLI) error {
		tasks := c.List.Tasks()

		if f.Quiet {
			for _, task := range tasks {
				if _, err := fmt.Fprintln(f.Out, task.ID); err != nil {
					return err
				}
			}
			return nil
		}

		if f.JSON {
			data := make([]taskJSON, len(tasks))
			for i, task := range tasks {
				data[i] = toTaskJSON(task, i+1)
			}
			return f.Success(data, "")
		}

		// Plain text so the output stays pipeable
		if len(tasks) == 0 {
			_, err := fmt.Fprintln(f.Out, "No tasks.")
			return err
		}

		var b strings.Builder
		for i, task := range tasks {
			if showIDs {
				fmt.Fprintf(&b, "%d. %s  %s\n", i+1, task.ID, task.Title)
			} else {
				fmt.Fprintf(&b, "%d. %s\n", i+1, task.Title)
			}
		}
		_, err := fmt.Fprint(f.Out, b.String())
		return err
	})
}
