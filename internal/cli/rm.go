package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
)

// NewRemoveCommand returns the rm subcommand
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <row|id>",
		Aliases: []string{"delete"},
		Short:   "Remove a task",
		Long: `Remove a task chosen by its row number from 'tasklist list' or by its id.
Rows below it move up by one.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, opts, args[0])
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, opts *RootOptions, ref string) error {
	f := newFormatter(cmd)

	return opts.withCLI(contextOf(cmd), func(c *CLI) error {
		task, position, err := c.Resolve(ref)
		if err != nil {
			return fail(f, err)
		}

		if err := c.List.RemoveTask(contextOf(cmd), task); err != nil {
			return fail(f, err)
		}

		human := fmt.Sprintf("%s %s %s",
			styles.SuccessStyle.Render("Removed"),
			styles.IndexStyle.Render(fmt.Sprintf("%d.", position)),
			task.Title)
		return f.Success(toTaskJSON(task, position), human)
	})
}
