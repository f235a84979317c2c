package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
)

// NewAddCommand returns the add subcommand
func NewAddCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the end of the list",
		Long: `Add a task to the end of the list.

Examples:
  # Human-readable output
  tasklist add "Buy milk"

  # Quiet mode for bash capture
  TASK_ID=$(tasklist add "Buy milk" --quiet)
`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, joinTitle(args))
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, opts *RootOptions, title string) error {
	f := newFormatter(cmd)

	return opts.withCLI(contextOf(cmd), func(c *CLI) error {
		task, err := c.List.AddTask(contextOf(cmd), title)
		if err != nil {
			return fail(f, err)
		}

		position := c.List.Len()
		human := fmt.Sprintf("%s %s %s",
			styles.SuccessStyle.Render("Added"),
			styles.IndexStyle.Render(fmt.Sprintf("%d.", position)),
			task.Title)
		return f.Success(toTaskJSON(task, position), human)
	})
}
