package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
)

// NewRenameCommand returns the rename subcommand
func NewRenameCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <row|id> <title>",
		Short: "Change a task's title",
		Long: `Change a task's title. The task is chosen by its row number from
'tasklist list' or by its id (a unique prefix is enough).

Examples:
  tasklist rename 2 "Walk the dog"
  tasklist rename 3f2a "Walk the dog" --json
`,
		Args: usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, opts, args[0], joinTitle(args[1:]))
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, opts *RootOptions, ref, title string) error {
	f := newFormatter(cmd)

	return opts.withCLI(contextOf(cmd), func(c *CLI) error {
		task, position, err := c.Resolve(ref)
		if err != nil {
			return fail(f, err)
		}

		if err := c.List.RenameTask(contextOf(cmd), task, title); err != nil {
			return fail(f, err)
		}

		renamed := c.List.At(position - 1)
		human := fmt.Sprintf("%s %s %s",
			styles.SuccessStyle.Render("Renamed"),
			styles.IndexStyle.Render(fmt.Sprintf("%d.", position)),
			renamed.Title)
		return f.Success(toTaskJSON(renamed, position), human)
	})
}
