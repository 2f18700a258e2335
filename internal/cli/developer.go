package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/app"
	"github.com/jsamuelsen/go-appstore/internal/domain"
)

func newDeveloperCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "developer",
		Short:   "Manage registered developers",
		Aliases: []string{"dev"},
		Long: `Manage the developers that apps can be published by. Developer names are
matched ignoring case.

Examples:
  appstore developer add Lego www.lego.com
  appstore developer list
  appstore developer update Lego www.lego.co.uk
  appstore developer remove Lego`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <website>",
			Short: "Register a developer",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.update(cmd, func(_ context.Context, c *app.Catalog) error {
					if !c.Developers().Add(domain.NewDeveloper(args[0], args[1])) {
						return domain.NewConflictError("developer", "a developer named "+args[0]+" is already registered")
					}

					writeLine(cmd, "Registered developer "+args[0])

					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "list",
			Short:   "List registered developers",
			Aliases: []string{"ls"},
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
					writeReport(cmd, c.Developers().List())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "update <name> <website>",
			Short: "Change a developer's website",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.update(cmd, func(_ context.Context, c *app.Catalog) error {
					if !c.Developers().UpdateWebsite(args[0], args[1]) {
						return domain.NewNotFoundError("developer", args[0])
					}

					writeLine(cmd, "Updated developer "+args[0])

					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "remove <name>",
			Short:   "Unregister a developer; apps keep their developer",
			Aliases: []string{"rm"},
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.update(cmd, func(_ context.Context, c *app.Catalog) error {
					dev, ok := c.Developers().Remove(args[0])
					if !ok {
						return domain.NewNotFoundError("developer", args[0])
					}

					writeLine(cmd, "Removed developer "+dev.String())

					return nil
				})
			},
		},
	)

	return cmd
}
