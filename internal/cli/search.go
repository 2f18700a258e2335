package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/app"
	"github.com/jsamuelsen/go-appstore/internal/domain"
)

func newSearchCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search apps by name, developer or rating",
		Long: `Search the catalog.

Examples:
  # Apps named NoteKeeper, ignoring case
  appstore search name notekeeper

  # Apps published by a developer
  appstore search developer Lego

  # Apps rated 4 stars or above
  appstore search rating 4`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "name <name>",
			Short: "List apps with this name, ignoring case",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
					writeReport(cmd, c.ListByName(args[0]))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "developer <name>",
			Short: "List apps published by a developer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
					dev, err := findDeveloper(c, args[0])
					if err != nil {
						return err
					}

					writeReport(cmd, c.ListByDeveloper(dev))

					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rating <stars>",
			Short: "List apps whose aggregate rating is at least stars (1-5)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				stars, err := strconv.Atoi(args[0])
				if err != nil || !domain.ValidStars(stars) {
					return domain.NewValidationErrorWithValue("stars", "must be a whole number from 1 to 5", args[0])
				}

				return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
					writeReport(cmd, c.ListByMinRating(stars))
					return nil
				})
			},
		},
	)

	return cmd
}

// findDeveloper resolves a developer by name, first in the registry and then
// among the developers referenced by apps.
func findDeveloper(c *app.Catalog, name string) (*domain.Developer, error) {
	if dev, ok := c.Developers().GetByName(name); ok {
		return dev, nil
	}

	for _, a := range c.Apps() {
		if dev := a.Developer(); dev != nil && strings.EqualFold(dev.Name(), name) {
			return dev, nil
		}
	}

	return nil, domain.NewNotFoundError("developer", name)
}
