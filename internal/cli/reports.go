package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/app"
)

func newSortCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort the catalog by app name",
		Long: `Sort the apps by name in ascending order and save the new order. Names
are compared byte by byte, so upper case sorts before lower case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.update(cmd, func(_ context.Context, c *app.Catalog) error {
				c.SortByNameAscending()
				writeReport(cmd, c.ListSummaries())

				return nil
			})
		},
	}
}

func newSimulateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Add one simulated rating to every app",
		Long: `Add one generated rating to every app and save the catalog. Pass --seed
to make the generated ratings reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.update(cmd, func(ctx context.Context, c *app.Catalog) error {
				if c.Count() == 0 {
					writeLine(cmd, "No apps")
					return nil
				}

				if err := c.SimulateRatings(ctx); err != nil {
					return err
				}

				writeReport(cmd, c.ListSummaries())

				return nil
			})
		},
	}
}

func newRandomCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "random",
		Short:   "Pick the app of the day",
		Aliases: []string{"app-of-the-day"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
				a, ok := c.RandomApp()
				if !ok {
					writeLine(cmd, "No apps")
					return nil
				}

				writeLine(cmd, a.String())

				return nil
			})
		},
	}
}

func newCountCmd(s *session) *cobra.Command {
	var developer string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the apps, optionally for one developer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
				if developer == "" {
					writeLine(cmd, strconv.Itoa(c.Count()))
					return nil
				}

				dev, err := findDeveloper(c, developer)
				if err != nil {
					return err
				}

				writeLine(cmd, strconv.Itoa(c.CountByDeveloper(dev)))

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&developer, "developer", "", "Only count apps by this developer")

	return cmd
}
