package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/app"
	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/platform/logging"
)

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the app at an index",
		Long: `Delete the app at the index shown by "appstore list". Later apps move up
by one.

Examples:
  appstore delete 2`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return s.update(cmd, func(ctx context.Context, c *app.Catalog) error {
				a, ok := c.DeleteByIndex(index)
				if !ok {
					return domain.NewNotFoundError("app", args[0])
				}

				logging.FromContext(ctx).InfoContext(ctx, "app deleted",
					slog.Int("index", index),
					slog.String("name", a.Name()),
				)
				writeLine(cmd, "Deleted: "+a.Summary())

				return nil
			})
		},
	}
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show the full record of the app at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
				a, ok := c.GetByIndex(index)
				if !ok {
					return domain.NewNotFoundError("app", args[0])
				}

				writeLine(cmd, a.String())

				return nil
			})
		},
	}
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, domain.NewValidationErrorWithValue("index", "must be a whole number", arg)
	}

	return index, nil
}
