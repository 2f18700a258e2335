package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/app"
	"github.com/jsamuelsen/go-appstore/internal/domain"
)

// listViews maps each list view to the catalog report that renders it.
var listViews = map[string]func(c *app.Catalog) string{
	"all":          (*app.Catalog).ListAll,
	"summary":      (*app.Catalog).ListSummaries,
	"education":    func(c *app.Catalog) string { return c.ListByKind(domain.KindEducation) },
	"game":         func(c *app.Catalog) string { return c.ListByKind(domain.KindGame) },
	"productivity": func(c *app.Catalog) string { return c.ListByKind(domain.KindProductivity) },
	"recommended":  (*app.Catalog).ListRecommended,
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list [all|summary|education|game|productivity|recommended]",
		Short: "List apps",
		Long: `List the apps in the catalog with their index.

The default view prints every app in full. summary prints one line per app;
education, game and productivity restrict the listing to one kind;
recommended prints the apps that meet their kind's recommendation rule.

Examples:
  appstore list
  appstore list summary
  appstore list recommended`,
		Aliases:   []string{"ls"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"all", "summary", "education", "game", "productivity", "recommended"},
		RunE: func(cmd *cobra.Command, args []string) error {
			view := "all"
			if len(args) == 1 {
				view = args[0]
			}

			return s.view(cmd, func(_ context.Context, c *app.Catalog) error {
				writeReport(cmd, listViews[view](c))
				return nil
			})
		},
	}
}
