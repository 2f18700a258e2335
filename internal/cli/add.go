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

// addOptions holds the flags of the add command.
type addOptions struct {
	name        string
	developer   string
	size        float64
	version     float64
	cost        float64
	description string
	currency    string
	languages   []string
	level       int
	multiplayer bool
	genres      []string
}

func newAddCmd(s *session) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add <education|game|productivity>",
		Short: "Add an app to the catalog",
		Long: `Add an app published by a registered developer.

Size is in MB and must be between 1 and 1000, version must be at least 1.0
and cost must not be negative. Education apps need a level from 1 to 10;
games accept --multiplayer and any number of --genre flags.

Examples:
  appstore add education --name WeDo --developer Lego --size 1 --version 1.0 --cost 0 --level 3
  appstore add game --name Empires --developer Elephant --size 200 --version 2.0 --cost 2.99 --multiplayer --genre Strategy
  appstore add productivity --name Outlook --developer Microsoft --size 200 --version 2.0 --cost 1.99 --language English --language French`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.KindEducation), string(domain.KindGame), string(domain.KindProductivity)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			return s.update(cmd, func(ctx context.Context, c *app.Catalog) error {
				a, err := opts.build(c, kind)
				if err != nil {
					return err
				}

				if c.IsValidName(a.Name()) {
					return domain.NewConflictError("app", "an app named "+a.Name()+" already exists")
				}

				c.Add(a)
				logging.FromContext(ctx).InfoContext(ctx, "app added",
					slog.String("name", a.Name()),
					slog.String("kind", string(kind)),
				)
				writeLine(cmd, "Added "+strconv.Itoa(c.Count()-1)+": "+a.Summary())

				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "App name")
	f.StringVar(&opts.developer, "developer", "", "Name of a registered developer")
	f.Float64Var(&opts.size, "size", domain.MinSize, "Size in MB (1-1000)")
	f.Float64Var(&opts.version, "version", domain.DefaultVersion, "Version (at least 1.0)")
	f.Float64Var(&opts.cost, "cost", 0, "Cost (0 or more)")
	f.StringVar(&opts.description, "description", "", "Free-text description")
	f.StringVar(&opts.currency, "currency", domain.DefaultCurrencySymbol, "Currency symbol")
	f.StringSliceVar(&opts.languages, "language", nil, "Supported language (repeatable)")
	f.IntVar(&opts.level, "level", 0, "Education level (1-10, education only)")
	f.BoolVar(&opts.multiplayer, "multiplayer", false, "Multiplayer game (game only)")
	f.StringSliceVar(&opts.genres, "genre", nil, "Game genre (repeatable, game only)")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("developer")

	return cmd
}

// build validates the flags and constructs the app. Unlike the domain
// constructors, which ignore out-of-range values, it reports them.
func (o *addOptions) build(c *app.Catalog, kind domain.Kind) (domain.App, error) {
	dev, ok := c.Developers().GetByName(o.developer)
	if !ok {
		return nil, domain.NewNotFoundError("developer", o.developer)
	}

	if err := o.validate(kind); err != nil {
		return nil, err
	}

	var a domain.App

	switch kind {
	case domain.KindEducation:
		a = domain.NewEducationApp(dev, o.name, o.size, o.version, o.cost, o.level)
	case domain.KindGame:
		game := domain.NewGameApp(dev, o.name, o.size, o.version, o.cost, o.multiplayer)
		for _, name := range o.genres {
			g, err := domain.ParseGenre(name)
			if err != nil {
				return nil, err
			}

			game.AddGenre(g)
		}

		a = game
	default:
		a = domain.NewProductivityApp(dev, o.name, o.size, o.version, o.cost)
	}

	a.SetDescription(o.description)
	a.SetCurrencySymbol(o.currency)

	for _, l := range o.languages {
		a.AddLanguage(domain.Language(l))
	}

	return a, nil
}

func (o *addOptions) validate(kind domain.Kind) error {
	switch {
	case o.name == "":
		return domain.NewValidationError("name", "must not be empty")
	case !domain.ValidSize(o.size):
		return domain.NewValidationErrorWithValue("size", "must be between 1 and 1000 MB", o.size)
	case !domain.ValidVersion(o.version):
		return domain.NewValidationErrorWithValue("version", "must be at least 1.0", o.version)
	case !domain.ValidCost(o.cost):
		return domain.NewValidationErrorWithValue("cost", "must not be negative", o.cost)
	case kind == domain.KindEducation && !domain.ValidLevel(o.level):
		return domain.NewValidationErrorWithValue("level", "must be between 1 and 10", o.level)
	}

	return nil
}
