// Package app contains the application services that implement the catalog
// use cases on top of the domain model and the ports.
package app

import (
	"cmp"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/ports"
)

// Catalog owns the ordered collection of apps and implements every query,
// report, sort and persistence operation over it. It is not safe for
// concurrent use.
type Catalog struct {
	apps       []domain.App
	store      ports.CatalogStore
	random     ports.RandomSource
	ratings    ports.RatingGenerator
	developers *DeveloperRegistry
	logger     *slog.Logger
}

// CatalogConfig contains the collaborators of a catalog.
type CatalogConfig struct {
	// Store persists the catalog. Optional; Save and Load fail without it.
	Store ports.CatalogStore

	// Random drives RandomApp. Required.
	Random ports.RandomSource

	// Ratings drives SimulateRatings. Optional.
	Ratings ports.RatingGenerator

	// Developers is the registry saved and loaded with the apps.
	// A fresh registry is created when nil.
	Developers *DeveloperRegistry

	Logger *slog.Logger
}

// NewCatalog creates an empty catalog. It panics if cfg.Random is nil.
func NewCatalog(cfg CatalogConfig) *Catalog {
	if cfg.Random == nil {
		panic("app: CatalogConfig.Random is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	developers := cfg.Developers
	if developers == nil {
		developers = NewDeveloperRegistry(DeveloperRegistryConfig{Logger: logger})
	}

	return &Catalog{
		store:      cfg.Store,
		random:     cfg.Random,
		ratings:    cfg.Ratings,
		developers: developers,
		logger:     logger.With(slog.String("component", "catalog")),
	}
}

// Developers returns the registry attached to the catalog.
func (c *Catalog) Developers() *DeveloperRegistry {
	return c.developers
}

// Add appends app to the catalog. A nil app is refused.
func (c *Catalog) Add(app domain.App) bool {
	if app == nil {
		return false
	}

	c.apps = append(c.apps, app)
	c.logger.Debug("app added",
		slog.String("name", app.Name()),
		slog.String("kind", string(app.Kind())),
	)

	return true
}

// DeleteByIndex removes and returns the app at i.
func (c *Catalog) DeleteByIndex(i int) (domain.App, bool) {
	if !c.IsValidIndex(i) {
		return nil, false
	}

	app := c.apps[i]
	c.apps = slices.Delete(c.apps, i, i+1)
	c.logger.Debug("app deleted", slog.Int("index", i), slog.String("name", app.Name()))

	return app, true
}

// GetByIndex returns the app at i.
func (c *Catalog) GetByIndex(i int) (domain.App, bool) {
	if !c.IsValidIndex(i) {
		return nil, false
	}

	return c.apps[i], true
}

// GetByName returns the first app whose name matches ignoring case.
func (c *Catalog) GetByName(name string) (domain.App, bool) {
	i := slices.IndexFunc(c.apps, func(a domain.App) bool {
		return strings.EqualFold(a.Name(), name)
	})
	if i < 0 {
		return nil, false
	}

	return c.apps[i], true
}

// Count returns the number of apps.
func (c *Catalog) Count() int {
	return len(c.apps)
}

// Apps returns the apps in catalog order.
func (c *Catalog) Apps() []domain.App {
	return slices.Clone(c.apps)
}

// IsValidIndex reports whether i addresses an app.
func (c *Catalog) IsValidIndex(i int) bool {
	return i >= 0 && i < len(c.apps)
}

// IsValidName reports whether some app has exactly this name. Unlike
// GetByName the comparison is case-sensitive.
func (c *Catalog) IsValidName(name string) bool {
	return slices.ContainsFunc(c.apps, func(a domain.App) bool {
		return a.Name() == name
	})
}

// ListAll renders the full record of every app.
func (c *Catalog) ListAll() string {
	return c.report(all, domain.App.String, "No apps")
}

// ListSummaries renders the one-line summary of every app.
func (c *Catalog) ListSummaries() string {
	return c.report(all, domain.App.Summary, "No apps")
}

// ListByKind renders every app of the given kind.
func (c *Catalog) ListByKind(kind domain.Kind) string {
	return c.report(
		func(a domain.App) bool { return a.Kind() == kind },
		domain.App.String,
		"No "+kind.Label()+" apps",
	)
}

// ListEducationApps renders every education app.
func (c *Catalog) ListEducationApps() string {
	return c.ListByKind(domain.KindEducation)
}

// ListGameApps renders every game.
func (c *Catalog) ListGameApps() string {
	return c.ListByKind(domain.KindGame)
}

// ListProductivityApps renders every productivity app.
func (c *Catalog) ListProductivityApps() string {
	return c.ListByKind(domain.KindProductivity)
}

// ListByName renders every app whose name matches ignoring case.
func (c *Catalog) ListByName(name string) string {
	return c.report(
		func(a domain.App) bool { return strings.EqualFold(a.Name(), name) },
		domain.App.String,
		"No apps for name "+name+" exists",
	)
}

// ListByMinRating renders every app rated at least stars. Thresholds
// outside [1,5] match nothing.
func (c *Catalog) ListByMinRating(stars int) string {
	none := "No apps have a rating of " + strconv.Itoa(stars) + " or above"
	if !domain.ValidStars(stars) {
		return none
	}

	return c.report(
		func(a domain.App) bool { return a.CalculateRating() >= float64(stars) },
		domain.App.String,
		none,
	)
}

// ListRecommended renders every app whose variant rule recommends it.
func (c *Catalog) ListRecommended() string {
	return c.report(domain.App.IsRecommended, domain.App.String, "No recommended apps")
}

// ListByDeveloper renders every app whose developer equals dev by value.
func (c *Catalog) ListByDeveloper(dev *domain.Developer) string {
	return c.report(
		func(a domain.App) bool { return dev.Equal(a.Developer()) },
		domain.App.String,
		"No apps for developer: "+dev.String(),
	)
}

// CountByDeveloper counts the apps whose developer equals dev by value.
func (c *Catalog) CountByDeveloper(dev *domain.Developer) int {
	n := 0
	for _, a := range c.apps {
		if dev.Equal(a.Developer()) {
			n++
		}
	}

	return n
}

// RandomApp picks an app uniformly at random.
func (c *Catalog) RandomApp() (domain.App, bool) {
	if len(c.apps) == 0 {
		return nil, false
	}

	return c.apps[c.random.IntN(len(c.apps))], true
}

// SimulateRatings appends one generated rating to every app.
func (c *Catalog) SimulateRatings(ctx context.Context) error {
	if c.ratings == nil {
		return domain.NewValidationError("ratings", "no rating generator configured")
	}

	for _, a := range c.apps {
		r, err := c.ratings.Generate(ctx)
		if err != nil {
			c.logger.ErrorContext(ctx, "rating simulation failed",
				slog.String("name", a.Name()),
				slog.Any("error", err),
			)

			return err
		}

		a.AddRating(r)
	}

	c.logger.InfoContext(ctx, "ratings simulated", slog.Int("apps", len(c.apps)))

	return nil
}

// SortByNameAscending orders the apps by name, comparing bytes.
func (c *Catalog) SortByNameAscending() {
	slices.SortStableFunc(c.apps, func(a, b domain.App) int {
		return cmp.Compare(a.Name(), b.Name())
	})
}

// Location returns the store target, or "" when no store is configured.
func (c *Catalog) Location() string {
	if c.store == nil {
		return ""
	}

	return c.store.Location()
}

// Save writes the apps and the registered developers to the store.
func (c *Catalog) Save(ctx context.Context) error {
	if c.store == nil {
		return domain.NewValidationError("store", "no catalog store configured")
	}

	snap := &ports.Snapshot{
		Developers: c.developers.All(),
		Apps:       slices.Clone(c.apps),
	}

	if err := c.store.Save(ctx, snap); err != nil {
		c.logger.ErrorContext(ctx, "failed to save catalog",
			slog.String("location", c.store.Location()),
			slog.Any("error", err),
		)

		return err
	}

	c.logger.InfoContext(ctx, "catalog saved",
		slog.String("location", c.store.Location()),
		slog.Int("apps", len(snap.Apps)),
		slog.Int("developers", len(snap.Developers)),
	)

	return nil
}

// Load replaces the apps and the registered developers with the store
// contents. On failure the catalog is left unchanged.
func (c *Catalog) Load(ctx context.Context) error {
	if c.store == nil {
		return domain.NewValidationError("store", "no catalog store configured")
	}

	snap, err := c.store.Load(ctx)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, fs.ErrNotExist) {
			level = slog.LevelWarn
		}

		c.logger.Log(ctx, level, "failed to load catalog",
			slog.String("location", c.store.Location()),
			slog.Any("error", err),
		)

		return err
	}

	c.apps = slices.Clone(snap.Apps)
	c.developers.Replace(snap.Developers)

	c.logger.InfoContext(ctx, "catalog loaded",
		slog.String("location", c.store.Location()),
		slog.Int("apps", len(c.apps)),
		slog.Int("developers", c.developers.Count()),
	)

	return nil
}

func all(domain.App) bool { return true }

// report renders "<index>: <render(app)>" for every app matching keep, or
// none when the catalog is empty or nothing matches.
func (c *Catalog) report(keep func(domain.App) bool, render func(domain.App) string, none string) string {
	var sb strings.Builder
	for i, a := range c.apps {
		if !keep(a) {
			continue
		}

		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(render(a))
		sb.WriteByte('\n')
	}

	if sb.Len() == 0 {
		return none
	}

	return sb.String()
}
