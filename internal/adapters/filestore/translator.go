package filestore

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/ports"
)

// translator turns one record read from disk into its domain value. path
// locates the record in the document for error messages.
type translator[R any, D any] func(path string, rec *R) (D, error)

// translateAll applies translate to every record, stopping at the first error.
func translateAll[R any, D any](section string, recs []R, translate translator[R, D]) ([]D, error) {
	out := make([]D, 0, len(recs))

	for i := range recs {
		d, err := translate(fmt.Sprintf("%s[%d]", section, i), &recs[i])
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

// arena assigns each distinct developer a stable index. Developers equal by
// value share one slot.
type arena struct {
	records []developerRecord
	devs    []*domain.Developer
}

func (a *arena) index(dev *domain.Developer, registered bool) int {
	if dev == nil {
		return noDeveloper
	}

	i := slices.IndexFunc(a.devs, dev.Equal)
	if i < 0 {
		a.devs = append(a.devs, dev)
		a.records = append(a.records, developerRecord{Name: dev.Name(), Website: dev.Website()})
		i = len(a.devs) - 1
	}

	if registered {
		a.records[i].Registered = true
	}

	return i
}

// toDocument converts a snapshot into its on-disk form.
func toDocument(snap *ports.Snapshot) *document {
	var devs arena
	for _, dev := range snap.Developers {
		devs.index(dev, true)
	}

	apps := make([]appRecord, 0, len(snap.Apps))
	for _, app := range snap.Apps {
		apps = append(apps, toAppRecord(app, devs.index(app.Developer(), false)))
	}

	doc := &document{
		Version:    SchemaVersion,
		Developers: devs.records,
		Apps:       apps,
	}

	if doc.Developers == nil {
		doc.Developers = []developerRecord{}
	}

	return doc
}

func toAppRecord(app domain.App, developer int) appRecord {
	rec := appRecord{
		Kind:        string(app.Kind()),
		Developer:   &developer,
		Name:        app.Name(),
		Size:        app.Size(),
		Version:     app.Version(),
		Cost:        app.Cost(),
		Description: app.Description(),
	}

	currency := app.CurrencySymbol()
	rec.Currency = &currency

	for _, l := range app.Languages() {
		rec.Languages = append(rec.Languages, string(l))
	}

	for _, r := range app.Ratings() {
		rec.Ratings = append(rec.Ratings, ratingRecord{Stars: r.Stars(), Author: r.Author(), Comment: r.Comment()})
	}

	switch a := app.(type) {
	case *domain.EducationApp:
		level := a.Level()
		rec.Level = &level
	case *domain.GameApp:
		multiplayer := a.IsMultiplayer()
		rec.Multiplayer = &multiplayer

		for _, g := range a.Genres() {
			rec.Genres = append(rec.Genres, g.String())
		}
	}

	return rec
}

// fromDocument validates a decoded document and rebuilds the snapshot.
func fromDocument(doc *document) (*ports.Snapshot, error) {
	if doc.Version != SchemaVersion {
		return nil, domain.NewSchemaError("version", fmt.Sprintf("unsupported schema version %d", doc.Version))
	}

	devs, err := translateAll("developers", doc.Developers, translateDeveloper)
	if err != nil {
		return nil, err
	}

	apps, err := translateAll("apps", doc.Apps, appTranslator(devs))
	if err != nil {
		return nil, err
	}

	snap := &ports.Snapshot{Apps: apps}
	for i, rec := range doc.Developers {
		if rec.Registered {
			snap.Developers = append(snap.Developers, devs[i])
		}
	}

	return snap, nil
}

func translateDeveloper(_ string, rec *developerRecord) (*domain.Developer, error) {
	return domain.NewDeveloper(rec.Name, rec.Website), nil
}

func appTranslator(devs []*domain.Developer) translator[appRecord, domain.App] {
	return func(path string, rec *appRecord) (domain.App, error) {
		kind, err := domain.ParseKind(rec.Kind)
		if err != nil {
			return nil, domain.NewSchemaErrorWithCause(path+".kind", "unknown app kind "+rec.Kind, err)
		}

		dev, err := resolveDeveloper(path, rec.Developer, devs)
		if err != nil {
			return nil, err
		}

		var app domain.App

		switch kind {
		case domain.KindEducation:
			level := 0
			if rec.Level != nil {
				level = *rec.Level
			}

			app = domain.NewEducationApp(dev, rec.Name, rec.Size, rec.Version, rec.Cost, level)
		case domain.KindGame:
			game := domain.NewGameApp(dev, rec.Name, rec.Size, rec.Version, rec.Cost, rec.Multiplayer != nil && *rec.Multiplayer)

			for j, name := range rec.Genres {
				g, err := domain.ParseGenre(name)
				if err != nil {
					return nil, domain.NewSchemaErrorWithCause(fmt.Sprintf("%s.genres[%d]", path, j), "unknown genre "+name, err)
				}

				game.AddGenre(g)
			}

			app = game
		case domain.KindProductivity:
			app = domain.NewProductivityApp(dev, rec.Name, rec.Size, rec.Version, rec.Cost)
		}

		app.SetDescription(rec.Description)

		if rec.Currency != nil {
			app.SetCurrencySymbol(*rec.Currency)
		}

		for _, l := range rec.Languages {
			app.AddLanguage(domain.Language(l))
		}

		for _, r := range rec.Ratings {
			app.AddRating(domain.NewRating(r.Stars, r.Author, r.Comment))
		}

		return app, nil
	}
}

func resolveDeveloper(path string, ref *int, devs []*domain.Developer) (*domain.Developer, error) {
	if ref == nil || *ref == noDeveloper {
		return nil, nil
	}

	if *ref < 0 || *ref >= len(devs) {
		return nil, domain.NewSchemaError(path+".developer", fmt.Sprintf("dangling developer reference %d", *ref))
	}

	return devs[*ref], nil
}
