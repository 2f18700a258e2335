package domain

import (
	"slices"
	"strconv"
	"strings"
)

// GameApp is a game, optionally multiplayer, tagged with genres.
type GameApp struct {
	Base
	multiplayer bool
	genres      map[Genre]struct{}
}

var _ App = (*GameApp)(nil)

// NewGameApp creates a game app. Out-of-range arguments fall back to the defaults.
func NewGameApp(developer *Developer, name string, size, version, cost float64, multiplayer bool) *GameApp {
	return &GameApp{
		Base:        newBase(developer, name, size, version, cost),
		multiplayer: multiplayer,
		genres:      map[Genre]struct{}{},
	}
}

// Kind returns KindGame.
func (a *GameApp) Kind() Kind {
	return KindGame
}

// IsMultiplayer reports whether the game supports multiple players.
func (a *GameApp) IsMultiplayer() bool {
	return a.multiplayer
}

// SetMultiplayer sets the multiplayer flag.
func (a *GameApp) SetMultiplayer(multiplayer bool) {
	a.multiplayer = multiplayer
}

// AddGenre tags the game with g. Unknown genres are ignored.
func (a *GameApp) AddGenre(g Genre) {
	if !g.Valid() {
		return
	}

	if a.genres == nil {
		a.genres = map[Genre]struct{}{}
	}

	a.genres[g] = struct{}{}
}

// RemoveGenre drops the tag g.
func (a *GameApp) RemoveGenre(g Genre) {
	delete(a.genres, g)
}

// HasGenre reports whether the game is tagged with g.
func (a *GameApp) HasGenre(g Genre) bool {
	_, ok := a.genres[g]
	return ok
}

// Genres returns the tags in display order.
func (a *GameApp) Genres() []Genre {
	out := make([]Genre, 0, len(a.genres))
	for g := range a.genres {
		out = append(out, g)
	}

	slices.Sort(out)

	return out
}

// IsRecommended holds for multiplayer games rated 4.0 or above.
func (a *GameApp) IsRecommended() bool {
	return a.multiplayer && a.CalculateRating() >= 4.0
}

// Summary implements App.
func (a *GameApp) Summary() string {
	return a.summary() + "."
}

func (a *GameApp) String() string {
	genres := a.Genres()
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.String()
	}

	return a.record() +
		", Multiplayer: " + strconv.FormatBool(a.multiplayer) +
		", Genres: [" + strings.Join(names, ", ") + "]"
}
