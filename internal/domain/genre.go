package domain

import (
	"fmt"
	"strings"
)

// Genre tags a GameApp. The set of genres is closed.
type Genre int

// Known genres, in display order.
const (
	GenreAction Genre = iota
	GenreAdventure
	GenreCasual
	GenreIndie
	GenreMassivelyMultiplayer
	GenreRacing
	GenreRPG
	GenreSimulation
	GenreSports
	GenreStrategy
	GenreRolePlaying
	GenrePuzzle
	GenreAnime
	GenreSurvival
)

var genreNames = [...]string{
	GenreAction:               "Action",
	GenreAdventure:            "Adventure",
	GenreCasual:               "Casual",
	GenreIndie:                "Indie",
	GenreMassivelyMultiplayer: "MassivelyMultiplayer",
	GenreRacing:               "Racing",
	GenreRPG:                  "RPG",
	GenreSimulation:           "Simulation",
	GenreSports:               "Sports",
	GenreStrategy:             "Strategy",
	GenreRolePlaying:          "RolePlaying",
	GenrePuzzle:               "Puzzle",
	GenreAnime:                "Anime",
	GenreSurvival:             "Survival",
}

// Genres returns every known genre in display order.
func Genres() []Genre {
	out := make([]Genre, len(genreNames))
	for i := range genreNames {
		out[i] = Genre(i)
	}

	return out
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	return g >= 0 && int(g) < len(genreNames)
}

func (g Genre) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Genre(%d)", int(g))
	}

	return genreNames[g]
}

// ParseGenre resolves a genre by name, ignoring case.
func ParseGenre(name string) (Genre, error) {
	for i, n := range genreNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Genre(i), nil
		}
	}

	return 0, NewValidationErrorWithValue("genre", "unknown genre "+name, name)
}
