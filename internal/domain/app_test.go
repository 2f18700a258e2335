package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lego  = NewDeveloper("Lego", "www.lego.com")
	apple = NewDeveloper("Apple", "www.apple.com")
)

func withRatings[A App](app A, stars ...int) A {
	for _, s := range stars {
		app.AddRating(NewRating(s, "tester", "comment"))
	}

	return app
}

func TestCalculateRating(t *testing.T) {
	tests := []struct {
		name     string
		stars    []int
		expected float64
	}{
		{name: "no ratings", stars: nil, expected: 0},
		{name: "only zero star ratings", stars: []int{0, 0}, expected: 0},
		{name: "plain mean", stars: []int{2, 4}, expected: 3.0},
		{name: "zero stars excluded from sum and count", stars: []int{0, 5, 3}, expected: 4.0},
		{name: "single rating", stars: []int{1}, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := withRatings(NewProductivityApp(apple, "Pages", 10, 1.0, 0), tt.stars...)
			assert.InDelta(t, tt.expected, app.CalculateRating(), 1e-9)
		})
	}
}

func TestEducationApp_IsRecommended(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		level    int
		stars    []int
		expected bool
	}{
		{name: "all conditions met", cost: 1.00, level: 3, stars: []int{3, 4}, expected: true},
		{name: "cost exactly 0.99", cost: 0.99, level: 3, stars: []int{5, 5}, expected: false},
		{name: "free", cost: 0, level: 10, stars: []int{5}, expected: false},
		{name: "level 2", cost: 2.99, level: 2, stars: []int{5}, expected: false},
		{name: "rating exactly 3.5", cost: 2.99, level: 5, stars: []int{3, 4}, expected: true},
		{name: "rating below 3.5", cost: 2.99, level: 5, stars: []int{3, 3}, expected: false},
		{name: "level never set", cost: 2.99, level: 11, stars: []int{5}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := withRatings(NewEducationApp(lego, "WeDo", 1, 1.0, tt.cost, tt.level), tt.stars...)
			assert.Equal(t, tt.expected, app.IsRecommended())
		})
	}
}

func TestGameApp_IsRecommended(t *testing.T) {
	tests := []struct {
		name        string
		multiplayer bool
		stars       []int
		expected    bool
	}{
		{name: "multiplayer rated exactly 4.0", multiplayer: true, stars: []int{5, 4, 4, 3}, expected: true},
		{name: "multiplayer rated below 4.0", multiplayer: true, stars: []int{4, 4, 3}, expected: false},
		{name: "single player rated 5", multiplayer: false, stars: []int{5, 5}, expected: false},
		{name: "multiplayer unrated", multiplayer: true, stars: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := withRatings(NewGameApp(lego, "MazeRunner", 1, 1.0, 1.0, tt.multiplayer), tt.stars...)
			assert.Equal(t, tt.expected, app.IsRecommended())
		})
	}
}

func TestProductivityApp_IsRecommended(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		stars    []int
		expected bool
	}{
		{name: "rating exactly 3.0", cost: 1.99, stars: []int{2, 4}, expected: false},
		{name: "cost exactly 1.99 rated 3.5", cost: 1.99, stars: []int{3, 4}, expected: true},
		{name: "cost below 1.99", cost: 1.98, stars: []int{5}, expected: false},
		{name: "expensive unrated", cost: 9.99, stars: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := withRatings(NewProductivityApp(apple, "Evernote", 1, 1.0, tt.cost), tt.stars...)
			assert.Equal(t, tt.expected, app.IsRecommended())
		})
	}
}

func TestConstructors_SilentlyRejectInvalidArguments(t *testing.T) {
	edu := NewEducationApp(lego, "", -1, 0, -1.00, 0)
	assert.Equal(t, "", edu.Name())
	assert.Zero(t, edu.Size())
	assert.Equal(t, DefaultVersion, edu.Version())
	assert.Zero(t, edu.Cost())
	assert.Zero(t, edu.Level())
	assert.Equal(t, DefaultCurrencySymbol, edu.CurrencySymbol())

	game := NewGameApp(lego, "EV3", 1001, 3.5, 2.99, true)
	assert.Zero(t, game.Size())
	assert.Equal(t, 3.5, game.Version())
	assert.Equal(t, 2.99, game.Cost())

	prod := NewProductivityApp(apple, "Outlook", 1000, 2.0, 1.99)
	assert.Equal(t, 1000.0, prod.Size())
	assert.Equal(t, 2.0, prod.Version())
}

func TestSetters_SilentReject(t *testing.T) {
	app := NewEducationApp(lego, "Spike", 500, 2.0, 1.99, 5)

	tests := []struct {
		name   string
		set    func()
		actual func() any
		want   any
	}{
		{"size below range", func() { app.SetSize(0.5) }, func() any { return app.Size() }, 500.0},
		{"size above range", func() { app.SetSize(1000.5) }, func() any { return app.Size() }, 500.0},
		{"size lower bound", func() { app.SetSize(1) }, func() any { return app.Size() }, 1.0},
		{"size upper bound", func() { app.SetSize(1000) }, func() any { return app.Size() }, 1000.0},
		{"version below 1.0", func() { app.SetVersion(0.99) }, func() any { return app.Version() }, 2.0},
		{"version 1.0", func() { app.SetVersion(1.0) }, func() any { return app.Version() }, 1.0},
		{"negative cost", func() { app.SetCost(-0.01) }, func() any { return app.Cost() }, 1.99},
		{"zero cost", func() { app.SetCost(0) }, func() any { return app.Cost() }, 0.0},
		{"level 0", func() { app.SetLevel(0) }, func() any { return app.Level() }, 5},
		{"level 11", func() { app.SetLevel(11) }, func() any { return app.Level() }, 5},
		{"level 10", func() { app.SetLevel(10) }, func() any { return app.Level() }, 10},
		{"level 1", func() { app.SetLevel(1) }, func() any { return app.Level() }, 1},
	}

	// Cases run in order and build on each other's state.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			assert.Equal(t, tt.want, tt.actual())
		})
	}
}

func TestLanguages_UniqueAndSorted(t *testing.T) {
	app := NewProductivityApp(apple, "Pages", 10, 1.0, 0)
	app.AddLanguage("French")
	app.AddLanguage("English")
	app.AddLanguage("French")

	assert.Equal(t, []Language{"English", "French"}, app.Languages())

	app.RemoveLanguage("French")
	assert.Equal(t, []Language{"English"}, app.Languages())
}

func TestRatings_ReturnsCopy(t *testing.T) {
	app := withRatings(NewProductivityApp(apple, "Pages", 10, 1.0, 0), 4)

	ratings := app.Ratings()
	ratings[0] = NewRating(1, "someone", "else")

	assert.Equal(t, 4, app.Ratings()[0].Stars())
}

func TestListRatings(t *testing.T) {
	app := NewProductivityApp(apple, "Pages", 10, 1.0, 0)
	assert.Equal(t, "No ratings added yet.", app.ListRatings())

	app.AddRating(NewRating(4, "Jane", "Useful"))
	assert.Equal(t, "4 stars by Jane: Useful\n", app.ListRatings())
}

func TestSummary(t *testing.T) {
	t.Run("productivity with price and languages", func(t *testing.T) {
		app := withRatings(NewProductivityApp(apple, "Evernote", 1, 1.0, 1.99), 2, 4)
		app.AddLanguage("French")
		app.AddLanguage("English")

		assert.Equal(t,
			"Evernote(V1.0) by Apple (www.apple.com), €1.99. Rating: 3.0. Supported languages: English, French.",
			app.Summary())
	})

	t.Run("free education app appends level", func(t *testing.T) {
		app := NewEducationApp(lego, "WeDo", 1, 1.0, 0, 3)

		assert.Equal(t,
			"WeDo(V1.0) by Lego (www.lego.com), Free. Rating: 0.0. Supported languages: none, level 3.",
			app.Summary())
	})

	t.Run("game summary has no genre suffix", func(t *testing.T) {
		app := NewGameApp(lego, "CookOff", 1000, 2.0, 1.99, true)
		app.AddGenre(GenrePuzzle)
		app.SetCurrencySymbol("$")

		summary := app.Summary()
		assert.Contains(t, summary, "$1.99")
		assert.NotContains(t, summary, "Genres")
	})
}

func TestString(t *testing.T) {
	t.Run("game appends multiplayer and genres", func(t *testing.T) {
		app := withRatings(NewGameApp(lego, "CookOff", 1000, 2.0, 1.99, true), 5)
		app.AddGenre(GenreAnime)
		app.AddGenre(GenrePuzzle)

		assert.Equal(t,
			"CookOff(Version 2.0) by Lego (www.lego.com), Size: 1000.0MB, Cost: 1.99, "+
				"Ratings (5.0): [5 stars by tester: comment], Multiplayer: true, Genres: [Puzzle, Anime]",
			app.String())
	})

	t.Run("education appends level", func(t *testing.T) {
		app := NewEducationApp(lego, "Spike", 1000, 2.0, 1.99, 10)
		assert.Equal(t,
			"Spike(Version 2.0) by Lego (www.lego.com), Size: 1000.0MB, Cost: 1.99, Ratings (0.0): [], Level: 10.",
			app.String())
	})

	t.Run("productivity without developer", func(t *testing.T) {
		app := NewProductivityApp(nil, "Pages", 10, 3.5, 2.99)
		assert.Contains(t, app.String(), "by unknown developer")
	})
}

func TestGameApp_Genres(t *testing.T) {
	app := NewGameApp(lego, "Empires", 10, 1.0, 0, false)
	app.AddGenre(GenreRacing)
	app.AddGenre(GenreMassivelyMultiplayer)
	app.AddGenre(GenreRacing)
	app.AddGenre(Genre(99))

	assert.Equal(t, []Genre{GenreMassivelyMultiplayer, GenreRacing}, app.Genres())
	assert.True(t, app.HasGenre(GenreRacing))

	app.RemoveGenre(GenreRacing)
	assert.False(t, app.HasGenre(GenreRacing))
	assert.Len(t, app.Genres(), 1)
}

func TestZeroValueGameApp(t *testing.T) {
	var app GameApp
	app.AddGenre(GenreIndie)
	app.AddLanguage("Irish")

	assert.Equal(t, []Genre{GenreIndie}, app.Genres())
	assert.Equal(t, []Language{"Irish"}, app.Languages())
}

func TestKind(t *testing.T) {
	apps := []App{
		NewEducationApp(lego, "a", 1, 1, 0, 1),
		NewGameApp(lego, "b", 1, 1, 0, false),
		NewProductivityApp(lego, "c", 1, 1, 0),
	}

	require.Len(t, apps, len(Kinds()))
	for i, k := range Kinds() {
		assert.Equal(t, k, apps[i].Kind())
	}
}
