package domain

import "strconv"

// EducationApp is an app aimed at a learning level between 1 and 10.
type EducationApp struct {
	Base
	level int
}

var _ App = (*EducationApp)(nil)

// NewEducationApp creates an education app. Out-of-range arguments fall back
// to the defaults instead of failing.
func NewEducationApp(developer *Developer, name string, size, version, cost float64, level int) *EducationApp {
	app := &EducationApp{Base: newBase(developer, name, size, version, cost)}
	app.SetLevel(level)

	return app
}

// Kind returns KindEducation.
func (a *EducationApp) Kind() Kind {
	return KindEducation
}

// Level returns the learning level, 0 if never validly set.
func (a *EducationApp) Level() int {
	return a.level
}

// SetLevel sets the level; values outside [1,10] are ignored.
func (a *EducationApp) SetLevel(level int) {
	if ValidLevel(level) {
		a.level = level
	}
}

// IsRecommended holds for paid apps (over 0.99) rated at least 3.5 and aimed at level 3 or above.
func (a *EducationApp) IsRecommended() bool {
	return a.Cost() > 0.99 && a.CalculateRating() >= 3.5 && a.level >= 3
}

// Summary implements App.
func (a *EducationApp) Summary() string {
	return a.summary() + ", level " + strconv.Itoa(a.level) + "."
}

func (a *EducationApp) String() string {
	return a.record() + ", Level: " + strconv.Itoa(a.level) + "."
}
