package domain

// ProductivityApp is a productivity tool. It has no fields beyond Base.
type ProductivityApp struct {
	Base
}

var _ App = (*ProductivityApp)(nil)

// NewProductivityApp creates a productivity app. Out-of-range arguments fall back to the defaults.
func NewProductivityApp(developer *Developer, name string, size, version, cost float64) *ProductivityApp {
	return &ProductivityApp{Base: newBase(developer, name, size, version, cost)}
}

// Kind returns KindProductivity.
func (a *ProductivityApp) Kind() Kind {
	return KindProductivity
}

// IsRecommended holds for apps costing at least 1.99 rated strictly above 3.0.
func (a *ProductivityApp) IsRecommended() bool {
	return a.Cost() >= 1.99 && a.CalculateRating() > 3.0
}

// Summary implements App.
func (a *ProductivityApp) Summary() string {
	return a.summary() + "."
}

func (a *ProductivityApp) String() string {
	return a.record()
}
