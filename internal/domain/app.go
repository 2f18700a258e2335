package domain

import (
	"strconv"
	"strings"
)

// App is one catalog entry. Every variant embeds Base for the common
// attributes and supplies its own recommendation rule and rendering.
type App interface {
	Kind() Kind

	Developer() *Developer
	SetDeveloper(developer *Developer)
	Name() string
	SetName(name string)
	Size() float64
	SetSize(size float64)
	Version() float64
	SetVersion(version float64)
	Cost() float64
	SetCost(cost float64)
	Description() string
	SetDescription(description string)
	CurrencySymbol() string
	SetCurrencySymbol(symbol string)

	Languages() []Language
	AddLanguage(language Language)
	RemoveLanguage(language Language)

	Ratings() []Rating
	AddRating(rating Rating)
	ListRatings() string
	CalculateRating() float64

	// IsRecommended applies the variant's recommendation rule.
	IsRecommended() bool

	// Summary renders a one-line human readable summary.
	Summary() string

	// String renders the full record including every rating.
	String() string
}

// Base holds the attributes shared by all app variants.
type Base struct {
	developer      *Developer
	name           string
	size           float64
	version        float64
	cost           float64
	description    string
	currencySymbol string
	languages      languageSet
	ratings        []Rating
}

func newBase(developer *Developer, name string, size, version, cost float64) Base {
	b := Base{
		developer:      developer,
		name:           name,
		version:        DefaultVersion,
		currencySymbol: DefaultCurrencySymbol,
		languages:      languageSet{},
	}
	b.SetSize(size)
	b.SetVersion(version)
	b.SetCost(cost)

	return b
}

// Developer returns the shared developer handle.
func (b *Base) Developer() *Developer {
	return b.developer
}

// SetDeveloper replaces the developer handle.
func (b *Base) SetDeveloper(developer *Developer) {
	b.developer = developer
}

// Name returns the app name.
func (b *Base) Name() string {
	return b.name
}

// SetName replaces the app name. Uniqueness is the catalog's concern.
func (b *Base) SetName(name string) {
	b.name = name
}

// Size returns the size in MB.
func (b *Base) Size() float64 {
	return b.size
}

// SetSize sets the size in MB; values outside [1,1000] are ignored.
func (b *Base) SetSize(size float64) {
	if ValidSize(size) {
		b.size = size
	}
}

// Version returns the app version.
func (b *Base) Version() float64 {
	return b.version
}

// SetVersion sets the version; values below 1.0 are ignored.
func (b *Base) SetVersion(version float64) {
	if ValidVersion(version) {
		b.version = version
	}
}

// Cost returns the price, 0 meaning free.
func (b *Base) Cost() float64 {
	return b.cost
}

// SetCost sets the price; negative values are ignored.
func (b *Base) SetCost(cost float64) {
	if ValidCost(cost) {
		b.cost = cost
	}
}

// Description returns the free-text description.
func (b *Base) Description() string {
	return b.description
}

// SetDescription replaces the description.
func (b *Base) SetDescription(description string) {
	b.description = description
}

// CurrencySymbol returns the symbol prefixed to non-free prices.
func (b *Base) CurrencySymbol() string {
	return b.currencySymbol
}

// SetCurrencySymbol replaces the currency symbol.
func (b *Base) SetCurrencySymbol(symbol string) {
	b.currencySymbol = symbol
}

// Languages returns the supported languages in sorted order.
func (b *Base) Languages() []Language {
	return b.languages.sorted()
}

// AddLanguage adds a supported language. Adding an existing one is a no-op.
func (b *Base) AddLanguage(language Language) {
	if b.languages == nil {
		b.languages = languageSet{}
	}

	b.languages[language] = struct{}{}
}

// RemoveLanguage drops a supported language.
func (b *Base) RemoveLanguage(language Language) {
	delete(b.languages, language)
}

// Ratings returns a copy of the ratings in insertion order.
func (b *Base) Ratings() []Rating {
	out := make([]Rating, len(b.ratings))
	copy(out, b.ratings)

	return out
}

// AddRating appends a rating.
func (b *Base) AddRating(rating Rating) {
	b.ratings = append(b.ratings, rating)
}

// ListRatings renders one rating per line.
func (b *Base) ListRatings() string {
	if len(b.ratings) == 0 {
		return "No ratings added yet."
	}

	var sb strings.Builder
	for _, r := range b.ratings {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// CalculateRating averages the star counts of ratings with at least one star.
// Zero-star ratings count towards neither the sum nor the count. Returns 0
// when no rating qualifies.
func (b *Base) CalculateRating() float64 {
	var sum, n int
	for _, r := range b.ratings {
		if r.Stars() != 0 {
			sum += r.Stars()
			n++
		}
	}

	if n == 0 {
		return 0
	}

	return float64(sum) / float64(n)
}

// summary renders the shared summary without the closing period.
func (b *Base) summary() string {
	price := "Free"
	if b.cost != 0 {
		price = b.currencySymbol + formatNumber(b.cost)
	}

	languages := b.languages.join(", ")
	if languages == "" {
		languages = "none"
	}

	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteString("(V")
	sb.WriteString(formatNumber(b.version))
	sb.WriteString(") by ")
	sb.WriteString(b.developer.String())
	sb.WriteString(", ")
	sb.WriteString(price)
	sb.WriteString(". Rating: ")
	sb.WriteString(formatNumber(b.CalculateRating()))
	sb.WriteString(". Supported languages: ")
	sb.WriteString(languages)

	return sb.String()
}

// record renders the shared full record.
func (b *Base) record() string {
	ratings := make([]string, len(b.ratings))
	for i, r := range b.ratings {
		ratings[i] = r.String()
	}

	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteString("(Version ")
	sb.WriteString(formatNumber(b.version))
	sb.WriteString(") by ")
	sb.WriteString(b.developer.String())
	sb.WriteString(", Size: ")
	sb.WriteString(formatNumber(b.size))
	sb.WriteString("MB, Cost: ")
	sb.WriteString(formatNumber(b.cost))
	sb.WriteString(", Ratings (")
	sb.WriteString(formatNumber(b.CalculateRating()))
	sb.WriteString("): [")
	sb.WriteString(strings.Join(ratings, ", "))
	sb.WriteByte(']')

	return sb.String()
}

// formatNumber renders v with the shortest exact decimal and always at least
// one fractional digit: 1 -> "1.0", 2.99 -> "2.99".
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
