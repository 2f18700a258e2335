package domain

// Accepted ranges for app attributes. Constructors and setters share these
// predicates; a value outside its range is ignored and the previous value kept.
const (
	MinSize    = 1.0
	MaxSize    = 1000.0
	MinVersion = 1.0
	MinCost    = 0.0
	MinLevel   = 1
	MaxLevel   = 10

	// MinStars and MaxStars bound the threshold accepted by star-rating reports
	// and the values produced by rating generators.
	MinStars = 1
	MaxStars = 5
)

// Defaults for a freshly constructed app.
const (
	DefaultAppName        = "No app name"
	DefaultVersion        = 1.0
	DefaultCurrencySymbol = "€"
)

// ValidSize reports whether size (MB) is within [1,1000].
func ValidSize(size float64) bool {
	return size >= MinSize && size <= MaxSize
}

// ValidVersion reports whether version is at least 1.0.
func ValidVersion(version float64) bool {
	return version >= MinVersion
}

// ValidCost reports whether cost is zero or more.
func ValidCost(cost float64) bool {
	return cost >= MinCost
}

// ValidLevel reports whether an education level is within [1,10].
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// ValidStars reports whether stars is within [1,5].
func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}
