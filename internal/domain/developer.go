package domain

// Developer identifies who publishes an app. A single *Developer is shared by
// every app it publishes, so changing the website is visible through all of them.
type Developer struct {
	name    string
	website string
}

// NewDeveloper creates a developer handle.
func NewDeveloper(name, website string) *Developer {
	return &Developer{name: name, website: website}
}

// Name returns the developer name.
func (d *Developer) Name() string {
	return d.name
}

// Website returns the developer website.
func (d *Developer) Website() string {
	return d.website
}

// SetWebsite replaces the developer website.
func (d *Developer) SetWebsite(website string) {
	d.website = website
}

// Equal reports structural equality on name and website.
// Pointer identity is irrelevant, which keeps lookups working after a reload.
func (d *Developer) Equal(other *Developer) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.name == other.name && d.website == other.website
}

func (d *Developer) String() string {
	if d == nil {
		return "unknown developer"
	}

	return d.name + " (" + d.website + ")"
}
