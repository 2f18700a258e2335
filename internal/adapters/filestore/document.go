package filestore

// SchemaVersion is the document version written by Save and accepted by Load.
const SchemaVersion = 1

// noDeveloper marks an app record without a developer.
const noDeveloper = -1

// document is the on-disk shape of a catalog. Developers form an arena that
// app records point into by index, which keeps shared developers shared
// across a save and load.
type document struct {
	Version    int               `yaml:"version"`
	Developers []developerRecord `yaml:"developers"`
	Apps       []appRecord       `yaml:"apps"`
}

type developerRecord struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
	// Registered is set for developers held by the registry, as opposed to
	// ones only referenced from an app.
	Registered bool `yaml:"registered,omitempty"`
}

type ratingRecord struct {
	Stars   int    `yaml:"stars"`
	Author  string `yaml:"author"`
	Comment string `yaml:"comment"`
}

type appRecord struct {
	Kind        string         `yaml:"kind"`
	Developer   *int           `yaml:"developer"`
	Name        string         `yaml:"name"`
	Size        float64        `yaml:"size"`
	Version     float64        `yaml:"version"`
	Cost        float64        `yaml:"cost"`
	Description string         `yaml:"description,omitempty"`
	Currency    *string        `yaml:"currency,omitempty"`
	Languages   []string       `yaml:"languages,omitempty"`
	Ratings     []ratingRecord `yaml:"ratings,omitempty"`

	// education
	Level *int `yaml:"level,omitempty"`

	// game
	Multiplayer *bool    `yaml:"multiplayer,omitempty"`
	Genres      []string `yaml:"genres,omitempty"`
}
