package app

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/jsamuelsen/go-appstore/internal/domain"
)

// DeveloperRegistry keeps the known developers in insertion order. Names are
// unique ignoring case. The registry hands out shared handles, so updating a
// developer here is visible through every app that references it.
type DeveloperRegistry struct {
	developers []*domain.Developer
	logger     *slog.Logger
}

// DeveloperRegistryConfig contains configuration for the developer registry.
type DeveloperRegistryConfig struct {
	Logger *slog.Logger
}

// NewDeveloperRegistry creates an empty registry.
func NewDeveloperRegistry(cfg DeveloperRegistryConfig) *DeveloperRegistry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DeveloperRegistry{
		logger: logger.With(slog.String("component", "developer_registry")),
	}
}

// Add registers dev. It returns false for nil or when the name is taken.
func (r *DeveloperRegistry) Add(dev *domain.Developer) bool {
	if dev == nil || r.IsValid(dev.Name()) {
		return false
	}

	r.developers = append(r.developers, dev)
	r.logger.Debug("developer added", slog.String("developer", dev.Name()))

	return true
}

// GetByName looks a developer up ignoring case.
func (r *DeveloperRegistry) GetByName(name string) (*domain.Developer, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return nil, false
	}

	return r.developers[i], true
}

// IsValid reports whether a developer with this name is registered.
func (r *DeveloperRegistry) IsValid(name string) bool {
	return r.indexOf(name) >= 0
}

// UpdateWebsite changes the website of the named developer in place.
func (r *DeveloperRegistry) UpdateWebsite(name, website string) bool {
	dev, ok := r.GetByName(name)
	if !ok {
		return false
	}

	dev.SetWebsite(website)
	r.logger.Debug("developer website updated",
		slog.String("developer", dev.Name()),
		slog.String("website", website),
	)

	return true
}

// Remove unregisters the named developer and returns it. Apps that hold the
// handle keep it.
func (r *DeveloperRegistry) Remove(name string) (*domain.Developer, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return nil, false
	}

	dev := r.developers[i]
	r.developers = slices.Delete(r.developers, i, i+1)
	r.logger.Debug("developer removed", slog.String("developer", dev.Name()))

	return dev, true
}

// List renders one "<index>: <developer>" line per developer.
func (r *DeveloperRegistry) List() string {
	if len(r.developers) == 0 {
		return "No developers"
	}

	var sb strings.Builder
	for i, dev := range r.developers {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(dev.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// All returns the registered developers in insertion order.
func (r *DeveloperRegistry) All() []*domain.Developer {
	return slices.Clone(r.developers)
}

// Count returns the number of registered developers.
func (r *DeveloperRegistry) Count() int {
	return len(r.developers)
}

// Replace swaps the registry contents for devs. Nil entries and duplicate
// names are dropped, first one wins.
func (r *DeveloperRegistry) Replace(devs []*domain.Developer) {
	r.developers = nil
	for _, dev := range devs {
		r.Add(dev)
	}
}

func (r *DeveloperRegistry) indexOf(name string) int {
	return slices.IndexFunc(r.developers, func(d *domain.Developer) bool {
		return strings.EqualFold(d.Name(), name)
	})
}
