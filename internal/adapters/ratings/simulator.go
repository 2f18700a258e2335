// Package ratings generates simulated user ratings.
package ratings

import (
	"context"

	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/ports"
)

var authors = []string{
	"John Doe", "Jane Doe", "Mary Murphy", "Sean Walsh",
	"Aoife Byrne", "Liam Kelly", "Niamh Ryan", "Conor Doyle",
}

var comments = []string{
	"Very Good", "Excellent", "Average", "Poor", "Not worth the money",
	"Would recommend", "Crashes a lot", "Does what it says",
}

// Config contains configuration for the simulator.
type Config struct {
	// Random drives every draw. Required.
	Random ports.RandomSource
}

// Simulator implements ports.RatingGenerator with uniformly drawn stars,
// authors and comments.
type Simulator struct {
	random ports.RandomSource
}

var _ ports.RatingGenerator = (*Simulator)(nil)

// NewSimulator creates a simulator.
func NewSimulator(cfg Config) (*Simulator, error) {
	if cfg.Random == nil {
		return nil, domain.NewValidationError("random", "is required")
	}

	return &Simulator{random: cfg.Random}, nil
}

// Generate returns a rating with stars in [1,5].
func (s *Simulator) Generate(ctx context.Context) (domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rating{}, err
	}

	stars := domain.MinStars + s.random.IntN(domain.MaxStars-domain.MinStars+1)

	return domain.NewRating(
		stars,
		authors[s.random.IntN(len(authors))],
		comments[s.random.IntN(len(comments))],
	), nil
}
