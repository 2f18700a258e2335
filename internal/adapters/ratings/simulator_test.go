package ratings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-appstore/internal/adapters/random"
	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/mocks"
)

func TestNewSimulator_RequiresRandom(t *testing.T) {
	_, err := NewSimulator(Config{})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSimulator_Generate(t *testing.T) {
	rnd := mocks.NewMockRandomSource(t)
	rnd.EXPECT().IntN(5).Return(4).Once()
	rnd.EXPECT().IntN(len(authors)).Return(1).Once()
	rnd.EXPECT().IntN(len(comments)).Return(2).Once()

	sim, err := NewSimulator(Config{Random: rnd})
	require.NoError(t, err)

	r, err := sim.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, r.Stars())
	assert.Equal(t, authors[1], r.Author())
	assert.Equal(t, comments[2], r.Comment())
}

func TestSimulator_StarsStayInRange(t *testing.T) {
	sim, err := NewSimulator(Config{Random: random.New(2024)})
	require.NoError(t, err)

	seen := map[int]bool{}
	for range 500 {
		r, err := sim.Generate(context.Background())
		require.NoError(t, err)
		require.True(t, domain.ValidStars(r.Stars()), "stars %d", r.Stars())

		seen[r.Stars()] = true
	}

	assert.Len(t, seen, 5)
}

func TestSimulator_CancelledContext(t *testing.T) {
	sim, err := NewSimulator(Config{Random: random.New(1)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
