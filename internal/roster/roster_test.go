package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/models"
)

type staticSource struct {
	fighters []models.Fighter
	err      error
}

func (s staticSource) FetchFighters(context.Context) ([]models.Fighter, error) {
	return s.fighters, s.err
}

func sample() []models.Fighter {
	return []models.Fighter{
		{Name: "Jon Jones", Wins: 27, Losses: 1},
		{Name: "Jose Aldo", Wins: 32, Losses: 8},
		{Name: "Jon Fitch", Wins: 30, Losses: 8},
		{Name: ""},
		{Name: "JON JONES", Wins: 1},
		{Name: "Stipe Miocic", Wins: 20, Losses: 5},
	}
}

func TestNewDropsNamelessAndDuplicates(t *testing.T) {
	r := New(sample())
	assert.Equal(t, 4, r.Len())

	names := make([]string, 0, r.Len())
	for _, f := range r.All() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Jon Fitch", "Jon Jones", "Jose Aldo", "Stipe Miocic"}, names)
}

func TestGet(t *testing.T) {
	r := New(sample())

	f, err := r.Get("  jon   JONES ")
	require.NoError(t, err)
	assert.Equal(t, 27, f.Wins)

	_, err = r.Get("Jon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrFighterNotFound))
}

func TestSearch(t *testing.T) {
	r := New(sample())

	results := r.Search("jon", 0)
	require.Len(t, results, 2)
	assert.Equal(t, "Jon Fitch", results[0].Name)
	assert.Equal(t, "Jon Jones", results[1].Name)

	assert.Len(t, r.Search("o", 2), 2)
	assert.Len(t, r.Search("", 0), 4)
	assert.Empty(t, r.Search("khabib", 10))
}

func TestSearchDefaultLimit(t *testing.T) {
	fighters := make([]models.Fighter, 0, 25)
	for i := 0; i < 25; i++ {
		fighters = append(fighters, models.Fighter{Name: string(rune('A'+i)) + " Fighter"})
	}
	r := New(fighters)
	assert.Len(t, r.Search("fighter", 0), DefaultSearchLimit)
}

func TestLoad(t *testing.T) {
	r := New(nil)
	n, err := r.Load(context.Background(), staticSource{fighters: sample()})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = r.Load(context.Background(), staticSource{err: errors.New("offline")})
	require.Error(t, err)
	assert.Equal(t, 4, r.Len())
}
