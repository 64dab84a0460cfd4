package repository

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/config"
	"github.com/yourusername/fight-predictor/internal/database"
	"github.com/yourusername/fight-predictor/internal/models"
)

const skipIntegrationMsg = "Integration test - set TEST_POSTGRES_HOST to run against PostgreSQL"

func cardEntry(f1, f2 string, confidence float64, createdAt time.Time, withSim bool) *models.FightCardEntry {
	entry := &models.FightCardEntry{
		ID:           uuid.New(),
		Fighter1Name: f1,
		Fighter2Name: f2,
		NumRounds:    3,
		Prediction: &models.Prediction{
			Fighter1: models.FighterAnalysis{Name: f1, WinProbability: confidence},
			Fighter2: models.FighterAnalysis{Name: f2, WinProbability: 100 - confidence},
			Outcome:  models.Outcome{Winner: f1, Confidence: confidence, LikelyFinish: models.FinishDecision},
		},
		CreatedAt: createdAt,
	}
	if withSim {
		entry.Simulation = &models.Simulation{
			Rounds: []models.RoundStats{
				{Round: 1, Fighter1Strikes: 20, Fighter2Strikes: 12, Result: models.RoundContinues},
				{Round: 2, Fighter1Strikes: 18, Fighter2Strikes: 9, Result: models.RoundFinish, Winner: f1},
			},
			TotalDamage: models.Damage{Fighter1: 21, Fighter2: 38},
		}
	}
	return entry
}

func exerciseFightCard(t *testing.T, repo FightCardRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	first := cardEntry("Jon Jones", "Stipe Miocic", 71.5, base, true)
	second := cardEntry("Alex Pereira", "Jiri Prochazka", 58.2, base.Add(time.Minute), false)

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jon Jones", got.Fighter1Name)
	assert.Equal(t, 71.5, got.Confidence())
	assert.True(t, got.CreatedAt.Equal(base))
	require.NotNil(t, got.Simulation)
	assert.True(t, got.Simulation.Finished())
	assert.Equal(t, 38, got.Simulation.TotalDamage.Fighter2)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Nil(t, list[1].Simulation)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), models.ErrNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func exerciseFighters(t *testing.T, repo FighterRepository) {
	t.Helper()
	ctx := context.Background()

	n, err := repo.ReplaceAll(ctx, []models.Fighter{
		{Name: "Stipe Miocic", Wins: 20, Losses: 5},
		{Name: "Jon Jones", Wins: 27, Losses: 1, LastFights: []models.FightHistory{{Result: "W", Opponent: "Stipe Miocic"}}},
		{Name: "jon jones", Wins: 1},
		{Name: " "},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	f, err := repo.GetByName(ctx, "JON JONES")
	require.NoError(t, err)
	assert.Equal(t, 27, f.Wins)
	require.Len(t, f.LastFights, 1)

	_, err = repo.GetByName(ctx, "Khabib Nurmagomedov")
	assert.ErrorIs(t, err, models.ErrNotFound)

	n, err = repo.ReplaceAll(ctx, []models.Fighter{{Name: "Israel Adesanya"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.FetchFighters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Israel Adesanya", all[0].Name)
}

func TestMemoryRepositories(t *testing.T) {
	repos := NewMemoryRepositories()
	assert.Equal(t, config.DriverMemory, repos.Driver)
	assert.NoError(t, repos.Ping(context.Background()))

	exerciseFightCard(t, repos.FightCard)
	exerciseFighters(t, repos.Fighters)
	assert.NoError(t, repos.Close())
}

func TestMemoryFightCardRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryFightCardRepository()
	entry := cardEntry("A", "B", 60, time.Now(), false)

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.ErrorIs(t, repo.Create(context.Background(), entry), models.ErrDuplicateKey)
}

func TestSQLiteRepositories(t *testing.T) {
	repos, err := NewSQLiteRepositories(database.SetupTestSQLite(t))
	require.NoError(t, err)
	assert.NoError(t, repos.Ping(context.Background()))

	exerciseFightCard(t, repos.FightCard)
	exerciseFighters(t, repos.Fighters)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	repos, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, repos.Driver)

	repos, err = Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: t.TempDir() + "/card.db"})
	require.NoError(t, err)
	defer repos.Close()
	assert.Equal(t, config.DriverSQLite, repos.Driver)

	_, err = Open(ctx, config.StorageConfig{Driver: "mongo"})
	assert.Error(t, err)

	_, err = NewSQLiteRepositories(nil)
	assert.Error(t, err)
	_, err = NewPostgresRepositories(nil)
	assert.Error(t, err)
}

func TestPostgresRepositories(t *testing.T) {
	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip(skipIntegrationMsg)
	}
	port, _ := strconv.Atoi(os.Getenv("TEST_POSTGRES_PORT"))
	if port == 0 {
		port = 5432
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repos, err := Open(ctx, config.StorageConfig{
		Driver: config.DriverPostgres,
		Database: config.DatabaseConfig{
			Host:     host,
			Port:     port,
			Name:     os.Getenv("TEST_POSTGRES_DB"),
			User:     os.Getenv("TEST_POSTGRES_USER"),
			Password: os.Getenv("TEST_POSTGRES_PASSWORD"),
			SSLMode:  "disable",
		},
	})
	require.NoError(t, err)
	defer repos.Close()

	_, err = repos.Fighters.ReplaceAll(ctx, nil)
	require.NoError(t, err)
	exerciseFighters(t, repos.Fighters)
}
