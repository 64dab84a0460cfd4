package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/yourusername/fight-predictor/internal/models"
)

// MemoryFighterRepository keeps the roster in process memory.
type MemoryFighterRepository struct {
	mu       sync.RWMutex
	fighters []models.Fighter
	byName   map[string]int
}

// NewMemoryFighterRepository creates an empty in-memory roster store
func NewMemoryFighterRepository() *MemoryFighterRepository {
	return &MemoryFighterRepository{byName: map[string]int{}}
}

// ReplaceAll swaps the stored roster
func (r *MemoryFighterRepository) ReplaceAll(_ context.Context, fighters []models.Fighter) (int, error) {
	unique := dedupeFighters(fighters)
	index := make(map[string]int, len(unique))
	for i, f := range unique {
		index[fighterKey(f.Name)] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fighters = unique
	r.byName = index
	return len(unique), nil
}

// GetByName retrieves a fighter by name
func (r *MemoryFighterRepository) GetByName(_ context.Context, name string) (*models.Fighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[fighterKey(name)]
	if !ok {
		return nil, models.ErrNotFound
	}
	f := r.fighters[i]
	return &f, nil
}

// FetchFighters returns a copy of the stored roster
func (r *MemoryFighterRepository) FetchFighters(_ context.Context) ([]models.Fighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Fighter, len(r.fighters))
	copy(out, r.fighters)
	return out, nil
}

// Count returns the number of stored fighters
func (r *MemoryFighterRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fighters), nil
}

// MemoryFightCardRepository keeps the fight card in process memory.
type MemoryFightCardRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*models.FightCardEntry
}

// NewMemoryFightCardRepository creates an empty in-memory fight card
func NewMemoryFightCardRepository() *MemoryFightCardRepository {
	return &MemoryFightCardRepository{entries: map[uuid.UUID]*models.FightCardEntry{}}
}

// Create stores a new entry
func (r *MemoryFightCardRepository) Create(_ context.Context, entry *models.FightCardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return models.ErrDuplicateKey
	}
	stored := *entry
	r.entries[entry.ID] = &stored
	return nil
}

// GetByID retrieves an entry by ID
func (r *MemoryFightCardRepository) GetByID(_ context.Context, id uuid.UUID) (*models.FightCardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := *entry
	return &out, nil
}

// List returns all entries, oldest first
func (r *MemoryFightCardRepository) List(_ context.Context) ([]*models.FightCardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.FightCardEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		e := *entry
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes an entry
func (r *MemoryFightCardRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
