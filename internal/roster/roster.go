// Package roster holds the loaded fighters in memory and answers name lookups.
package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/fight-predictor/internal/models"
)

// DefaultSearchLimit caps search results when the caller passes no limit.
const DefaultSearchLimit = 10

// Source is anything that can produce the full list of fighters.
type Source interface {
	FetchFighters(ctx context.Context) ([]models.Fighter, error)
}

// Roster is a concurrency-safe, name-indexed set of fighters.
type Roster struct {
	mu       sync.RWMutex
	fighters []*models.Fighter
	byName   map[string]*models.Fighter
}

// New creates a roster from fighters. Nameless records are dropped and the first record
// wins when names collide.
func New(fighters []models.Fighter) *Roster {
	r := &Roster{}
	r.Replace(fighters)
	return r
}

func key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Replace swaps the roster contents and returns how many fighters were indexed.
func (r *Roster) Replace(fighters []models.Fighter) int {
	list := make([]*models.Fighter, 0, len(fighters))
	index := make(map[string]*models.Fighter, len(fighters))

	for i := range fighters {
		f := fighters[i]
		k := key(f.Name)
		if k == "" {
			continue
		}
		if _, dup := index[k]; dup {
			continue
		}
		index[k] = &f
		list = append(list, &f)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})

	r.mu.Lock()
	r.fighters = list
	r.byName = index
	r.mu.Unlock()

	return len(list)
}

// Load replaces the roster with everything src returns.
func (r *Roster) Load(ctx context.Context, src Source) (int, error) {
	fighters, err := src.FetchFighters(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}
	return r.Replace(fighters), nil
}

// Get returns the fighter with exactly this name, ignoring case and spacing.
func (r *Roster) Get(name string) (*models.Fighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrFighterNotFound, name)
	}
	return f, nil
}

// Search returns fighters whose name contains query, in name order. An empty query
// matches everyone; limit <= 0 uses DefaultSearchLimit.
func (r *Roster) Search(query string, limit int) []*models.Fighter {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Fighter, 0, limit)
	for _, f := range r.fighters {
		if len(results) == limit {
			break
		}
		if f.MatchesName(query) {
			results = append(results, f)
		}
	}
	return results
}

// All returns every fighter in name order.
func (r *Roster) All() []*models.Fighter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Fighter, len(r.fighters))
	copy(out, r.fighters)
	return out
}

// Len returns the number of indexed fighters.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fighters)
}
