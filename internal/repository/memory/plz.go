package memory

import (
	"context"
	"sort"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type plzRepository struct {
	store *Store
}

// NewPLZRepository returns an in-memory PLZRepository backed by store.
func NewPLZRepository(store *Store) repository.PLZRepository {
	return &plzRepository{store: store}
}

func (r *plzRepository) CitiesForPLZ(_ context.Context, plz string) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cities := make([]string, len(r.store.postalCodes[plz]))
	copy(cities, r.store.postalCodes[plz])
	sort.Strings(cities)
	return cities, nil
}

func (r *plzRepository) Upsert(_ context.Context, plz, city string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.postalCodes[plz] {
		if existing == city {
			return nil
		}
	}
	r.store.postalCodes[plz] = append(r.store.postalCodes[plz], city)
	return nil
}
