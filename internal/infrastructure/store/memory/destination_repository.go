package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// DestinationRepository is an in-memory catalog keyed by destination id.
type DestinationRepository struct {
	mu           sync.RWMutex
	destinations map[string]domain.Destination
}

// NewDestinationRepository builds an empty catalog.
func NewDestinationRepository() *DestinationRepository {
	return &DestinationRepository{destinations: make(map[string]domain.Destination)}
}

// NewSeededDestinationRepository builds a catalog preloaded with the sample
// destinations the platform ships with.
func NewSeededDestinationRepository() *DestinationRepository {
	r := NewDestinationRepository()
	for _, d := range sampleDestinations {
		r.destinations[d.ID] = d
	}
	return r
}

var sampleDestinations = []domain.Destination{
	{ID: "PAR", Name: "Paris", Description: "The city of lights", Location: "France", PricePerNight: 200},
	{ID: "NYC", Name: "New York City", Description: "The city that never sleeps", Location: "USA", PricePerNight: 250},
	{ID: "TOK", Name: "Tokyo", Description: "A city blending tradition with modernity", Location: "Japan", PricePerNight: 220},
	{ID: "SYD", Name: "Sydney", Description: "Famous for its Sydney Opera House", Location: "Australia", PricePerNight: 180},
	{ID: "RIO", Name: "Rio de Janeiro", Description: "Known for its Copacabana and Ipanema beaches", Location: "Brazil", PricePerNight: 160},
	{ID: "ROM", Name: "Rome", Description: "An expansive city with nearly 3,000 years of history", Location: "Italy", PricePerNight: 210},
}

// List returns all destinations ordered by id.
func (r *DestinationRepository) List(_ context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Insert adds the destination if its id is free. Check and insert happen
// under one lock so concurrent inserts cannot create duplicates.
func (r *DestinationRepository) Insert(_ context.Context, dest domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.destinations[dest.ID]; exists {
		return domain.ErrDuplicateDestination
	}
	r.destinations[dest.ID] = dest
	return nil
}

func (r *DestinationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.destinations[id]; !exists {
		return domain.ErrDestinationNotFound
	}
	delete(r.destinations, id)
	return nil
}
