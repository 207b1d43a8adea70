package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

func TestDestinationRepository_Seeded(t *testing.T) {
	repo := NewSeededDestinationRepository()

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(sampleDestinations) {
		t.Fatalf("expected %d seeded destinations, got %d", len(sampleDestinations), len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not ordered by id: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestDestinationRepository_InsertDuplicate(t *testing.T) {
	repo := NewDestinationRepository()
	dest := domain.Destination{ID: "X", Name: "Somewhere", Description: "d", Location: "l", PricePerNight: 10}

	if err := repo.Insert(context.Background(), dest); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(context.Background(), dest); !errors.Is(err, domain.ErrDuplicateDestination) {
		t.Fatalf("expected ErrDuplicateDestination, got %v", err)
	}
}

func TestDestinationRepository_DeleteMissing(t *testing.T) {
	repo := NewDestinationRepository()

	if err := repo.Insert(context.Background(), domain.Destination{ID: "X"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Delete(context.Background(), "X"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "X"); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound on second delete, got %v", err)
	}
}
