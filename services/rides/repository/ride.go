package repository

import (
	"context"
	"fmt"

	"github.com/piresc/ridebook/internal/pkg/database"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// RideRepo stores ride requests in the document store
type RideRepo struct {
	store database.DocumentStore
}

// NewRideRepository creates a new ride repository
func NewRideRepository(store database.DocumentStore) *RideRepo {
	return &RideRepo{store: store}
}

// CreateRide inserts a ride request and returns its generated ID
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.RideRequest) (string, error) {
	id, err := r.store.Insert(ctx, models.CollectionRideRequests, ride)
	if err != nil {
		return "", fmt.Errorf("failed to create ride request: %w", err)
	}
	return id, nil
}
