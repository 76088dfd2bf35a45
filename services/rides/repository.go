package rides

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// RideRepo defines the ride request persistence interface
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridebook/services/rides RideRepo
type RideRepo interface {
	// CreateRide stores the record and returns the identifier assigned by the store
	CreateRide(ctx context.Context, ride *models.RideRequest) (string, error)
}
