package rides

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// RideUC defines the interface for ride booking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridebook/services/rides RideUC
type RideUC interface {
	CreateRideRequest(ctx context.Context, req *models.CreateRideRequest) (*models.RideResponse, error)
}
