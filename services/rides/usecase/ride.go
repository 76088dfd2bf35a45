package usecase

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

// CreateRideRequest validates a booking, stores it with status "requested"
// and returns the stored record with its generated ID
func (uc *RideUC) CreateRideRequest(ctx context.Context, req *models.CreateRideRequest) (*models.RideResponse, error) {
	if req == nil || req.UserID == "" || isFalsy(req.Pickup) || isFalsy(req.Drop) || isFalsy(req.Timestamp) {
		return nil, apperror.Validation(apperror.MsgMissingFields)
	}

	pickup, ok := parseCoordinates(req.Pickup)
	if !ok {
		return nil, apperror.Validation(apperror.MsgInvalidCoordinates)
	}
	drop, ok := parseCoordinates(req.Drop)
	if !ok {
		return nil, apperror.Validation(apperror.MsgInvalidCoordinates)
	}

	timestamp, err := normalizeTimestamp(req.Timestamp)
	if err != nil {
		return nil, apperror.Validation(apperror.MsgInvalidTimestamp)
	}

	now := models.FormatTime(uc.now())
	ride := &models.RideRequest{
		UserID:    req.UserID,
		Pickup:    pickup,
		Drop:      drop,
		Timestamp: timestamp,
		Status:    models.RideStatusRequested,
		CreatedAt: now,
		UpdatedAt: now,
	}

	log := requestcontext.Logger(ctx, uc.logger)

	rideID, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		log.WithFields(logrus.Fields{
			"user_id": req.UserID,
		}).WithError(err).Error("Failed to create ride request")
		return nil, apperror.Persistence("Failed to create ride request", err)
	}

	log.WithFields(logrus.Fields{
		"ride_id": rideID,
		"user_id": ride.UserID,
	}).Info("Ride request created")

	return &models.RideResponse{
		Success:     true,
		Message:     "Ride request created successfully",
		RideID:      rideID,
		RideRequest: *ride,
	}, nil
}
