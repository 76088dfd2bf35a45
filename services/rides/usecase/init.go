package usecase

import (
	"time"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/rides"
	"github.com/sirupsen/logrus"
)

// RideUC implements rides.RideUC
type RideUC struct {
	rideRepo rides.RideRepo
	logger   logrus.FieldLogger

	now func() time.Time
}

// NewRideUC creates a new ride usecase instance
func NewRideUC(rideRepo rides.RideRepo, logger logrus.FieldLogger) *RideUC {
	return &RideUC{
		rideRepo: rideRepo,
		logger:   logger,
		now:      models.Now,
	}
}
