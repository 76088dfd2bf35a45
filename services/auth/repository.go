package auth

import (
	"context"
	"errors"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// ErrOTPNotFound is returned when no OTP is stored for a phone number
var ErrOTPNotFound = errors.New("OTP not found")

// OTPRepo defines the OTP storage interface, keyed by phone number
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridebook/services/auth OTPRepo
type OTPRepo interface {
	GetOTP(ctx context.Context, phoneNumber string) (*models.OTPEntry, error)
	SetOTP(ctx context.Context, phoneNumber string, entry *models.OTPEntry) error
	DeleteOTP(ctx context.Context, phoneNumber string) error
}
