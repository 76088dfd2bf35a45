package auth

import (
	"context"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// AuthUC defines the interface for phone login business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridebook/services/auth AuthUC
type AuthUC interface {
	SendOTP(ctx context.Context, phoneNumber string) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error)
}
