package usecase

import (
	"time"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/auth"
	"github.com/sirupsen/logrus"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	otpRepo auth.OTPRepo
	cfg     *models.Config
	logger  logrus.FieldLogger

	now          func() time.Time
	generateCode func() string
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(otpRepo auth.OTPRepo, cfg *models.Config, logger logrus.FieldLogger) *AuthUC {
	return &AuthUC{
		otpRepo:      otpRepo,
		cfg:          cfg,
		logger:       logger,
		now:          models.Now,
		generateCode: utils.GenerateOTPCode,
	}
}

func (u *AuthUC) otpTTL() time.Duration {
	return time.Duration(u.cfg.OTP.TTLMillis) * time.Millisecond
}
