package usecase

import (
	"context"
	"errors"

	"github.com/piresc/ridebook/internal/pkg/apperror"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/requestcontext"
	"github.com/piresc/ridebook/internal/utils"
	"github.com/piresc/ridebook/services/auth"
	"github.com/sirupsen/logrus"
)

// UserIDPrefix is prepended to the phone number to form the user ID
const UserIDPrefix = "user_"

// SendOTP issues a new OTP for the phone number, replacing any live one
func (u *AuthUC) SendOTP(ctx context.Context, phoneNumber string) (*models.SendOTPResponse, error) {
	if !utils.IsValidPhoneNumber(phoneNumber) {
		return nil, apperror.Validation("Valid phone number is required")
	}

	log := requestcontext.Logger(ctx, u.logger)

	code := u.generateCode()
	entry := &models.OTPEntry{
		Code:      code,
		ExpiresAt: u.now().Add(u.otpTTL()),
	}

	if err := u.otpRepo.SetOTP(ctx, phoneNumber, entry); err != nil {
		log.WithError(err).Error("Failed to store OTP")
		return nil, apperror.Internal("Failed to send OTP", err)
	}

	// No SMS gateway: the code is only written to the log
	log.WithFields(logrus.Fields{
		"phone":      utils.MaskPhoneNumber(phoneNumber),
		"otp_code":   code,
		"expires_at": models.FormatTime(entry.ExpiresAt),
	}).Info("Generated OTP")

	return &models.SendOTPResponse{
		Success: true,
		Message: "OTP sent successfully",
		OTP:     code,
	}, nil
}

// VerifyOTP checks the code for the phone number. A matching, unexpired code
// is consumed and exchanged for the session token.
func (u *AuthUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error) {
	if phoneNumber == "" || code == "" {
		return nil, apperror.Validation("Phone number and OTP are required")
	}

	log := requestcontext.Logger(ctx, u.logger)

	entry, err := u.otpRepo.GetOTP(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) {
			return nil, apperror.ErrInvalidOTP
		}
		return nil, apperror.Internal("Failed to verify OTP", err)
	}

	if entry.Code != code {
		return nil, apperror.ErrInvalidOTP
	}

	if u.now().After(entry.ExpiresAt) {
		if err := u.otpRepo.DeleteOTP(ctx, phoneNumber); err != nil {
			log.WithError(err).Warn("Failed to delete expired OTP")
		}
		return nil, apperror.ErrOTPExpired
	}

	if err := u.otpRepo.DeleteOTP(ctx, phoneNumber); err != nil {
		return nil, apperror.Internal("Failed to verify OTP", err)
	}

	userID := UserIDPrefix + phoneNumber
	log.WithField("user_id", userID).Info("OTP verified")

	return &models.AuthResponse{
		Success: true,
		UserID:  userID,
		Token:   u.cfg.Auth.SessionToken,
	}, nil
}
