package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/services/auth"
)

// OTPStore keeps OTPs in process memory. Entries are never swept; an expired
// entry lives until a verification removes it or a new OTP overwrites it.
type OTPStore struct {
	mu      sync.RWMutex
	entries map[string]models.OTPEntry
}

// NewOTPStore creates an empty OTP store
func NewOTPStore() *OTPStore {
	return &OTPStore{
		entries: make(map[string]models.OTPEntry),
	}
}

// GetOTP returns a copy of the entry for phoneNumber
func (s *OTPStore) GetOTP(_ context.Context, phoneNumber string) (*models.OTPEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[phoneNumber]
	if !ok {
		return nil, auth.ErrOTPNotFound
	}
	return &entry, nil
}

// SetOTP stores entry for phoneNumber, replacing any previous one
func (s *OTPStore) SetOTP(_ context.Context, phoneNumber string, entry *models.OTPEntry) error {
	if entry == nil {
		return errors.New("nil OTP entry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phoneNumber] = *entry
	return nil
}

// DeleteOTP removes the entry for phoneNumber; deleting a missing entry is a no-op
func (s *OTPStore) DeleteOTP(_ context.Context, phoneNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, phoneNumber)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (s *OTPStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
