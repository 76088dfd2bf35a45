package utils

import (
	"math/rand"
	"strconv"
	"unicode/utf8"
)

// MinPhoneNumberLength is the shortest phone number accepted for OTP login
const MinPhoneNumberLength = 10

// IsValidPhoneNumber only checks presence and length; no format or country
// code rules are applied.
func IsValidPhoneNumber(phone string) bool {
	return utf8.RuneCountInString(phone) >= MinPhoneNumberLength
}

// GenerateOTPCode returns a uniformly random 4-digit code in [1000, 9999].
// Codes never have a leading zero.
func GenerateOTPCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
