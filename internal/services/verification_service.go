package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost factor 12 required by PCI DSS v4.0 for financial data protection
	BCryptCost = 12
)

var (
	ErrVerificationFailed      = errors.New("card verification code is incorrect")
	ErrInvalidVerificationCode = errors.New("verification code must be 4 digits")

	verificationCodeRegex = regexp.MustCompile(`^\d{4}$`)
)

// VerificationService hashes and checks card verification codes. The core
// never stores or compares codes in the clear.
type VerificationService struct {
	cost int
}

// NewVerificationService creates a bcrypt-backed verifier with the default cost
func NewVerificationService() VerifierInterface {
	return &VerificationService{cost: BCryptCost}
}

// Hash derives the one-way hash stored alongside the card
func (vs *VerificationService) Hash(code string) (string, error) {
	if !verificationCodeRegex.MatchString(code) {
		return "", ErrInvalidVerificationCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), vs.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash verification code: %w", err)
	}

	return string(hash), nil
}

// Verify checks a presented code against the stored hash
func (vs *VerificationService) Verify(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
