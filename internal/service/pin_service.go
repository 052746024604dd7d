package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type PinService interface {
	// Validate reports whether pin matches the configured application PIN.
	Validate(pin string) (bool, error)
}

type pinService struct {
	plain string
	hash  []byte
}

// NewPinService accepts either the plain PIN or its bcrypt hash; the hash wins when both are set.
func NewPinService(plain, hash string) PinService {
	s := &pinService{plain: plain}
	if hash != "" {
		s.hash = []byte(hash)
	}
	return s
}

func (s *pinService) Validate(pin string) (bool, error) {
	if s.hash != nil {
		err := bcrypt.CompareHashAndPassword(s.hash, []byte(pin))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	}
	if s.plain == "" {
		return false, ErrPinNotConfigured
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(s.plain)) == 1, nil
}
