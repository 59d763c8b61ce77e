package auth

import (
	"strings"
	"unicode"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores input past 72 bytes.
	bcryptMaxPasswordLength = 72
)

type bcryptHasher struct {
	cost  int
	rules config.PasswordStrengthConfig
}

func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	rules := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength, MaxLength: bcryptMaxPasswordLength}
	if cfg.PasswordStrength != nil {
		rules = *cfg.PasswordStrength
		if rules.MinLength <= 0 {
			rules.MinLength = defaultMinPasswordLength
		}
		if rules.MaxLength <= 0 || rules.MaxLength > bcryptMaxPasswordLength {
			rules.MaxLength = bcryptMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, rules: rules}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(hashed), err
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is required")
	}
	if len(password) < h.rules.MinLength {
		return errors.Errorf("password must be at least %d characters", h.rules.MinLength)
	}
	if len(password) > h.rules.MaxLength {
		return errors.Errorf("password must be at most %d characters", h.rules.MaxLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case h.rules.RequireUppercase && !upper:
		return errors.New("password must contain an uppercase letter")
	case h.rules.RequireLowercase && !lower:
		return errors.New("password must contain a lowercase letter")
	case h.rules.RequireNumbers && !digit:
		return errors.New("password must contain a number")
	case h.rules.RequireSpecial && !special:
		return errors.New("password must contain a special character")
	}

	return nil
}
