package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(rules *config.PasswordStrengthConfig) *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: rules,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(nil))

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret1", "not-a-hash"))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)
}

func TestBcryptHasher_DefaultStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(nil))

	assert.Error(t, hasher.ValidatePasswordStrength(""))
	assert.Error(t, hasher.ValidatePasswordStrength("12345"))
	assert.NoError(t, hasher.ValidatePasswordStrength("123456"))
	assert.Error(t, hasher.ValidatePasswordStrength(string(make([]byte, 73))))
}

func TestBcryptHasher_ConfiguredStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(&config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}))

	tests := []struct {
		password string
		wantErr  bool
	}{
		{password: "Short1!", wantErr: true},
		{password: "lowercase1!", wantErr: true},
		{password: "UPPERCASE1!", wantErr: true},
		{password: "NoDigits!!", wantErr: true},
		{password: "NoSpecial1", wantErr: true},
		{password: "Str0ng!Pass", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
