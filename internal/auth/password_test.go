package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("password123")

	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)
	assert.NoError(t, VerifyPassword(hashed, "password123"))
	assert.Error(t, VerifyPassword(hashed, "wrongpass"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, _ := HashPassword("password123")
	second, _ := HashPassword("password123")

	assert.NotEqual(t, first, second)
}

func TestIsHashed(t *testing.T) {
	hashed, _ := HashPassword("password123")

	assert.True(t, IsHashed(hashed))
	assert.False(t, IsHashed("password123"))
	assert.False(t, IsHashed(""))
	// A password that merely mentions the prefix mid-string is not a hash
	assert.False(t, IsHashed("pw$2a$10$rest"))
}
