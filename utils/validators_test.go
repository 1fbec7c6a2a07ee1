// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("kari.nordmann@example.com"))
	assert.True(t, IsValidEmail("ola+test@sub.example.no"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Abc123"))
	assert.True(t, IsValidPassword("secret!1"))
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("alllowercase"))
}

func TestIsValidEmissionFactor(t *testing.T) {
	assert.True(t, IsValidEmissionFactor(0))
	assert.True(t, IsValidEmissionFactor(0.118))
	assert.True(t, IsValidEmissionFactor(2))
	assert.False(t, IsValidEmissionFactor(-0.01))
	assert.False(t, IsValidEmissionFactor(2.5))
}
