package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDNI(t *testing.T) {
	valid := []string{"12345678", "00000001", "99999999"}
	for _, dni := range valid {
		assert.True(t, IsValidDNI(dni), "dni %q", dni)
	}

	invalid := []string{"", "1234567", "123456789", "1234567a", " 12345678", "12345678 "}
	for _, dni := range invalid {
		assert.False(t, IsValidDNI(dni), "dni %q", dni)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"elector@correo.pe", "a.b+c@dominio.com"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "email %q", email)
	}

	invalid := []string{"", "sin-arroba", "@dominio.com", "user@", "user@dominio"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "email %q", email)
	}
}
