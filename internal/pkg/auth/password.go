package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Costo de hash para bcrypt
const BcryptCost = 12

// HashPassword genera el hash de la contraseña
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifica la contraseña contra el hash almacenado
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
