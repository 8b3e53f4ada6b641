package account

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword hashes password with an application-wide salt suffix on top
// of bcrypt's per-hash salt. Existing hashes were produced with the suffix,
// so it must stay stable for the deployment's lifetime.
func HashPassword(password, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password+salt matches the stored hash.
func VerifyPassword(hash, password, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+salt)) == nil
}
