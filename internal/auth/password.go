package auth

import "golang.org/x/crypto/bcrypt"

const passwordHashCost = 12

// HashPassword applies a salted one-way transform. Output is
// non-deterministic; the salt is embedded in the digest.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword recomputes and compares using bcrypt's built-in comparator,
// which does not short-circuit on the first mismatching byte.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
