package utils

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt hash of a throwaway string. Login compares
// against it when the email is unknown so that both unauthorized paths
// perform a comparable amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BurnPassword runs a bcrypt comparison against a fixed hash and
// discards the result. Called on the unknown-email login path.
func BurnPassword(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
