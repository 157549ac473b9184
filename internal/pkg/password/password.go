// Package password wraps bcrypt hashing behind the two operations the rest
// of the system needs: derive a digest and check a candidate against one.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted one-way digest from secret. A fresh salt is drawn on
// every call, so the same secret hashes to different digests.
func Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether secret matches digest. A mismatch is a normal
// outcome, not an error. The comparison takes the same time regardless of
// how much of the secret matches.
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
