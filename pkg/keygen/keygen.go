// Package keygen generates the opaque 20-character keys used as primary
// identifiers for users, books and sessions.
package keygen

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	keyLength = 20
)

// NewKey returns a 20-character key drawn from uppercase letters and digits
// using a cryptographically secure source.
func NewKey() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	key := make([]byte, keyLength)

	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		key[i] = alphabet[n.Int64()]
	}

	return string(key), nil
}
