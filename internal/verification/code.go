package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewCode returns a 6-digit numeric code, zero-padded.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
