package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomTokenGenerator mints fixed-length alphanumeric session tokens from
// crypto/rand. Tokens are bearer credentials, so the length directly bounds
// the guessing space: 62^30 at the default length.
type RandomTokenGenerator struct {
	length int
}

func NewRandomTokenGenerator(length int) *RandomTokenGenerator {
	return &RandomTokenGenerator{length: length}
}

func (g *RandomTokenGenerator) Generate() (string, error) {
	if g.length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", g.length)
	}
	out := make([]byte, g.length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}
		out[i] = tokenAlphabet[n.Int64()]
	}
	return string(out), nil
}
