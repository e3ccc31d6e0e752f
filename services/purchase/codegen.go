package purchase

import (
	"crypto/rand"
	"fmt"

	purchase_constants "Wurder/constants/purchase"
)

// CodeGenerator produces candidate game codes. Injected so tests can
// force a known sequence.
type CodeGenerator interface {
	NewCode() (string, error)
}

// CryptoGenerator draws codes from crypto/rand. Codes gate entry to
// live games, so candidates must not be guessable from earlier ones.
type CryptoGenerator struct{}

// NewCryptoGenerator creates a crypto/rand backed code generator
func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

// NewCode returns one candidate code of the configured length.
func (g *CryptoGenerator) NewCode() (string, error) {
	buf := make([]byte, purchase_constants.CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %v", err)
	}

	code := make([]byte, purchase_constants.CodeLength)
	for i, b := range buf {
		code[i] = purchase_constants.CodeAlphabet[int(b)%len(purchase_constants.CodeAlphabet)]
	}
	return string(code), nil
}
