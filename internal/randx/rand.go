// Package randx abstracts the randomness source used for invite tokens and
// payment account derivation, so tests can substitute a deterministic source.
package randx

import "crypto/rand"

// BlockSize is the number of random bytes returned by a single Read.
const BlockSize = 32

// Source yields fixed-size blocks of random bytes.
type Source interface {
	// Block returns BlockSize random bytes.
	Block() ([]byte, error)
}

// CryptoSource is the production Source backed by crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Block() ([]byte, error) {
	b := make([]byte, BlockSize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
