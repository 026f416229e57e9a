// package crypto provides lowest-level Ed25519 key types used by keynet
package crypto

import (
	"crypto/ed25519"
)

const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.SeedSize
)

type (
	PublicKey [PublicKeySize]byte
	// PrivateKey is the 32-byte seed of RFC 8032, not the expanded
	// 64-byte form used by crypto/ed25519.
	PrivateKey [PrivateKeySize]byte
)

// KeyPair is an Ed25519 key pair expanded from a seed.
type KeyPair struct {
	secret ed25519.PrivateKey
}

func NewKeyPair(seed *PrivateKey) *KeyPair {
	return &KeyPair{secret: ed25519.NewKeyFromSeed(seed[:])}
}

func (k *KeyPair) Public() (ret PublicKey) {
	copy(ret[:], k.secret.Public().(ed25519.PublicKey))
	return
}

// Ed25519 returns the key in the representation expected by
// crypto/x509 and crypto/tls.
func (k *KeyPair) Ed25519() ed25519.PrivateKey {
	return k.secret
}
