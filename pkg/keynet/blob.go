package keynet

import (
	"bytes"
	"os"

	"keynet.org/keynet-go/pkg/crypto"
)

// Header prefixes of the key files written by tor, e.g.,
// "== ed25519v1-secret: type0 ==" padded with NUL bytes to 32 bytes.
const (
	PublicKeyHeader = "== ed25519v1-public"
	SecretKeyHeader = "== ed25519v1-secret"
)

// Trailing layout of a secret key blob: seed || public key.
const secretTailSize = crypto.PrivateKeySize + crypto.PublicKeySize

// LoadBlob reads the complete contents of a key file. The header
// prefix names the expected file type, but it is not checked; see
// CheckHeader.
func LoadBlob(fileName string, headerPrefix string) ([]byte, error) {
	blob, err := os.ReadFile(fileName)
	if err != nil {
		return nil, &IOError{Op: "reading", Path: fileName, Err: err}
	}
	return blob, nil
}

// CheckHeader fails unless blob starts with the given prefix.
func CheckHeader(blob []byte, headerPrefix string) error {
	if !bytes.HasPrefix(blob, []byte(headerPrefix)) {
		return validationErrorf("missing header %q", headerPrefix)
	}
	return nil
}

// ExtractPublicKey returns the last 32 bytes of a public key blob.
func ExtractPublicKey(blob []byte) (crypto.PublicKey, error) {
	var pub crypto.PublicKey
	if len(blob) < crypto.PublicKeySize {
		return pub, &ValidationError{Msg: "public key blob too short"}
	}
	copy(pub[:], blob[len(blob)-crypto.PublicKeySize:])
	return pub, nil
}

// ExtractSecretKey returns the seed and public key stored in the last
// 64 bytes of a secret key blob.
func ExtractSecretKey(blob []byte) (crypto.PrivateKey, crypto.PublicKey, error) {
	var seed crypto.PrivateKey
	var pub crypto.PublicKey
	if len(blob) < secretTailSize {
		return seed, pub, &ValidationError{Msg: "secret key blob too short"}
	}
	tail := blob[len(blob)-secretTailSize:]
	copy(seed[:], tail[:crypto.PrivateKeySize])
	copy(pub[:], tail[crypto.PrivateKeySize:])
	return seed, pub, nil
}
