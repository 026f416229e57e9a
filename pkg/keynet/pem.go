package keynet

import (
	"bytes"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"keynet.org/keynet-go/internal/fileio"
	"keynet.org/keynet-go/pkg/crypto"
)

// Private keys are written as unencrypted PKCS#8 (RFC 5208, with the
// Ed25519 algorithm identifier of RFC 8410), the format expected by
// crypto/tls and most TLS servers.
const pemPrivateKeyTag = "PRIVATE KEY"

var NoPEMError = errors.New("not a PEM file")

func writePrivateKey(w io.Writer, keyPair *crypto.KeyPair) error {
	der, err := x509.MarshalPKCS8PrivateKey(keyPair.Ed25519())
	if err != nil {
		return err
	}
	return pem.Encode(w, &pem.Block{Type: pemPrivateKeyTag, Bytes: der})
}

// MarshalPrivateKeyPEM encodes the Ed25519 key with the given 32-byte
// seed as a PEM file.
func MarshalPrivateKeyPEM(seed []byte) ([]byte, error) {
	if len(seed) != crypto.PrivateKeySize {
		return nil, &ValidationError{Msg: "expected 32-byte Ed25519 seed"}
	}
	var priv crypto.PrivateKey
	copy(priv[:], seed)

	var buf bytes.Buffer
	if err := writePrivateKey(&buf, crypto.NewKeyPair(&priv)); err != nil {
		return nil, fmt.Errorf("encoding private key failed: %w", err)
	}
	return buf.Bytes(), nil
}

// ParsePrivateKeyPEM extracts the seed from a PKCS#8 PEM file.
func ParsePrivateKeyPEM(ascii []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(ascii)
	if block == nil {
		return crypto.PrivateKey{}, NoPEMError
	}
	if block.Type != pemPrivateKeyTag {
		return crypto.PrivateKey{}, fmt.Errorf("unexpected PEM tag: %q", block.Type)
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return crypto.PrivateKey{}, fmt.Errorf("invalid private key: %w", err)
	}
	ed, ok := key.(ed25519.PrivateKey)
	if !ok {
		return crypto.PrivateKey{}, fmt.Errorf("unexpected private key type %T", key)
	}
	var priv crypto.PrivateKey
	copy(priv[:], ed.Seed())
	return priv, nil
}

func writePEMFile(fileName string, ascii []byte) error {
	err := fileio.WithAtomicFile(fileName, 0600, func(w io.Writer) error {
		_, err := w.Write(ascii)
		return err
	})
	if err != nil {
		return &IOError{Op: "writing", Path: fileName, Err: err}
	}
	return nil
}

// WritePrivateKeyFile writes the key with the given seed to fileName,
// replacing any existing file. The file is readable by owner only.
func WritePrivateKeyFile(fileName string, seed []byte) error {
	ascii, err := MarshalPrivateKeyPEM(seed)
	if err != nil {
		return err
	}
	return writePEMFile(fileName, ascii)
}
