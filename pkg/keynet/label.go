package keynet

import (
	"bytes"
	"encoding/base32"
	"strings"

	"golang.org/x/crypto/sha3"

	"keynet.org/keynet-go/pkg/crypto"
)

// Labels use the onion service v3 address encoding, see section 6 of
// https://spec.torproject.org/rend-spec-v3:
//
//	label = base32(pubkey || checksum || version)
//	checksum = SHA3-256(".onion checksum" || pubkey || version)[:2]
const (
	labelVersion      = 0x03
	labelChecksumSize = 2
	labelSize         = crypto.PublicKeySize + labelChecksumSize + 1

	checksumPrefix = ".onion checksum"
)

// LabelLength is the length of an encoded label in characters: the
// labelSize bytes are 280 bits, exactly 56 base32 digits of 5 bits.
const LabelLength = labelSize * 8 / 5

func labelChecksum(pub *crypto.PublicKey) []byte {
	h := sha3.New256()
	h.Write([]byte(checksumPrefix))
	h.Write(pub[:])
	h.Write([]byte{labelVersion})
	return h.Sum(nil)[:labelChecksumSize]
}

// Label encodes a public key as a lowercase base32 label.
func Label(pub *crypto.PublicKey) string {
	addr := bytes.Join([][]byte{
		pub[:], labelChecksum(pub), []byte{labelVersion},
	}, nil)
	// 35 bytes is a multiple of 5, so the standard encoding adds no
	// padding here.
	return strings.ToLower(base32.StdEncoding.EncodeToString(addr))
}

// EncodeLabel is like Label, for keys of unchecked size.
func EncodeLabel(pub []byte) (string, error) {
	if len(pub) != crypto.PublicKeySize {
		return "", &ValidationError{Msg: "expected 32-byte Ed25519 pubkey"}
	}
	var key crypto.PublicKey
	copy(key[:], pub)
	return Label(&key), nil
}

// DecodeLabel parses a label in either case, verifies version and
// checksum, and returns the public key.
func DecodeLabel(label string) (crypto.PublicKey, error) {
	var pub crypto.PublicKey
	if len(label) != LabelLength {
		return pub, validationErrorf("invalid label length %d, expected %d", len(label), LabelLength)
	}
	addr, err := base32.StdEncoding.DecodeString(strings.ToUpper(label))
	if err != nil {
		return pub, validationErrorf("invalid label encoding: %v", err)
	}
	if len(addr) != labelSize {
		return pub, validationErrorf("invalid label size %d", len(addr))
	}
	if v := addr[labelSize-1]; v != labelVersion {
		return pub, validationErrorf("unsupported label version %d", v)
	}
	copy(pub[:], addr)
	if !bytes.Equal(addr[crypto.PublicKeySize:labelSize-1], labelChecksum(&pub)) {
		return crypto.PublicKey{}, validationErrorf("invalid label checksum")
	}
	return pub, nil
}
