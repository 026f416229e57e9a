package keynet

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"keynet.org/keynet-go/pkg/crypto"
)

var labelPattern = regexp.MustCompile("^[a-z2-7=]+$")

func mustDecodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestLabel(t *testing.T) {
	for _, table := range []struct {
		pub   string
		label string
	}{
		// Checksum is cd0e.
		{"0000000000000000000000000000000000000000000000000000000000000000",
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqd"},
		// Checksum is b510.
		{"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			"aaaqeayeaudaocajbifqydiob4ibceqtcqkrmfyydenbwha5dyp3kead"},
		// Public key of RFC 8032, test 1.
		{"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
			"25njqamcweflpvkl73j4szahhihoc4xt3ktcgjnpaingr5yhkenl5sid"},
	} {
		pub := mustPublicKey(t, mustDecodeHex(t, table.pub))
		if got := Label(&pub); got != table.label {
			t.Errorf("unexpected label for %s: got %q, want %q", table.pub, got, table.label)
		}
		got, err := EncodeLabel(pub[:])
		if err != nil {
			t.Errorf("EncodeLabel failed: %v", err)
		} else if got != table.label {
			t.Errorf("EncodeLabel and Label disagree: %q vs %q", got, table.label)
		}
	}
}

func TestLabelProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		var pub crypto.PublicKey
		rng.Read(pub[:])

		label := Label(&pub)
		if len(label) != 56 || LabelLength != 56 {
			t.Fatalf("unexpected label length %d (LabelLength %d)", len(label), LabelLength)
		}
		if !labelPattern.MatchString(label) {
			t.Errorf("label %q has unexpected characters", label)
		}
		if again := Label(&pub); again != label {
			t.Errorf("label not deterministic: %q vs %q", label, again)
		}
		addr, err := base32.StdEncoding.DecodeString(strings.ToUpper(label))
		if err != nil {
			t.Fatalf("label %q is not base32: %v", label, err)
		}
		if !bytes.Equal(addr[:32], pub[:]) {
			t.Errorf("label %q does not start with public key %x", label, pub)
		}
		if addr[34] != 3 {
			t.Errorf("unexpected version byte %d", addr[34])
		}
		decoded, err := DecodeLabel(label)
		if err != nil {
			t.Errorf("DecodeLabel(%q) failed: %v", label, err)
		} else if decoded != pub {
			t.Errorf("DecodeLabel(%q) = %x, want %x", label, decoded, pub)
		}
	}
}

func TestEncodeLabelInvalidSize(t *testing.T) {
	for _, size := range []int{0, 31, 33, 64} {
		_, err := EncodeLabel(make([]byte, size))
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("size %d: expected ValidationError, got %v", size, err)
		} else if vErr.Msg != "expected 32-byte Ed25519 pubkey" {
			t.Errorf("size %d: unexpected message %q", size, vErr.Msg)
		}
	}
}

func TestDecodeLabel(t *testing.T) {
	const valid = "25njqamcweflpvkl73j4szahhihoc4xt3ktcgjnpaingr5yhkenl5sid"
	want := mustPublicKey(t, mustDecodeHex(t,
		"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"))

	for _, in := range []string{valid, strings.ToUpper(valid)} {
		pub, err := DecodeLabel(in)
		if err != nil {
			t.Errorf("DecodeLabel(%q) failed: %v", in, err)
		} else if pub != want {
			t.Errorf("DecodeLabel(%q) = %x, want %x", in, pub, want)
		}
	}

	// Flipping the first character alters the key, and hence the checksum.
	corrupt := "3" + valid[1:]
	// Last character encodes the version byte.
	badVersion := valid[:55] + "a"
	for _, in := range []string{
		"", valid[:55], valid + "a", corrupt, badVersion,
		valid[:54] + "!!",
	} {
		if pub, err := DecodeLabel(in); err == nil {
			t.Errorf("no error on invalid label %q, got %x", in, pub)
		}
	}
}

func TestLabelLength(t *testing.T) {
	const want = 56
	if LabelLength != want {
		t.Errorf("unexpected LabelLength %d, want %d", LabelLength, want)
	}
	// A whole number of base32 blocks, so no padding is ever emitted.
	if got := base32.StdEncoding.EncodedLen(labelSize); got != LabelLength {
		t.Errorf("base32 length %d differs from LabelLength %d", got, LabelLength)
	}
	// Only compiles while LabelLength is a constant.
	var _ [LabelLength]byte
}
