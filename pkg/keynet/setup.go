// package keynet converts an Ed25519 identity key pair in tor's binary
// key file format into a PKCS#8 PEM private key, and derives the
// keynet label of its public key.
package keynet

import (
	"fmt"

	"keynet.org/keynet-go/pkg/crypto"
	"keynet.org/keynet-go/pkg/log"
)

// Config names the input key files and the output PEM file of Setup.
type Config struct {
	PublicKeyFile string // tor ed25519_master_id_public_key
	SecretKeyFile string // tor ed25519_master_id_secret_key
	OutputFile    string // PEM private key, replaced if it exists

	// Require the tor header prefixes on both key files.
	CheckHeaders bool
}

// Result is the outcome of a successful Setup.
type Result struct {
	Label     string
	PublicKey crypto.PublicKey
	// Set when the public key embedded in the secret key file differs
	// from the public key file. The public key file wins.
	KeyMismatch bool
}

func loadBlobs(cfg *Config) (pubBlob, secBlob []byte, err error) {
	pubBlob, err = LoadBlob(cfg.PublicKeyFile, PublicKeyHeader)
	if err != nil {
		return nil, nil, err
	}
	secBlob, err = LoadBlob(cfg.SecretKeyFile, SecretKeyHeader)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CheckHeaders {
		if err := CheckHeader(pubBlob, PublicKeyHeader); err != nil {
			return nil, nil, fmt.Errorf("public key file %q: %w", cfg.PublicKeyFile, err)
		}
		if err := CheckHeader(secBlob, SecretKeyHeader); err != nil {
			return nil, nil, fmt.Errorf("secret key file %q: %w", cfg.SecretKeyFile, err)
		}
	}
	return pubBlob, secBlob, nil
}

// Setup reads the two key files, writes the PEM private key file and
// returns the label.
func Setup(cfg *Config) (*Result, error) {
	pubBlob, secBlob, err := loadBlobs(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("read %d byte public key file and %d byte secret key file\n",
		len(pubBlob), len(secBlob))

	pub, err := ExtractPublicKey(pubBlob)
	if err != nil {
		return nil, err
	}
	seed, secretPub, err := ExtractSecretKey(secBlob)
	if err != nil {
		return nil, err
	}

	res := Result{PublicKey: pub}
	if pub != secretPub {
		log.Warning("public key from secret blob does not match public key file\n")
		res.KeyMismatch = true
	}
	if derived := crypto.NewKeyPair(&seed).Public(); derived != pub {
		log.Debug("public key derived from seed is %x, public key file has %x\n", derived, pub)
	}

	res.Label = Label(&pub)
	if got, err := DecodeLabel(res.Label); err != nil || got != pub {
		return nil, fmt.Errorf("internal error, label %q does not round trip: %v", res.Label, err)
	}

	if err := WritePrivateKeyFile(cfg.OutputFile, seed[:]); err != nil {
		return nil, err
	}
	log.Debug("wrote private key to %q\n", cfg.OutputFile)

	return &res, nil
}
