// package main provides a tool named keynet-setup
//
// Install:
//
//	$ go install keynet.org/keynet-go/cmd/keynet-setup@latest
//
// Usage:
//
//	$ keynet-setup --help
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt/v2"

	"keynet.org/keynet-go/internal/version"
	"keynet.org/keynet-go/pkg/keynet"
	"keynet.org/keynet-go/pkg/log"
)

const usage = `
Convert a tor Ed25519 identity key pair into a PKCS#8 private key in
PEM format, e.g., for use by a TLS server, and print the keynet label
of the public key on stdout.

The key files are tor's ed25519_master_id_public_key and
ed25519_master_id_secret_key. Only their trailing bytes are used:
the public key file ends with the 32-byte public key, and the secret
key file ends with the 32-byte seed followed by the public key. The
output file is replaced if it exists.
`

type settings struct {
	publicKeyFile string
	secretKeyFile string
	outputFile    string
	checkHeaders  bool
	logLevel      string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetDate(false)

	var s settings
	if code, done := s.parse(args, stdout, stderr); done {
		return code
	}
	if err := log.SetLevelFromString(s.logLevel); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	res, err := keynet.Setup(&keynet.Config{
		PublicKeyFile: s.publicKeyFile,
		SecretKeyFile: s.secretKeyFile,
		OutputFile:    s.outputFile,
		CheckHeaders:  s.checkHeaders,
	})
	if err != nil {
		log.Error("%v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, res.Label)
	return 0
}

// Returns done = true if the program should exit with the returned
// code without doing any work.
func (s *settings) parse(args []string, stdout, stderr io.Writer) (int, bool) {
	const params = "<ed25519_master_id_public_key> <ed25519_master_id_secret_key> <output_pem_key>"
	help := false
	showVersion := false
	s.logLevel = "info"

	set := getopt.New()
	set.SetProgram("keynet-setup")
	set.SetParameters(params)
	set.FlagLong(&help, "help", 0, "Show usage message and exit")
	set.FlagLong(&showVersion, "version", 'v', "Show program version and exit")
	set.FlagLong(&s.checkHeaders, "check-headers", 0, "Require tor key file headers")
	set.FlagLong(&s.logLevel, "log-level", 0,
		"One of debug, info, warning, error; error also hides the key mismatch warning", "level")

	err := set.Getopt(args, nil)
	// Check help first; if seen, ignore errors about other arguments.
	if help {
		fmt.Fprint(stdout, usage[1:]+"\n")
		set.PrintUsage(stdout)
		return 0, true
	}
	if showVersion {
		version.DisplayVersion(stdout, "keynet-setup")
		return 0, true
	}
	if err != nil {
		fmt.Fprintf(stderr, "err: %v\n", err)
		set.PrintUsage(stderr)
		return 1, true
	}
	positional := set.Args()
	if len(positional) != 3 {
		fmt.Fprintf(stderr, "usage: keynet-setup [options] %s\n", params)
		return 1, true
	}
	s.publicKeyFile, s.secretKeyFile, s.outputFile = positional[0], positional[1], positional[2]
	return 0, false
}
