// package version reports the keynet-go module version embedded by the
// go toolchain.
package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

const develVersion = "(devel)"

func ModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	// Set by go install .../keynet-go/cmd/keynet-setup@vX.Y.Z.
	if info.Main.Version != develVersion {
		return info.Main.Version
	}

	// The vcs.* settings exist only for "go build" in a git
	// checkout without explicit source files on the command line.
	vcs := make(map[string]string)
	for _, setting := range info.Settings {
		vcs[setting.Key] = setting.Value
	}
	revision, ok := vcs["vcs.revision"]
	if !ok {
		return info.Main.Version
	}
	v := "git " + revision
	if t, ok := vcs["vcs.time"]; ok {
		v += " " + t
	}
	// Untracked files count as modifications too.
	if vcs["vcs.modified"] != "false" {
		v += " (with local changes)"
	}
	return v
}

func DisplayVersion(w io.Writer, tool string) {
	fmt.Fprintf(w, "%s (keynet-go module) %s\n", tool, ModuleVersion())
}
