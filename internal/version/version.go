package version

import "runtime/debug"

// AppName is the human-facing bot name used in logs and presence.
const AppName = "lexibot"

// Version reports the module version baked in by the Go toolchain,
// or "devel" for local builds.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
