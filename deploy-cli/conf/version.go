package conf

import "runtime/debug"

// Version is set at build time with -ldflags "-X .../conf.Version=v1.2.3".
var Version = ""

// BuildVersion returns Version, or the module version recorded in the binary.
func BuildVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
