package core

// Version is overridden at build time with
// -ldflags "-X github.com/stevegt/gemchat/core.Version=<version>".
var Version = "0.1.0"

// CodeVersion returns the version of the gemchat code.
func CodeVersion() string {
	return Version
}
