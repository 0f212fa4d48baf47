package app

// version is set at build time via -ldflags "-X ...app.version=v1.2.3".
var version = "dev"

// BuildVersion returns the application version string.
func BuildVersion() string {
	return version
}
