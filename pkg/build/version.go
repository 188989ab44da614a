package build

// Version is set at link time with -ldflags "-X github.com/storacha/appstore/pkg/build.Version=...".
var Version = "v0.0.0-dev"

// UserAgent identifies the client to remote APIs.
func UserAgent() string {
	return "appstore/" + Version
}
