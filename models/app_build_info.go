package models

// AppBuildInfo carries the build metadata injected at link time
// (-ldflags "-X main.buildVersion=...").
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
