package version

// Version is overridden at build time:
// go build -ldflags "-X ctoup.com/devconnect/internal/version.Version=1.2.3" ./cmd/full
var Version = "dev"
