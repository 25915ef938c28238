package version

// Version is the semantic version of the tool. Overridden at build time
// via -ldflags "-X .../src/version.Version=vX.Y.Z".
var Version = "v0.3.0"
