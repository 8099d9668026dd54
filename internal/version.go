package internal

// Version is the application version, overridable at build time via
// -ldflags "-X codeberg.org/snonux/tangocho/internal.Version=...".
var Version = "0.1.0"
