package internal

// Version is the educalm release, set at build time with
// -ldflags "-X codeberg.org/snonux/educalm/internal.Version=..."
var Version = "0.1.0"
