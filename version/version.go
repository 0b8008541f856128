package version

// Version is the current retime release.
const Version = "0.2.0"
