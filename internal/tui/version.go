package tui

// AppVersion is stamped at build time.
var AppVersion = "0"
