package platform

// Package platform contains OS/platform integration: filesystem helpers,
// document saving, and OS open/reveal.
