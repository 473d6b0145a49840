package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user input to the submission orchestrator and
// renders the delivery form, asset entry groups, notices, progress, and
// settings. All UI strings are localized via Localization.
