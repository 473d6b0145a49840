package model

// Package model defines domain data structures used across the app: form
// fields, asset entries, submission states and results. Structures are
// designed for direct binding in the UI and explicit state transitions.
