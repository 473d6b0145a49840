package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconRemove   = "−"
	IconClose    = "×"
	IconSuccess  = "✓"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 560
	WindowMinHeight float32 = 640

	ErrorLabelTextSize float32 = 11
)

// Notice behavior
const (
	NoticeAutoHide = 5 * time.Second
)

// Success overlay behavior
const (
	SuccessOverlayWidth    float32 = 360
	SuccessOverlayHeight   float32 = 160
	SuccessOverlayAutoHide         = 4 * time.Second
)

// Entry group animation settling
const (
	GroupAddSettleDelay = 250 * time.Millisecond
)
