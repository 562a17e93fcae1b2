package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay   = "▶"
	IconFolder = "📁"
)

// Text fragments
const (
	SearchingLine  = "Searching..."
	NoResultsLine  = "No results found."
	NoModulesLabel = "(no modules)"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 900
	WindowMinHeight float32 = 640
)

// Polling
const (
	LogPollInterval = 100 * time.Millisecond
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)
