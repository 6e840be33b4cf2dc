package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFile    = "📄"
	IconMenu    = "☰"
	IconSuggest = "✎"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CreatedTimeLayout  = "15:04:05"
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 400
)

// Layout sizing (RecordRow / lists)
const (
	RowMinWidth  float32 = 360
	RowMinHeight float32 = 44
	LogoSize     float32 = 32
)

// Notification behavior
const (
	NotificationAutoHide = 8 * time.Second
)

// URL schemes accepted without a warning
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
