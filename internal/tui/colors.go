package tui

// Color constants for the pagestreak TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F231A" // Dark forest green
	ColorBorder         = "#3B4A43" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#EAF2ED" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#AFC2B7" // Secondary text - muted sage
	ColorDisabledText  = "#6E7D75" // Disabled/muted text
	ColorPlaceholder   = "#AFC2B7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#059669" // Logo, accent elements, active borders
	ColorAccentBright = "#34D399" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
