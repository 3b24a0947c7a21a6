package tui

// Color constants for the healthclub TUI theme
const (
	// Base Colors
	ColorCardBackground = "#10251F" // Deep green
	ColorBorder         = "#35524A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F1EE" // Field labels, user input, titles
	ColorSecondaryText = "#A9BDB6" // Hints and inactive menu entries
	ColorDisabledText  = "#667A73" // Skipped fields
	ColorPlaceholder   = "#A9BDB6"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#10B981" // Logo, active borders
	ColorAccentBright = "#6EE7B7" // Current step, selected option

	// State Colors
	ColorError   = "#EF4444" // Validation errors, failed bookings
	ColorSuccess = "#22C55E" // Saved
	ColorWarning = "#F59E0B"
)
