// Package styles provides shared lipgloss styles for cmdbatch output.
//
// Styles always emit ANSI sequences. Writers created in the CLI downsample
// them with colorprofile, so piping to a file yields plain text.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Success is used for positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Warning is used for non-fatal problems (orange)
	Warning = lipgloss.Color("214")

	// Muted is used for verbose diagnostics (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color with bold
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// WarningStyle applies the warning color with bold
	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
