package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue    = lipgloss.Color("4")  // Blue - route dots, focus
	colorRed     = lipgloss.Color("1")  // Red - errors
	colorGreen   = lipgloss.Color("2")  // Green - times
	colorMagenta = lipgloss.Color("5")  // Magenta - platforms
	colorYellow  = lipgloss.Color("3")  // Yellow - loading, messages
	colorWhite   = lipgloss.Color("15") // White - names
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleTitle    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleSection  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleStation  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTime     = lipgloss.NewStyle().Foreground(colorGreen)
	stylePlatform = lipgloss.NewStyle().Foreground(colorMagenta)
	styleDot      = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleRail     = lipgloss.NewStyle().Foreground(colorGray)
	styleMuted    = lipgloss.NewStyle().Foreground(colorGray)
	styleMessage  = lipgloss.NewStyle().Foreground(colorYellow)
	styleJSON     = lipgloss.NewStyle().Foreground(colorWhite)
)

// Panel border styles
var (
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)

	styleInputPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue)
)

// "Get Data" button
var styleButton = lipgloss.NewStyle().
	Foreground(lipgloss.Color("15")).
	Background(colorBlue).
	Padding(0, 1)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
