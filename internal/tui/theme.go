package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceFg  = ac("235", "252")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorControlBg  = ac("252", "235")
	colorWarn       = ac("166", "214")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	styleHeaderDim = lipgloss.NewStyle().Foreground(colorMuted)
	styleFocusCol  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	styleDragging  = lipgloss.NewStyle().Bold(true).Reverse(true)
	styleDropOn    = lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	styleCursorRow = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
	styleGroupRow  = lipgloss.NewStyle().Bold(true)
	styleMuted     = lipgloss.NewStyle().Foreground(colorMuted)
	styleStatus    = lipgloss.NewStyle().Foreground(colorWarn)
	styleInput     = lipgloss.NewStyle().Background(colorControlBg)
)

// applyColorProfilePreference picks the Lip Gloss color profile from the
// environment, honoring NO_COLOR.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// TERM/COLORTERM can report more than the detector sees (macOS Terminal.app).
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference forces light or dark adaptive colors when
// ASSETGRID_THEME is set; otherwise Lip Gloss detects the background.
func applyThemePreference() {
	switch themeName() {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}

func themeName() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ASSETGRID_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	return ""
}
