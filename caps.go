package ui

import (
	"fmt"
	"os"
	"strings"
)

// ColorProfile is the range of colors an ANSI surface can show.
type ColorProfile uint8

const (
	// ProfileNone strips every color.
	ProfileNone ColorProfile = iota
	// Profile16 keeps the basic and bright palette.
	Profile16
	// Profile256 keeps the full ANSI 256 palette.
	Profile256
	// ProfileTrueColor passes 24-bit colors through.
	ProfileTrueColor
)

// trueColorVars are set by terminal emulators known to support 24-bit color.
var trueColorVars = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"VTE_VERSION", // GNOME Terminal, Tilix
}

// DetectColorProfile guesses the profile of the current terminal from the
// environment. NO_COLOR and TERM=dumb disable color; unknown terminals get
// the 16-color palette.
func DetectColorProfile() ColorProfile {
	return detectColorProfile(os.Getenv)
}

func detectColorProfile(getenv func(string) string) ColorProfile {
	if getenv("NO_COLOR") != "" {
		return ProfileNone
	}
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ProfileTrueColor
	}
	for _, k := range trueColorVars {
		if getenv(k) != "" {
			return ProfileTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return ProfileNone
	case strings.Contains(term, "truecolor"), strings.Contains(term, "direct"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return Profile256
	}
	return Profile16
}

// ParseColorProfile accepts "none", "16", "256" or "truecolor".
func ParseColorProfile(s string) (ColorProfile, error) {
	switch strings.ToLower(s) {
	case "none":
		return ProfileNone, nil
	case "16":
		return Profile16, nil
	case "256":
		return Profile256, nil
	case "truecolor", "24bit":
		return ProfileTrueColor, nil
	}
	return ProfileNone, fmt.Errorf("unknown color profile %q", s)
}

func (p ColorProfile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case Profile16:
		return "16"
	case Profile256:
		return "256"
	default:
		return "truecolor"
	}
}

// Convert returns the closest color the profile can show.
func (p ColorProfile) Convert(c Color) Color {
	switch {
	case c.IsDefault(), p == ProfileTrueColor:
		return c
	case p == ProfileNone:
		return DefaultColor()
	}
	c = c.ToANSI()
	if p == Profile16 && c.r >= 16 {
		return nearestBasic(c)
	}
	return c
}

// convertStyle applies Convert to both colors of s.
func (p ColorProfile) convertStyle(s Style) Style {
	return Style{Fg: p.Convert(s.Fg), Bg: p.Convert(s.Bg)}
}

// nearestBasic maps a color to the closest of the 16 basic colors.
func nearestBasic(c Color) Color {
	r, g, b := c.ToRGBValues()
	best, bestDist := 0, -1
	for i, rgb := range ansi16RGB {
		dr := int(r) - int(rgb[0])
		dg := int(g) - int(rgb[1])
		db := int(b) - int(rgb[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return ANSIColor(uint8(best))
}
