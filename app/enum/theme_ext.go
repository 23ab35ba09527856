package enum

// flagLight is the only stored flag value that selects the light theme.
const flagLight = "1"

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsLight reports whether the theme is the light one.
func (t Theme) IsLight() bool {
	return t == ThemeLight
}

// Flag returns the persisted representation of the theme, "1" for light and "0" for dark.
func (t Theme) Flag() string {
	if t == ThemeLight {
		return flagLight
	}
	return "0"
}

// ThemeFromFlag converts a stored flag into a theme. Only "1" is light, anything else,
// including an empty value, is dark.
func ThemeFromFlag(flag string) Theme {
	if flag == flagLight {
		return ThemeLight
	}
	return ThemeDark
}
