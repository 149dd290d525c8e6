package shop

// A11yPrefs are the accessibility toggles applied to rendered views.
// Any parse failure resets both to false.
type A11yPrefs struct {
	LargeText    bool `json:"largeText"`
	HighContrast bool `json:"highContrast"`
}

// Theme returns the stored theme preference, "" when unset or invalid.
func (s *Shop) Theme() string {
	var theme string
	if s.st.Load(keyTheme, &theme) && (theme == "light" || theme == "dark") {
		return theme
	}
	return ""
}

// SetTheme stores a theme preference. Values other than light/dark are
// ignored.
func (s *Shop) SetTheme(theme string) bool {
	if theme != "light" && theme != "dark" {
		return false
	}
	return s.st.Save(keyTheme, theme)
}

// ResolveTheme returns the effective theme: the stored preference, or
// the ambient one when unset. For a terminal the ambient signal is the
// detected background darkness.
func (s *Shop) ResolveTheme(darkBackground bool) string {
	if theme := s.Theme(); theme != "" {
		return theme
	}
	if darkBackground {
		return "dark"
	}
	return "light"
}

// A11y returns the stored accessibility preferences, both false when
// missing or malformed.
func (s *Shop) A11y() A11yPrefs {
	var prefs A11yPrefs
	s.st.Load(keyA11y, &prefs)
	return prefs
}

// SetA11y stores the accessibility preferences.
func (s *Shop) SetA11y(prefs A11yPrefs) bool {
	return s.st.Save(keyA11y, prefs)
}
