package theme

// StorageKey is the preference key holding the persisted mode.
const StorageKey = "theme"

// Mode is the light/dark preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode maps a stored value to a Mode. Anything other than "dark"
// resolves to Light.
func ParseMode(value string) Mode {
	if value == string(Dark) {
		return Dark
	}
	return Light
}

// IsDark reports whether the dark marker applies.
func (m Mode) IsDark() bool {
	return m == Dark
}

// Opposite returns the mode a toggle switches to.
func (m Mode) Opposite() Mode {
	if m.IsDark() {
		return Light
	}
	return Dark
}

// Icon is the status glyph for the mode: a sun while dark, a moon while light.
func (m Mode) Icon() string {
	if m.IsDark() {
		return "☀"
	}
	return "☾"
}

// IconAsset names the image asset matching Icon.
func (m Mode) IconAsset() string {
	if m.IsDark() {
		return "assets/images/icon-sun.svg"
	}
	return "assets/images/icon-moon.svg"
}

func (m Mode) String() string {
	return string(m)
}
