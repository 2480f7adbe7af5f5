// Package validation holds value checks shared by configuration and UI code.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value has the #RRGGBB form.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// Palette is the set of named colors checked by ValidatePaletteHex.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

// ValidatePaletteHex returns one message per color that is not #RRGGBB,
// each prefixed with the config path.
func ValidatePaletteHex(prefix string, p Palette) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}

	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.value) {
			errs = append(errs, prefix+"."+f.name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
