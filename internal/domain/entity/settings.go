package entity

// Settings keys persisted in the settings store.
const (
	SettingRememberLayout = "remember_layout"
	SettingAutoDetect     = "auto_detect"
	SettingFirstTime      = "first_time"
	SettingSplitMode      = "split_mode"
	SettingEdgeToEdge     = "edge_to_edge"
)

// Preferences are the typed view of the settings blob.
type Preferences struct {
	RememberLayout bool
	AutoDetect     bool
	FirstTime      bool
	Mode           SplitMode
	EdgeToEdge     bool
}

// DefaultPreferences returns the values written on first run.
func DefaultPreferences() Preferences {
	return Preferences{
		RememberLayout: true,
		AutoDetect:     true,
		FirstTime:      false,
		Mode:           DefaultSplitMode,
		EdgeToEdge:     true,
	}
}
