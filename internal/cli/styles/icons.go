package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "\uf0ac" // browser/web
	IconArrow   = "\uf061" // arrow right
	IconColumns = "\uf0db" // columns
	IconClock   = "\uf017" // clock
	IconRestore = "\uf0e2" // rotate-left
	IconTrash   = "\uf1f8" // trash
	IconStar    = "\uf005" // star
	IconEdit    = "\uf040" // pencil
	IconCursor  = "\uf054" // chevron-right

	// Doctor / diagnostics
	IconDoctor   = "\uf0f1" // stethoscope
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconDesktop  = "\uf108" // desktop
	IconDatabase = "\uf1c0" // database
	IconConfig   = "\ue615" // config
)
