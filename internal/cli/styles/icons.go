package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconBookmark    = "" // bookmark
	IconPerspective = "" // th-large
	IconScreen      = "" // window
	IconDock        = "" // columns
	IconEditor      = "" // file-text
	IconSession     = "" // clone/stack
	IconClock       = "" // clock
	IconConfig      = "" // config
	IconVersion     = "" // tag
	IconGo          = "" // go gopher

	IconCheck  = ""
	IconX      = ""
	IconCursor = "" // chevron-right

	IconExpand   = ""
	IconCollapse = ""
)
