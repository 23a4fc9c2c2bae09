package model

// Page is a complete standalone "screen" occupying everything except the footer.
type Page int

const (
	PageRoster Page = iota
	PageDetail
	PageConfig
	PageHelp
)

func (p Page) String() string {
	switch p {
	case PageRoster:
		return "Roster"
	case PageDetail:
		return "Player"
	case PageConfig:
		return "Config"
	case PageHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Surface is the single region the views own and fully overwrite on every render. It is
// handed to each render call rather than looked up.
type Surface struct {
	Page   Page
	Width  int
	Height int
}

// Valid reports whether there is any area to draw into.
func (s Surface) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// DefaultSurface is used when rendering outside of an interactive terminal.
func DefaultSurface(page Page) Surface {
	return Surface{Page: page, Width: 100, Height: 40}
}
