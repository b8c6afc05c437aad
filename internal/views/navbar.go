package views

import "github.com/anonto42/socialwall/backend/internal/models"

const (
	Brand = "SocialWall"

	scrolledAfterPx = 10
)

// Navbar is the page chrome. It carries no business logic.
type Navbar struct {
	Brand          string      `json:"brand"`
	Profile        models.User `json:"profile"`
	Scrolled       bool        `json:"scrolled"`
	MobileMenuOpen bool        `json:"mobile_menu_open"`
}

func NewNavbar(profile models.User) *Navbar {
	return &Navbar{Brand: Brand, Profile: profile}
}

// OnScroll switches to the compact style once the page is scrolled.
func (n *Navbar) OnScroll(scrollY int) {
	n.Scrolled = scrollY > scrolledAfterPx
}

func (n *Navbar) ToggleMenu() {
	n.MobileMenuOpen = !n.MobileMenuOpen
}
