package seed

import "github.com/anonto42/socialwall/backend/internal/models"

// Directory resolves user ids against the seed users.
type Directory struct {
	users []models.User
	byID  map[string]models.User
}

// NewDirectory indexes users. The first user is the fallback author.
func NewDirectory(users []models.User) *Directory {
	d := &Directory{
		users: append([]models.User(nil), users...),
		byID:  make(map[string]models.User, len(users)),
	}
	for _, u := range users {
		if _, dup := d.byID[u.ID]; !dup {
			d.byID[u.ID] = u
		}
	}
	return d
}

// GetUserByID returns the matching user, or the first user when there is no
// match. It never fails; an empty directory yields the zero User.
func (d *Directory) GetUserByID(id string) models.User {
	if u, ok := d.byID[id]; ok {
		return u
	}
	if len(d.users) > 0 {
		return d.users[0]
	}
	return models.User{}
}
