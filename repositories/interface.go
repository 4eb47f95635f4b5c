package repositories

import (
	"errors"

	"blog-server/entities"
)

// ErrDuplicateEmail reports a unique-constraint violation on the email
// column. Concurrent signups can hit it even after a lookup saw no row.
var ErrDuplicateEmail = errors.New("email already in use")

type UserRepository interface {
	Create(user *entities.User) error
	GetByEmail(email string) (*entities.User, error)
}

type BlogRepository interface {
	Create(blog *entities.Blog) error
	GetByID(id uint) (*entities.Blog, error)
	GetAll() ([]entities.Blog, error)
	GetOwned(id, ownerID uint) (*entities.Blog, error)
	Update(blog *entities.Blog) error
	Delete(id, ownerID uint) (bool, error)
}
