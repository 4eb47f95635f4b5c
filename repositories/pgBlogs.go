package repositories

import (
	"blog-server/db"
	"blog-server/entities"
	"errors"

	"gorm.io/gorm"
)

type blogPgRepository struct {
	db db.Database
}

func NewBlogPgRepository(database db.Database) BlogRepository {
	return &blogPgRepository{db: database}
}

func (r *blogPgRepository) Create(blog *entities.Blog) error {
	return r.db.GetDB().Create(blog).Error
}

// GetByID returns (nil, nil) when no blog has the given id.
func (r *blogPgRepository) GetByID(id uint) (*entities.Blog, error) {
	var blog entities.Blog
	err := r.db.GetDB().Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogPgRepository) GetAll() ([]entities.Blog, error) {
	var blogs []entities.Blog
	err := r.db.GetDB().Find(&blogs).Error
	return blogs, err
}

// GetOwned returns the blog only when it exists and belongs to ownerID,
// (nil, nil) otherwise. A mismatched owner is indistinguishable from a
// missing row by design of the API contract.
func (r *blogPgRepository) GetOwned(id, ownerID uint) (*entities.Blog, error) {
	var blog entities.Blog
	err := r.db.GetDB().Where("id = ? AND owner_id = ?", id, ownerID).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogPgRepository) Update(blog *entities.Blog) error {
	return r.db.GetDB().Save(blog).Error
}

// Delete removes the blog matching id+ownerID and reports whether a row
// was actually removed.
func (r *blogPgRepository) Delete(id, ownerID uint) (bool, error) {
	res := r.db.GetDB().Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Blog{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
