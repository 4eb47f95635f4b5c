package usecases

import (
	"blog-server/entities"
	"blog-server/repositories"
)

// BlogUpdate carries a partial update: nil fields are left unchanged.
type BlogUpdate struct {
	Title   *string
	Content *string
	Tags    *string
	Image   *string
}

type BlogUseCase struct {
	BlogRepo repositories.BlogRepository
}

func NewBlogUseCase(blogRepo repositories.BlogRepository) *BlogUseCase {
	return &BlogUseCase{BlogRepo: blogRepo}
}

// CreateBlog creates a new blog owned by ownerID.
func (uc *BlogUseCase) CreateBlog(blog *entities.Blog) error {
	if blog.Title == "" {
		return ErrTitleRequired
	}
	return uc.BlogRepo.Create(blog)
}

// GetBlog retrieves a blog by ID.
func (uc *BlogUseCase) GetBlog(id uint) (*entities.Blog, error) {
	blog, err := uc.BlogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// GetAllBlogs retrieves all blogs.
func (uc *BlogUseCase) GetAllBlogs() ([]entities.Blog, error) {
	return uc.BlogRepo.GetAll()
}

// UpdateBlog applies the supplied fields to the blog, but only when it is
// owned by ownerID. Missing row and foreign owner both yield ErrBlogNotFound.
func (uc *BlogUseCase) UpdateBlog(id, ownerID uint, update BlogUpdate) (*entities.Blog, error) {
	existing, err := uc.BlogRepo.GetOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBlogNotFound
	}

	// Update only provided fields
	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Content != nil {
		existing.Content = *update.Content
	}
	if update.Tags != nil {
		existing.Tags = *update.Tags
	}
	if update.Image != nil {
		existing.Image = *update.Image
	}

	if err := uc.BlogRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteBlog removes the blog when it is owned by ownerID.
func (uc *BlogUseCase) DeleteBlog(id, ownerID uint) error {
	removed, err := uc.BlogRepo.Delete(id, ownerID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBlogNotFound
	}
	return nil
}
