package usecases

import (
	"testing"

	"blog-server/db"
	"blog-server/entities"
	"blog-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogUseCase(t *testing.T) (*BlogUseCase, db.Database) {
	t.Helper()
	database := openTestDB(t)
	return NewBlogUseCase(repositories.NewBlogPgRepository(database)), database
}

func seedUser(t *testing.T, database db.Database, email string) *entities.User {
	t.Helper()
	user := &entities.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, repositories.NewUserPgRepository(database).Create(user))
	return user
}

func strptr(s string) *string { return &s }

func TestCreateBlog(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")

	blog := &entities.Blog{Title: "T", OwnerID: owner.ID}
	require.NoError(t, uc.CreateBlog(blog))
	assert.NotZero(t, blog.ID)

	got, err := uc.GetBlog(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Empty(t, got.Content)
	assert.Empty(t, got.Tags)
}

func TestCreateBlog_TitleRequired(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")

	err := uc.CreateBlog(&entities.Blog{OwnerID: owner.ID})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestGetBlog_Missing(t *testing.T) {
	uc, _ := newBlogUseCase(t)

	_, err := uc.GetBlog(42)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateBlog_PartialFields(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")

	blog := &entities.Blog{Title: "T", Content: "body", Tags: "go", Image: "uploads/a.png", OwnerID: owner.ID}
	require.NoError(t, uc.CreateBlog(blog))

	// only tags supplied: everything else must stay untouched
	updated, err := uc.UpdateBlog(blog.ID, owner.ID, BlogUpdate{Tags: strptr("news")})
	require.NoError(t, err)
	assert.Equal(t, "news", updated.Tags)
	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, "uploads/a.png", updated.Image)
}

func TestUpdateBlog_ForeignOwner(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")
	other := seedUser(t, database, "b@x.com")

	blog := &entities.Blog{Title: "T", OwnerID: owner.ID}
	require.NoError(t, uc.CreateBlog(blog))

	_, err := uc.UpdateBlog(blog.ID, other.ID, BlogUpdate{Title: strptr("hijack")})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	// no partial mutation happened
	got, err := uc.GetBlog(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestDeleteBlog(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")
	other := seedUser(t, database, "b@x.com")

	blog := &entities.Blog{Title: "T", OwnerID: owner.ID}
	require.NoError(t, uc.CreateBlog(blog))

	assert.ErrorIs(t, uc.DeleteBlog(blog.ID, other.ID), ErrBlogNotFound)
	require.NoError(t, uc.DeleteBlog(blog.ID, owner.ID))
	assert.ErrorIs(t, uc.DeleteBlog(blog.ID, owner.ID), ErrBlogNotFound)
}

func TestGetAllBlogs(t *testing.T) {
	uc, database := newBlogUseCase(t)
	owner := seedUser(t, database, "a@x.com")

	require.NoError(t, uc.CreateBlog(&entities.Blog{Title: "one", OwnerID: owner.ID}))
	require.NoError(t, uc.CreateBlog(&entities.Blog{Title: "two", OwnerID: owner.ID}))

	blogs, err := uc.GetAllBlogs()
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}
