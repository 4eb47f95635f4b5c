package repositories

import (
	"testing"

	"blog-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	repo := NewUserPgRepository(openTestDB(t))

	user := &entities.User{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	found, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserRepository_GetByEmailMissing(t *testing.T) {
	repo := NewUserPgRepository(openTestDB(t))

	found, err := repo.GetByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserPgRepository(openTestDB(t))

	require.NoError(t, repo.Create(&entities.User{Email: "a@x.com", PasswordHash: "h1"}))
	err := repo.Create(&entities.User{Email: "a@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
