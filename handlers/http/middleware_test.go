package httpHandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-server/auth"
	"blog-server/entities"
	"blog-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves a canned user or error to the auth usecase.
type stubUserRepo struct {
	user *entities.User
	err  error
}

func (s *stubUserRepo) Create(*entities.User) error { return nil }
func (s *stubUserRepo) GetByEmail(string) (*entities.User, error) { return s.user, s.err }

func protectedEngine(repo *stubUserRepo, tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewAuthUseCase(repo, tokens)

	engine := gin.New()
	engine.GET("/protected", RequireAuth(uc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CurrentUser(c).Email})
	})
	return engine
}

func getProtected(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	repo := &stubUserRepo{user: &entities.User{ID: 1, Email: "a@x.com"}}
	engine := protectedEngine(repo, tokens)

	token, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	w := getProtected(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestRequireAuth_MissingOrMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	engine := protectedEngine(&stubUserRepo{}, tokens)

	for _, header := range []string{"", "Basic abc", "Bearer", "bearer-token"} {
		w := getProtected(engine, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	engine := protectedEngine(&stubUserRepo{user: &entities.User{ID: 1, Email: "a@x.com"}}, tokens)

	w := getProtected(engine, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestRequireAuth_UserGone(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	engine := protectedEngine(&stubUserRepo{user: nil}, tokens)

	token, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)

	w := getProtected(engine, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RepositoryFailure(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	repo := &stubUserRepo{err: errors.New("connection refused")}
	engine := protectedEngine(repo, tokens)

	token, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	// a database outage is a 500, not a credential rejection
	w := getProtected(engine, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}
