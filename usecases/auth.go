package usecases

import (
	"errors"

	"blog-server/auth"
	"blog-server/entities"
	"blog-server/repositories"
)

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	Tokens   *auth.TokenIssuer
}

func NewAuthUseCase(userRepo repositories.UserRepository, tokens *auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		UserRepo: userRepo,
		Tokens:   tokens,
	}
}

// Signup registers a new account. The email must not already be in use.
func (uc *AuthUseCase) Signup(email, password string) (*entities.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	existing, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{Email: email, PasswordHash: hash}
	if err := uc.UserRepo.Create(user); err != nil {
		// a concurrent signup can win the insert after our lookup saw nothing
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
// Unknown email and wrong password are reported identically.
func (uc *AuthUseCase) Login(email, password string) (string, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return uc.Tokens.Issue(user.Email)
}

// Identify maps a bearer token to the persisted user it was issued for.
// A valid token whose user has since disappeared is still unauthorized.
func (uc *AuthUseCase) Identify(token string) (*entities.User, error) {
	subject, err := uc.Tokens.Resolve(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := uc.UserRepo.GetByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}
