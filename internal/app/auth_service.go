package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/user"
	"placecell/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService handles registration, login and principal lookup.
type AuthService struct {
	users       user.Repository
	jwtProvider *security.JWTProvider
	logger      Logger
}

func NewAuthService(users user.Repository, jwtProvider *security.JWTProvider, logger Logger) *AuthService {
	return &AuthService{users: users, jwtProvider: jwtProvider, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, fullName, email, roleValue string) (*user.User, error) {
	fields := map[string]string{}
	username = strings.TrimSpace(username)
	fullName = strings.TrimSpace(fullName)
	if username == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if fullName == "" {
		fields["fullName"] = "fullName is required"
	}
	if strings.TrimSpace(roleValue) == "" {
		fields["role"] = "role is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	role, err := user.ParseRole(roleValue)
	if err != nil {
		return nil, err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	created, err := s.users.Create(ctx, user.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		Email:        strings.TrimSpace(email),
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("user registered user_id=%s role=%s", created.ID, created.Role))
	return created, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// Login returns one generic unauthorized error for both unknown usernames
// and wrong passwords, so responses do not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	account, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if !security.CheckPassword(account.PasswordHash, password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, expiresAt, err := s.jwtProvider.Generate(account.ID, string(account.Role), account.Username, account.FullName)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate token", err)
	}
	s.logInfo(fmt.Sprintf("user logged in user_id=%s", account.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: account}, nil
}

func (s *AuthService) Me(ctx context.Context, userID common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info(msg)
	}
}
