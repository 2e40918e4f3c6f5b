package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/user"
	"placecell/internal/security"
)

type fakeUserRepo struct {
	mu         sync.Mutex
	byUsername map[string]*user.User
	byID       map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*user.User),
		byID:       make(map[common.UUID]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[account.Username]; exists {
		return nil, common.NewError(common.CodeConflict, "username already exists", nil)
	}
	account.ID = common.NewUUID()
	account.CreatedAt = time.Now().UTC()
	stored := account
	r.byUsername[account.Username] = &stored
	r.byID[account.ID] = &stored
	copy := account
	return &copy, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *account
	return &copy, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byUsername[username]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *account
	return &copy, nil
}

func newAuthService(repo user.Repository) (*AuthService, *security.JWTProvider) {
	jwtProvider := security.NewJWTProvider("secret", time.Hour)
	return NewAuthService(repo, jwtProvider, noopLogger{}), jwtProvider
}

func TestAuthServiceRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service, _ := newAuthService(repo)

	created, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "priya@example.edu", "student")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Role != user.RoleStudent {
		t.Fatalf("expected student role, got %s", created.Role)
	}
	if created.PasswordHash == "s3cret" || created.PasswordHash == "" {
		t.Fatal("expected password to be stored hashed")
	}
	if !security.CheckPassword(created.PasswordHash, "s3cret") {
		t.Fatal("expected stored hash to verify against the password")
	}
}

func TestAuthServiceRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	service, _ := newAuthService(repo)

	if _, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "", "student"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err := service.Register(context.Background(), "priya", "other", "Someone Else", "", "faculty")
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAuthServiceRegister_RejectsUnknownRole(t *testing.T) {
	service, _ := newAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "", "superuser")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceLogin_TokenCarriesIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	service, jwtProvider := newAuthService(repo)

	created, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "", "faculty")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	result, err := service.Login(context.Background(), "priya", "s3cret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token")
	}
	claims, err := jwtProvider.Parse(result.Token)
	if err != nil {
		t.Fatalf("expected token to parse, got %v", err)
	}
	if claims.UserID != created.ID.String() {
		t.Fatalf("expected user_id %s in claims, got %s", created.ID, claims.UserID)
	}
	if claims.Role != "faculty" {
		t.Fatalf("expected faculty role in claims, got %s", claims.Role)
	}
	if claims.FullName != "Priya Sharma" {
		t.Fatalf("expected full name in claims, got %s", claims.FullName)
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service, _ := newAuthService(repo)

	if _, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "", "student"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err := service.Login(context.Background(), "priya", "wrong")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestAuthServiceLogin_UnknownUserSameError(t *testing.T) {
	repo := newFakeUserRepo()
	service, _ := newAuthService(repo)

	if _, err := service.Register(context.Background(), "priya", "s3cret", "Priya Sharma", "", "student"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, errUnknown := service.Login(context.Background(), "nobody", "s3cret")
	_, errBadPass := service.Login(context.Background(), "priya", "wrong")
	if !common.Is(errUnknown, common.CodeUnauthorized) || !common.Is(errBadPass, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for both, got %v and %v", errUnknown, errBadPass)
	}
	var unknownErr, badPassErr *common.Error
	if !asCommonError(errUnknown, &unknownErr) || !asCommonError(errBadPass, &badPassErr) {
		t.Fatal("expected coded errors")
	}
	if unknownErr.Message != badPassErr.Message {
		t.Fatalf("expected identical messages to avoid account enumeration, got %q and %q", unknownErr.Message, badPassErr.Message)
	}
}

func asCommonError(err error, target **common.Error) bool {
	coded, ok := err.(*common.Error)
	if !ok {
		return false
	}
	*target = coded
	return true
}
