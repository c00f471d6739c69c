package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domainerror.ErrEmailAlreadyRegistered
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("registers a new user and issues a token", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		out, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "user@example.com",
			Name:     "Test User",
			Password: "SecurePass123",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.AccessToken == "" {
			t.Error("expected an access token")
		}
		if out.User.PasswordHash != "hashed:SecurePass123" {
			t.Errorf("PasswordHash = %q, expected hashed password", out.User.PasswordHash)
		}
		if _, ok := repo.byEmail["user@example.com"]; !ok {
			t.Error("user was not persisted")
		}
	})

	t.Run("rejects invalid email format", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Test User",
			Password: "SecurePass123",
		})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("Execute() error = %v, want ErrInvalidEmail", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "user@example.com",
			Name:     "Test User",
			Password: "short",
		})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("Execute() error = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		input := RegisterUserInput{
			Email:    "taken@example.com",
			Name:     "First User",
			Password: "SecurePass123",
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyRegistered) {
			t.Errorf("Execute() error = %v, want ErrEmailAlreadyRegistered", err)
		}

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailRegistered {
			t.Errorf("expected AuthError with code %s, got %v", domainerror.ErrCodeEmailRegistered, err)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo, user := seedUser(t)
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		out, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    user.Email,
			Password: "SecurePass123",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.AccessToken == "" {
			t.Error("expected an access token")
		}
		if out.User.ID != user.ID {
			t.Errorf("User.ID = %v, want %v", out.User.ID, user.ID)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo, user := seedUser(t)
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    user.Email,
			Password: "WrongPass456",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("Execute() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email fails like a wrong password", func(t *testing.T) {
		repo, user := seedUser(t)
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		_, unknownErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "SecurePass123",
		})
		_, wrongPassErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    user.Email,
			Password: "WrongPass456",
		})

		var unknownAuthErr, wrongPassAuthErr *domainerror.AuthError
		if !errors.As(unknownErr, &unknownAuthErr) || !errors.As(wrongPassErr, &wrongPassAuthErr) {
			t.Fatalf("expected AuthErrors, got %v and %v", unknownErr, wrongPassErr)
		}
		if unknownAuthErr.Code != wrongPassAuthErr.Code {
			t.Errorf("error codes differ: %s vs %s, enumeration possible", unknownAuthErr.Code, wrongPassAuthErr.Code)
		}
		if unknownAuthErr.Message != wrongPassAuthErr.Message {
			t.Errorf("error messages differ: %q vs %q", unknownAuthErr.Message, wrongPassAuthErr.Message)
		}
	})
}

func seedUser(t *testing.T) (*fakeUserRepo, *entity.User) {
	t.Helper()
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})
	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "seeded@example.com",
		Name:     "Seeded User",
		Password: "SecurePass123",
	})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return repo, out.User
}
