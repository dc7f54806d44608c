package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"pathwise/internal/models/db_models"
	"pathwise/internal/models/request_models"
	"pathwise/internal/repositories"
	"pathwise/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	byID    map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byID:    make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	account.ID = uuid.New()
	f.byEmail[account.Email] = account
	f.byID[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	f.byID[account.ID.String()] = account
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

func signUpFixture() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Name:      "Asha",
		Email:     "Asha@Example.com",
		Password:  "supersecret",
		Role:      "student",
		Interests: []string{"data", "design"},
	}
}

func TestSignUp(t *testing.T) {
	t.Run("creates an account with a normalized email", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)

		profile, err := svc.SignUp(context.Background(), signUpFixture())
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if profile.Email != "asha@example.com" {
			t.Fatalf("expected lowercased email, got %q", profile.Email)
		}
		if len(profile.Interests) != 2 {
			t.Fatalf("expected interests carried over, got %v", profile.Interests)
		}

		stored := repo.byEmail["asha@example.com"]
		if stored == nil {
			t.Fatal("expected account stored under normalized email")
		}
		if stored.PasswordHash == "supersecret" {
			t.Fatal("password must be stored hashed")
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		svc := NewAccountService(newFakeAccountRepo())
		req := signUpFixture()
		req.Password = "short"
		if _, err := svc.SignUp(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		svc := NewAccountService(newFakeAccountRepo())
		if _, err := svc.SignUp(context.Background(), signUpFixture()); err != nil {
			t.Fatalf("first SignUp: %v", err)
		}
		if _, err := svc.SignUp(context.Background(), signUpFixture()); !errors.Is(err, utils.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	if _, err := svc.SignUp(context.Background(), signUpFixture()); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		result, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "asha@example.com",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.Token == "" {
			t.Fatal("expected a token")
		}
		if result.Profile.Email != "asha@example.com" {
			t.Fatalf("unexpected profile: %+v", result.Profile)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrongpassword",
		})
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	setup := func(t *testing.T) (AccountServiceInterface, uuid.UUID) {
		t.Helper()
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)
		profile, err := svc.SignUp(context.Background(), signUpFixture())
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		id, err := uuid.Parse(profile.ID)
		if err != nil {
			t.Fatalf("bad profile id: %v", err)
		}
		return svc, id
	}

	strPtr := func(s string) *string { return &s }

	t.Run("updates only the supplied fields", func(t *testing.T) {
		svc, id := setup(t)

		updated, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{
			Phone: strPtr("+91 98765-43210"),
		})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if updated.Phone != "+91 98765-43210" {
			t.Fatalf("unexpected phone: %q", updated.Phone)
		}
		if updated.Name != "Asha" {
			t.Fatalf("untouched field changed: %q", updated.Name)
		}
	})

	t.Run("accepts formatted phone numbers", func(t *testing.T) {
		svc, id := setup(t)
		for _, phone := range []string{"+14155552671", "(020) 1234 5678", "98765 43210"} {
			if _, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{Phone: strPtr(phone)}); err != nil {
				t.Fatalf("phone %q rejected: %v", phone, err)
			}
		}
	})

	t.Run("rejects invalid phone numbers", func(t *testing.T) {
		svc, id := setup(t)
		for _, phone := range []string{"12345", "not-a-phone", "+1234567890123456"} {
			_, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{Phone: strPtr(phone)})
			if !errors.Is(err, utils.ErrInvalidInput) {
				t.Fatalf("phone %q: expected ErrInvalidInput, got %v", phone, err)
			}
		}
	})

	t.Run("empty phone clears the field", func(t *testing.T) {
		svc, id := setup(t)
		if _, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{Phone: strPtr("+14155552671")}); err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		updated, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{Phone: strPtr("")})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if updated.Phone != "" {
			t.Fatalf("expected cleared phone, got %q", updated.Phone)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := NewAccountService(newFakeAccountRepo())
		_, err := svc.UpdateProfile(context.Background(), uuid.New(), request_models.UpdateProfileRequest{})
		if !errors.Is(err, utils.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
