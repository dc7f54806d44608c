package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"pathwise/internal/models/db_models"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/repositories"
	"pathwise/pkg/utils"
)

var (
	phoneStripRe = regexp.MustCompile(`[\s\-()]`)
	phoneRe      = regexp.MustCompile(`^\+?\d{7,15}$`)
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.Profile, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResult, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.Profile, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.Profile, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
}

func NewAccountService(accounts repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, utils.ErrInvalidInput
	}

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}
	interestsJSON, err := json.Marshal(interests)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         req.Role,
		Interests:    datatypes.JSON(interestsJSON),
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toProfile(account), nil
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResult{
		Token:   token,
		Profile: *toProfile(account),
	}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.Profile, error) {
	account, err := s.accounts.FindByID(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toProfile(account), nil
}

// UpdateProfile applies only the fields present in the request. An empty
// string clears the field.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.Profile, error) {
	if req.Phone != nil && *req.Phone != "" {
		cleaned := phoneStripRe.ReplaceAllString(*req.Phone, "")
		if !phoneRe.MatchString(cleaned) {
			return nil, utils.ErrInvalidInput
		}
	}

	account, err := s.accounts.FindByID(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		account.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		account.Role = *req.Role
	}
	if req.Interests != nil {
		interestsJSON, err := json.Marshal(*req.Interests)
		if err != nil {
			return nil, err
		}
		account.Interests = datatypes.JSON(interestsJSON)
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProfile(account), nil
}

func toProfile(account *db_models.Account) *response_models.Profile {
	var interests []string
	if len(account.Interests) > 0 {
		if err := json.Unmarshal(account.Interests, &interests); err != nil {
			log.Printf("[account] malformed interests payload for account %s: %v", account.ID, err)
		}
	}
	if interests == nil {
		interests = []string{}
	}
	return &response_models.Profile{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Role:      account.Role,
		Interests: interests,
		CreatedAt: account.CreatedAt,
	}
}
