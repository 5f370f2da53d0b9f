package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"nutriplan-backend/config"
	"nutriplan-backend/models"
	"nutriplan-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountStore is the persistence contract for accounts. Implementations must
// enforce email uniqueness atomically (a unique index, not check-then-insert)
// and report a duplicate insert as gorm.ErrDuplicatedKey.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByAccountID(ctx context.Context, accountID string) (*models.Account, error)
}

// AuthService owns signup, login and token verification. Tokens are
// self-contained: Verify never touches the store.
type AuthService struct {
	store AccountStore
	cfg   config.Config
}

func NewAuthService(store AccountStore, cfg config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

// SignUp creates an account for the normalized email and returns its public
// id. The password hash is derived here and never returned to any caller.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if err := s.validateSignup(name, email, password); err != nil {
		return "", err
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	account := models.Account{
		AccountID:    uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, &account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateAccount
		}
		return "", err
	}

	return account.AccountID, nil
}

// Login verifies the credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.AccountSummary, error) {
	email = NormalizeEmail(email)

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.AccountSummary{}, ErrInvalidCredentials
		}
		return "", models.AccountSummary{}, err
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return "", models.AccountSummary{}, ErrInvalidCredentials
	}

	if s.cfg.JWTSecret == "" {
		return "", models.AccountSummary{}, ErrServerMisconfigured
	}

	ttl := time.Duration(s.cfg.TokenTTLHours) * time.Hour
	token, err := utils.GenerateJWT(account.AccountID, []byte(s.cfg.JWTSecret), ttl)
	if err != nil {
		return "", models.AccountSummary{}, err
	}

	return token, account.Summary(), nil
}

// Verify checks signature and expiry and returns the embedded account id.
func (s *AuthService) Verify(token string) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", ErrServerMisconfigured
	}
	accountID, err := utils.ParseJWT(token, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", ErrInvalidToken
	}
	return accountID, nil
}

// GetAccount resolves a verified account id to its summary.
func (s *AuthService) GetAccount(ctx context.Context, accountID string) (models.AccountSummary, error) {
	account, err := s.store.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AccountSummary{}, ErrNotFound
		}
		return models.AccountSummary{}, err
	}
	return account.Summary(), nil
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) validateSignup(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(password) < s.cfg.PasswordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, s.cfg.PasswordMinLen)
	}
	return nil
}
