package repository

import (
	"context"

	"nutriplan-backend/models"

	"gorm.io/gorm"
)

// AccountRepository is the GORM-backed account store. The unique index on
// email makes concurrent duplicate signups a database-level conflict rather
// than an application-level race.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account. A duplicate email surfaces as
// gorm.ErrDuplicatedKey via the connection's error translator.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByEmail looks up an account by its normalized email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByAccountID looks up an account by its opaque public id.
func (r *AccountRepository) FindByAccountID(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
