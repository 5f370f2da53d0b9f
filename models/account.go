package models

import (
	"gorm.io/gorm"
)

// Account is the only persisted record in this service. Email is the lookup
// key and is stored lower-cased; the unique index is what enforces one account
// per email under concurrent signups.
type Account struct {
	gorm.Model
	AccountID    string `gorm:"uniqueIndex;not null"` // opaque public id (uuid)
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// AccountSummary is the shape exposed to clients. The password hash never
// leaves the models/services boundary.
type AccountSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{ID: a.AccountID, Name: a.Name, Email: a.Email}
}
