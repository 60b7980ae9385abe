package models

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Credential is anything that can be checked against a stored password hash.
// Accounts and restaurant admins keep separate credential namespaces and only share this.
type Credential interface {
	PasswordDigest() string
}

// Account is a person who can authenticate with email and password.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	MobileNumber string    `gorm:"type:varchar(32);not null" json:"mobile_number"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

func (Account) TableName() string {
	return "signed_up_users"
}

func (a Account) PasswordDigest() string {
	return a.PasswordHash
}
