package models

import "time"

// Restaurant is a merchant tenant. Its admin authenticates with AdminLoginID,
// never through the accounts table.
type Restaurant struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Cuisine           string    `gorm:"type:varchar(100);not null" json:"cuisine"`
	Rating            float64   `gorm:"type:decimal(3,2);default:4.5" json:"rating"`
	Image             string    `gorm:"type:text" json:"image"`
	Address           string    `gorm:"type:text" json:"address"`
	Phone             string    `gorm:"type:varchar(32)" json:"phone"`
	Description       string    `gorm:"type:text" json:"description"`
	AdminLoginID      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"admin_login_id"`
	AdminPasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}

func (r Restaurant) PasswordDigest() string {
	return r.AdminPasswordHash
}
