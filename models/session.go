package models

import "time"

type LoginMethod string

const (
	LoginMethodPassword        LoginMethod = "password"
	LoginMethodOTP             LoginMethod = "otp"
	LoginMethodRestaurantAdmin LoginMethod = "restaurant_admin"
)

// SessionRecord is an audit row for one login event, not a live session store.
// UserID is nil for logins that are not tied to an account yet.
type SessionRecord struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       *uint       `gorm:"index" json:"user_id,omitempty"`
	User         *Account    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Email        string      `gorm:"type:varchar(255);not null" json:"email"`
	LoginMethod  LoginMethod `gorm:"type:varchar(32);not null" json:"login_method"`
	LoginTime    time.Time   `gorm:"not null" json:"login_time"`
	LogoutTime   *time.Time  `json:"logout_time,omitempty"`
	SessionToken string      `gorm:"type:varchar(512);index" json:"-"`
	IsActive     bool        `gorm:"not null;default:true" json:"is_active"`
}

func (SessionRecord) TableName() string {
	return "logged_in_users"
}
