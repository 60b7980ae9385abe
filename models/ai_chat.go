package models

import "time"

type AiChatHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	User      *Account  `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	Context   *string   `gorm:"type:text" json:"context,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (AiChatHistory) TableName() string {
	return "ai_chat_history"
}
