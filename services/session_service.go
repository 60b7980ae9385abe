package services

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

// LoginEvent describes a successful login. UserID stays nil when the login
// is not tied to an account (OTP, restaurant admin).
type LoginEvent struct {
	UserID *uint
	Email  string
	Method models.LoginMethod
}

// SessionService keeps the logged_in_users audit trail.
type SessionService struct {
	db     *gorm.DB
	signer *utils.TokenSigner
	now    func() time.Time
}

func NewSessionService(db *gorm.DB, signer *utils.TokenSigner) *SessionService {
	return &SessionService{db: db, signer: signer, now: time.Now}
}

// Start issues a session token and records the login.
func (s *SessionService) Start(ctx context.Context, event LoginEvent) (*models.SessionRecord, string, error) {
	now := s.now().UTC()
	token, _, err := s.signer.Generate(event.UserID, event.Email, string(event.Method), now)
	if err != nil {
		return nil, "", err
	}

	record := models.SessionRecord{
		UserID:       event.UserID,
		Email:        event.Email,
		LoginMethod:  event.Method,
		LoginTime:    now,
		SessionToken: token,
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(&record).Error; err != nil {
		return nil, "", err
	}

	utils.InfoLogger.Printf("Login recorded for %s (method=%s)", event.Email, event.Method)
	return &record, token, nil
}

// End closes the active session holding token.
func (s *SessionService) End(ctx context.Context, token string) error {
	res := s.db.WithContext(ctx).
		Model(&models.SessionRecord{}).
		Where("session_token = ? AND is_active = ?", token, true).
		Updates(map[string]interface{}{
			"logout_time": s.now().UTC(),
			"is_active":   false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Validate accepts a token only when its signature holds and its session is still open.
func (s *SessionService) Validate(ctx context.Context, token string) (*utils.SessionClaims, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil, err
	}

	var record models.SessionRecord
	err = s.db.WithContext(ctx).
		Where("session_token = ? AND is_active = ?", token, true).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return claims, nil
}
