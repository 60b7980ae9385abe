package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

// AuthService checks passwords for both credential namespaces: accounts by email
// and restaurant admins by login id.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) AuthenticateAccount(ctx context.Context, email, password string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.VerifyCredential(nil, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyCredential(account, password) {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}
	return &account, nil
}

func (s *AuthService) AuthenticateRestaurantAdmin(ctx context.Context, loginID, password string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).Where("admin_login_id = ?", strings.TrimSpace(loginID)).First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.VerifyCredential(nil, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyCredential(restaurant, password) {
		return nil, ErrInvalidCredentials
	}
	if !restaurant.IsActive {
		return nil, ErrAccountInactive
	}
	return &restaurant, nil
}

// AccountByMobile finds the active account registered with mobile, for logins that
// proved possession of the number instead of a password. Mobile numbers are not unique,
// the oldest account wins.
func (s *AuthService) AccountByMobile(ctx context.Context, mobile string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where("mobile_number = ? AND is_active = ?", strings.TrimSpace(mobile), true).
		Order("id").
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &account, nil
}
