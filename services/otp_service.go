package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

const otpDigits = 6

// OTPService stores one-time password challenges. Delivery of the code is someone else's job.
type OTPService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewOTPService(db *gorm.DB, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPService{db: db, ttl: ttl, now: time.Now}
}

// Issue creates a fresh challenge for mobile.
func (s *OTPService) Issue(ctx context.Context, mobile string) (*models.OtpVerification, error) {
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	// whole seconds keep stored timestamps comparable as text on sqlite
	now := s.now().UTC().Truncate(time.Second)
	otp := models.OtpVerification{
		MobileNumber: mobile,
		OtpCode:      code,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&otp).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("OTP issued for %s, expires at %s", mobile, otp.ExpiresAt.Format(time.RFC3339))
	return &otp, nil
}

// Verify spends a code. The conditional update makes a second use of the same code fail.
func (s *OTPService) Verify(ctx context.Context, mobile, code string) error {
	now := s.now().UTC().Truncate(time.Second)
	res := s.db.WithContext(ctx).
		Model(&models.OtpVerification{}).
		Where("mobile_number = ? AND otp_code = ? AND is_used = ? AND expires_at > ?", mobile, code, false, now).
		Update("is_used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOTPInvalid
	}
	return nil
}

func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
