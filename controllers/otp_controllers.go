package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/services"
	"github.com/yeremiapane/restaurant-ai/utils"
)

// OTPController handles mobile number logins. Codes are stored but never sent from here.
type OTPController struct {
	Auth     *services.AuthService
	OTP      *services.OTPService
	Sessions *services.SessionService
}

func NewOTPController(auth *services.AuthService, otp *services.OTPService, sessions *services.SessionService) *OTPController {
	return &OTPController{Auth: auth, OTP: otp, Sessions: sessions}
}

func (oc *OTPController) Request(c *gin.Context) {
	var input struct {
		MobileNumber string `json:"mobile_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	otp, err := oc.OTP.Issue(c.Request.Context(), input.MobileNumber)
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to issue OTP: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to issue otp"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "OTP issued", gin.H{
		"expires_at": otp.ExpiresAt.Format(time.RFC3339),
	})
}

// Verify spends the code and opens a session, linked to an account when one uses the number.
func (oc *OTPController) Verify(c *gin.Context) {
	var input struct {
		MobileNumber string `json:"mobile_number" binding:"required"`
		Code         string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	if err := oc.OTP.Verify(ctx, input.MobileNumber, input.Code); err != nil {
		if errors.Is(err, services.ErrOTPInvalid) {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		utils.ErrorLogger.Errorf("Failed to verify OTP: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to verify otp"))
		return
	}

	event := services.LoginEvent{Email: input.MobileNumber, Method: models.LoginMethodOTP}
	account, err := oc.Auth.AccountByMobile(ctx, input.MobileNumber)
	switch {
	case err == nil:
		event.UserID = &account.ID
		event.Email = account.Email
	case !errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorLogger.Errorf("Account lookup for OTP login failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to start session"))
		return
	}

	_, token, err := oc.Sessions.Start(ctx, event)
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to start session for %s: %v", event.Email, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to start session"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":          token,
		"linked_account": event.UserID != nil,
	})
}
