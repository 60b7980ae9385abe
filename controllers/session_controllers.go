package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/middlewares"
	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/services"
	"github.com/yeremiapane/restaurant-ai/utils"
)

type SessionController struct {
	Auth     *services.AuthService
	Sessions *services.SessionService
}

func NewSessionController(auth *services.AuthService, sessions *services.SessionService) *SessionController {
	return &SessionController{Auth: auth, Sessions: sessions}
}

// Login checks an account password and opens a session.
func (sc *SessionController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	account, err := sc.Auth.AuthenticateAccount(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	_, token, err := sc.Sessions.Start(c.Request.Context(), services.LoginEvent{
		UserID: &account.ID,
		Email:  account.Email,
		Method: models.LoginMethodPassword,
	})
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to start session for %s: %v", account.Email, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to start session"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": account.Role,
	})
}

// RestaurantLogin opens a session for a restaurant admin. These logins are not tied to an account.
func (sc *SessionController) RestaurantLogin(c *gin.Context) {
	var input struct {
		LoginID  string `json:"login_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := sc.Auth.AuthenticateRestaurantAdmin(c.Request.Context(), input.LoginID, input.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	_, token, err := sc.Sessions.Start(c.Request.Context(), services.LoginEvent{
		Email:  restaurant.AdminLoginID,
		Method: models.LoginMethodRestaurantAdmin,
	})
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to start session for %s: %v", restaurant.AdminLoginID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to start session"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":         token,
		"restaurant_id": restaurant.ID,
	})
}

// Logout closes the session whose token authenticated the request.
func (sc *SessionController) Logout(c *gin.Context) {
	token := c.GetString(middlewares.ContextToken)
	if err := sc.Sessions.End(c.Request.Context(), token); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		utils.ErrorLogger.Errorf("Failed to end session: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to end session"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrAccountInactive):
		utils.RespondError(c, http.StatusForbidden, err)
	default:
		utils.ErrorLogger.Errorf("Authentication failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("authentication failed"))
	}
}
