package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

// RoleCheck loads the account behind the session and requires one of roles.
// Must run after SessionAuth.
func RoleCheck(db *gorm.DB, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			utils.RespondError(c, http.StatusForbidden, errors.New("account session required"))
			c.Abort()
			return
		}

		var account models.Account
		if err := db.WithContext(c.Request.Context()).First(&account, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, http.StatusForbidden, errors.New("account not found"))
			} else {
				utils.ErrorLogger.Errorf("Role check failed: %v", err)
				utils.RespondError(c, http.StatusInternalServerError, errors.New("role check failed"))
			}
			c.Abort()
			return
		}

		for _, role := range roles {
			if account.Role == role && account.IsActive {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", roles[0]))
		c.Abort()
	}
}
