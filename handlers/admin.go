// File: handlers/admin.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/KennyLightfoot/hmnp-site-sub021/config"
	settingsRepoPkg "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/settings"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// AdminLoginHandler serves POST /api/admin/login and issues a session token
// for the single configured admin credential.
func AdminLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		if !strings.EqualFold(req.Email, config.AppConfig.AdminEmail) ||
			bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(req.Password)) != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}

		token, err := utils.GenerateToken("admin", req.Email, utils.AdminTokenTTL)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "token generation failed", "")
			return
		}
		if err := utils.StoreAdminSession(c.Request.Context(), token, utils.AdminTokenTTL); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "session creation failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// AdminLogoutHandler serves POST /api/admin/logout, revoking the session
// token the auth middleware already validated.
func AdminLogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("adminToken")
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "no active session", "")
			return
		}
		if err := utils.RevokeAdminSession(c.Request.Context(), token); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "session revocation failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}

// GetSettingsHandler serves GET /api/admin/settings.
func GetSettingsHandler(settings settingsRepoPkg.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := settings.GetAll(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "settings fetch failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": values})
	}
}

// UpdateSettingsHandler serves PUT /api/admin/settings. Every key is
// validated before anything is written; one bad value rejects the whole
// request.
func UpdateSettingsHandler(settings settingsRepoPkg.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Settings map[string]string `json:"settings" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		for key, value := range req.Settings {
			if err := validateSetting(key, value); err != "" {
				utils.JSONError(c, http.StatusBadRequest, "invalid setting", key+": "+err)
				return
			}
		}

		if err := settings.SetMany(c.Request.Context(), req.Settings); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "settings update failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

func validateSetting(key, value string) string {
	switch {
	case strings.HasPrefix(key, "business_hours_"):
		if !strings.HasSuffix(key, "_start") && !strings.HasSuffix(key, "_end") {
			return "unknown business hours key"
		}
		if _, err := time.Parse("15:04", value); err != nil {
			return "expected HH:MM"
		}
	case key == booking.SettingLeadTimeHours:
		if hours, err := strconv.Atoi(value); err != nil || hours < 0 {
			return "expected a non-negative integer"
		}
	case key == booking.SettingBlackoutDates:
		var dates []string
		if err := json.Unmarshal([]byte(value), &dates); err != nil {
			return "expected a JSON array of YYYY-MM-DD strings"
		}
		for _, d := range dates {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return "expected a JSON array of YYYY-MM-DD strings"
			}
		}
	case key == booking.SettingBusinessTimezone:
		if _, err := time.LoadLocation(value); err != nil {
			return "unknown timezone"
		}
	case key == booking.SettingTravelFeeEnabled:
		if value != "true" && value != "false" {
			return "expected true or false"
		}
	default:
		return "unknown setting"
	}
	return ""
}
