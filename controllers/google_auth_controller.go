package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint
type GoogleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleLogin redirects the customer to Google's consent page
func GoogleLogin(c *gin.Context) {
	utils.LogInfo("GoogleLogin called")
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, provisions the account if
// needed and returns a JWT
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Failed to exchange OAuth code: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", nil)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.InternalServerError(c, "Failed to get user info", nil)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.LogError("Failed to read Google response: %v", err)
		utils.InternalServerError(c, "Failed to read response", nil)
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.LogError("Failed to parse Google user info: %v", err)
		utils.InternalServerError(c, "Failed to parse user info", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		user = models.User{
			Email:      googleUser.Email,
			FirstName:  googleUser.GivenName,
			LastName:   googleUser.FamilyName,
			IsVerified: true,
			GoogleID:   googleUser.ID,
			Username:   googleUser.Email, // email doubles as username for Google accounts
		}

		hashedPassword, err := utils.HashPassword(googlePasswordSeed(googleUser.ID))
		if err != nil {
			utils.LogError("Failed to hash password for Google user: %v", err)
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		user.Password = hashedPassword

		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to create Google user: %v", err)
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		utils.LogInfo("Provisioned account for Google user %s", user.Email)
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted Google login: %s", user.Email)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to sign token for Google user %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Google login successful: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// googlePasswordSeed builds the throwaway password hashed for accounts
// provisioned through Google login. Subject IDs are normally long
// numeric strings, but short ones must not panic the slice.
func googlePasswordSeed(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s%d", id, time.Now().Unix())
}
