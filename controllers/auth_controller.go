package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/config"
	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/repository"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = time.Hour * 24 * 7

type AuthController struct {
	Users        repository.UserRepository
	Tokens       repository.AuthTokenRepository
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(users repository.UserRepository, tokens repository.AuthTokenRepository) *AuthController {
	return &AuthController{
		Users:        users,
		Tokens:       tokens,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// validateUsernamePattern validates username format and constraints
func validateUsernamePattern(username string) error {
	trimmedUsername := strings.TrimSpace(username)

	if len(trimmedUsername) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(trimmedUsername) > 20 {
		return fmt.Errorf("username must be no more than 20 characters long")
	}

	validPattern, _ := regexp.MatchString(`^[a-zA-Z][a-zA-Z0-9_]*$`, trimmedUsername)
	if !validPattern {
		return fmt.Errorf("username must start with a letter and contain only letters, numbers, and underscores")
	}

	reserved := []string{"admin", "root", "api", "www", "mail", "test", "demo", "user", "guest", "null", "undefined"}
	for _, reservedWord := range reserved {
		if strings.ToLower(trimmedUsername) == reservedWord {
			return fmt.Errorf("this username is reserved and cannot be used")
		}
	}

	return nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := validateUsernamePattern(input.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  &hashedPasswordStr,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		IsActive:  true,
		Provider:  "email",
	}

	// The profile is created here, together with the user, in one
	// transaction.
	if err := ac.Users.CreateWithProfile(&user, &models.Profile{}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username or email already exists", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.FindByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"name":     user.FullName(),
		},
	})
}

// Logout revokes the bearer token the request was authenticated with.
func (ac *AuthController) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session found or token missing", "success": false})
		return
	}

	if err := ac.Tokens.DeleteByToken(token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active session found or token missing", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out", "success": true})
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.GoogleConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured", "success": false})
		return
	}

	var input struct {
		AccessToken string `json:"access_token"`
		Code        string `json:"code"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var userInfo *config.GoogleUserInfo
	var err error

	switch {
	case input.Code != "":
		token, exchangeErr := ac.GoogleConfig.ExchangeCode(c.Request.Context(), input.Code)
		if exchangeErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange code for token", "success": false})
			return
		}
		userInfo, err = ac.GoogleConfig.GetUserInfo(token.AccessToken)
	case input.AccessToken != "":
		userInfo, err = ac.GoogleConfig.GetUserInfo(input.AccessToken)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either code or access_token is required", "success": false})
		return
	}

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	user, err := ac.Users.FindByGoogleIDOrEmail(userInfo.ID, userInfo.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user", "success": false})
			return
		}
		user, err = ac.provisionGoogleUser(userInfo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
			return
		}
	} else if user.GoogleID == nil || *user.GoogleID == "" {
		user.GoogleID = &userInfo.ID
		user.Provider = "google"
		if err := ac.Users.Save(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "success": false})
			return
		}
	}

	token, err := ac.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"name":     user.FullName(),
		},
	})
}

// provisionGoogleUser creates a user and their profile for a first-time
// Google sign-in, deriving a free username from the email address.
func (ac *AuthController) provisionGoogleUser(userInfo *config.GoogleUserInfo) (*models.User, error) {
	base := strings.SplitN(userInfo.Email, "@", 2)[0]
	username := base
	for counter := 1; ; counter++ {
		if _, err := ac.Users.FindByUsername(username); errors.Is(err, repository.ErrNotFound) {
			break
		}
		username = base + strconv.Itoa(counter)
	}

	user := models.User{
		Username:  username,
		Email:     userInfo.Email,
		FirstName: userInfo.GivenName,
		LastName:  userInfo.FamilyName,
		IsActive:  true,
		GoogleID:  &userInfo.ID,
		Provider:  "google",
	}

	if err := ac.Users.CreateWithProfile(&user, &models.Profile{}); err != nil {
		return nil, err
	}
	return &user, nil
}

// issueToken signs a JWT for the user and records it so it can be
// revoked at logout.
func (ac *AuthController) issueToken(user *models.User) (string, error) {
	expiresAt := time.Now().Add(tokenLifetime)
	tokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
	})

	token, err := tokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	if err := ac.Tokens.Create(&models.AuthToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", err
	}

	return token, nil
}

func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
