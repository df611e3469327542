package controllers

import (
	"errors"
	"net/http"

	"elysianshores/middleware"
	"elysianshores/services"
	"elysianshores/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var in services.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "Invalid signup payload")
		return
	}

	token, err := ac.Auth.Signup(in)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			utils.JSONDetailError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONDetailError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login accepts an OAuth2-style form body:
// application/x-www-form-urlencoded with username and password fields.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		utils.JSONDetailError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := ac.Auth.Login(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONDetailError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONDetailError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the profile projection of the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"fullName": user.FullName,
		"email":    user.Email,
	})
}
