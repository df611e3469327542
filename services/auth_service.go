package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"elysianshores/models"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("Username already registered")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("Invalid token")
)

const mysqlDuplicateEntry = 1062

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthService owns user accounts and access tokens.
type AuthService struct {
	DB        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTLHours int) *AuthService {
	return &AuthService{
		DB:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenTTLHours) * time.Hour,
	}
}

// Signup creates the user and returns a fresh access token. Username and
// email conflicts are reported as the taken-errors; the duplicate-key check
// is a fallback for races past the pre-checks.
func (s *AuthService) Signup(in SignupInput) (string, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return "", ErrUsernameTaken
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:       username,
		FullName:       strings.TrimSpace(in.FullName),
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			if strings.Contains(mysqlErr.Message, "email") {
				return "", ErrEmailTaken
			}
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies the password and returns an access token.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// UserFromToken resolves a bearer token back to its user.
func (s *AuthService) UserFromToken(tokenStr string) (models.User, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return models.User{}, ErrInvalidToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return models.User{}, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.User{}, ErrInvalidToken
	}

	var user models.User
	if err := s.DB.First(&user, uint(sub)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
