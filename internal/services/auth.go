package services

import (
	"errors"
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ratelimit"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
	limiter   *ratelimit.Limiter
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration, limiter *ratelimit.Limiter) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		limiter:   limiter,
	}
}

func (s *AuthService) Register(username, password string) (string, error) {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return "", apperr.Validationf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.GenerateToken(user.ID)
}

// Login authenticates the given credentials, keyed through the rate limiter
// by client IP. Failed attempts count toward the IP's sliding window; a
// blocked IP is rejected before any credential check.
func (s *AuthService) Login(username, password, clientIP string) (string, error) {
	if err := s.limiter.CheckAllowed(clientIP); err != nil {
		return "", err
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		s.limiter.RegisterFailed(clientIP)
		return "", apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.limiter.RegisterFailed(clientIP)
		return "", apperr.Unauthorized("invalid credentials")
	}

	return s.GenerateToken(user.ID)
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.Unauthorized("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.Unauthorized("invalid user_id in token")
	}

	return uint(userIDFloat), nil
}
