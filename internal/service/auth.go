package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"wortschatz/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds the lifetime of every issued session token
const tokenTTL = time.Hour

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{4,}$`)

// TokenClaims is the payload carried inside a session token. The jti is
// fresh per login so two logins never share a token.
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles registration, login and session tokens
type AuthService struct {
	userRepo repository.UserRepository
	secret   []byte
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, secret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		logger:   logger,
	}
}

// Register validates the credentials and stores a new user with a
// one-way hash of the password
func (s *AuthService) Register(username, password string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	if len(password) < 4 {
		return ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.userRepo.CreateUser(username, string(hash)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return err
	}

	s.logger.Info("User registered", zap.String("username", username))
	return nil
}

// Login checks the credentials and issues a session token. A wrong
// password and an unknown username produce the same error.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.Username)
}

// IssueToken signs a token for the user with a fresh id and a 1 hour expiry
func (s *AuthService) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// VerifyToken checks the signature and expiry of a token and returns the
// username it was issued for. Missing, malformed and expired tokens all
// map to ErrInvalidToken.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || claims.Username == "" {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}
