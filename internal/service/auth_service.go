package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vitta/internal/models"
	"vitta/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUserExists      = errors.New("username already taken")
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(repo repository.Authorization, signingKey string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey), tokenTTL: ttl}
}

// SignUp hashes password and creates a new viewer.
func (s *AuthService) SignUp(username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", ErrValidation)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	existing, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUserExists
	}
	return s.authRepo.Create(username, hash, models.RoleViewer)
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// TokenClaims is what the HTTP layer needs from a verified token.
type TokenClaims struct {
	UserID int
	Role   string
}

// GenerateToken validates credentials and returns JWT
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID, u.Role)
}

// ParseToken verifies the JWT and returns the user id and role it carries.
func (s *AuthService) ParseToken(accessToken string) (TokenClaims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	if !models.ValidRole(claims.Role) {
		return TokenClaims{}, ErrInvalidToken
	}

	return TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}

// CurrentRole looks the user up again; a token outlives role changes and deletion.
func (s *AuthService) CurrentRole(userID int) (string, error) {
	u, err := s.authRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return u.Role, nil
}

// EnsureAdmin reports whether it created or promoted an account.
// It is a no-op when credentials are empty or an admin already exists.
func (s *AuthService) EnsureAdmin(username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}
	n, err := s.authRepo.CountByRole(models.RoleAdmin)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return false, err
	}
	if u != nil {
		if err := s.authRepo.UpdateRole(u.ID, models.RoleAdmin); err != nil {
			return false, fmt.Errorf("promote %s: %w", username, err)
		}
		return true, nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := s.authRepo.Create(username, hash, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(userID int, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(s.signingKey)
}
