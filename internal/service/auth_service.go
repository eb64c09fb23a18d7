package service

import (
	"context"
	"errors"
	"time"

	"github.com/cosmopedia/internal/config"
	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/repository"
	"github.com/cosmopedia/internal/session"
	"github.com/cosmopedia/pkg/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// AuthService handles registration, login and session resolution
type AuthService struct {
	userRepo      *repository.UserRepository
	sessions      session.Store
	sessionConfig config.SessionConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repository.UserRepository,
	sessions session.Store,
	sessionConfig config.SessionConfig,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessions:      sessions,
		sessionConfig: sessionConfig,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,max=128"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// sessionClaims binds a session id to a signed token
type sessionClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Register creates a new account with a hashed password. The password
// never leaves this function in plaintext.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and establishes a session. On success it
// returns the signed session token to be set as a cookie. A mismatch on
// either field yields the same error.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	sess := &session.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, sess, s.ttl()); err != nil {
		return "", err
	}

	return s.signToken(user, sess.ID)
}

// Logout revokes the session carried by the token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return ErrNotAuthenticated
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// Authenticate resolves a session token to the account it belongs to.
// The token must verify and its session record must still exist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.sessions.Get(ctx, claims.SessionID); err != nil {
		return nil, ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}

// RevokeUserSessions revokes every session of a user
func (s *AuthService) RevokeUserSessions(ctx context.Context, userID uint) error {
	return s.sessions.DeleteByUser(ctx, userID)
}

// SessionMaxAge returns the cookie lifetime in seconds
func (s *AuthService) SessionMaxAge() int {
	return s.sessionConfig.ExpireHours * 3600
}

func (s *AuthService) ttl() time.Duration {
	return time.Duration(s.sessionConfig.ExpireHours) * time.Hour
}

func (s *AuthService) signToken(user *models.User, sessionID string) (string, error) {
	claims := &sessionClaims{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "cosmopedia",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionConfig.Secret))
}

func (s *AuthService) parseToken(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.sessionConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*sessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrNotAuthenticated
}
