package service

import (
	"context"
	"errors"

	"inkwell/internal/auth"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, username, password, name string) (string, error)
	Signin(ctx context.Context, username, password string) (string, error)
	VerifyToken(tokenString string) (int64, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	log       *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, log *zap.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// Signup registers a new user and returns a signed token.
func (s *authService) Signup(ctx context.Context, username, password, name string) (string, error) {
	// Probe the store first so an outage surfaces as 503, not a generic error
	if err := s.userRepo.Ping(ctx); err != nil {
		s.log.Warn("database unreachable during signup", zap.Error(err))
		return "", ErrStoreUnavailable
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = username
	}
	user := &models.User{
		Username: username,
		Password: hashed,
		Name:     name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUsernameTaken
		}
		// The unique index rejects duplicates on drivers that don't translate
		// the violation into gorm.ErrDuplicatedKey; treat any create failure
		// after a successful ping as a taken username.
		s.log.Warn("signup create failed", zap.String("username", username), zap.Error(err))
		return "", ErrUsernameTaken
	}

	return s.signToken(user.ID)
}

// Signin authenticates a user and returns a signed token. Legacy rows storing
// a raw password are verified by direct comparison and upgraded to bcrypt on
// the spot, retiring the dual path one login at a time.
func (s *authService) Signin(ctx context.Context, username, password string) (string, error) {
	if err := s.userRepo.Ping(ctx); err != nil {
		s.log.Warn("database unreachable during signin", zap.Error(err))
		return "", ErrStoreUnavailable
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dummy compare so unknown usernames take as long as known ones
			auth.DummyCompare(password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if auth.IsHashed(user.Password) {
		if err := auth.VerifyPassword(user.Password, password); err != nil {
			return "", ErrInvalidCredentials
		}
	} else {
		if user.Password != password {
			return "", ErrInvalidCredentials
		}
		s.upgradeLegacyPassword(ctx, user.ID, password)
	}

	return s.signToken(user.ID)
}

// upgradeLegacyPassword rehashes a plaintext credential after a successful
// login. Best effort: a failed upgrade must not fail the signin.
func (s *authService) upgradeLegacyPassword(ctx context.Context, userID int64, password string) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.log.Warn("legacy password rehash failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		s.log.Warn("legacy password upgrade failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	s.log.Info("upgraded legacy password", zap.Int64("user_id", userID))
}

func (s *authService) signToken(userID int64) (string, error) {
	// The payload carries only the numeric user id
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": userID,
	})
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken resolves a bearer token to the embedded user id.
func (s *authService) VerifyToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return int64(id), nil
}
