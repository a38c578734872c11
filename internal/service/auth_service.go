package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or revoked token")
)

// AuthService owns signup, login and token verification. The data layer
// only fetches the candidate row by email; password verification happens
// here, against the bcrypt hash.
type AuthService struct {
	users  repository.UserRepository
	tokens TokenStore
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, tokens TokenStore, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{users: users, tokens: tokens, secret: []byte(secret), ttl: ttl}
}

func (s *AuthService) Register(ctx context.Context, first, last, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{FName: first, LName: last, UName: username, Email: email, PWord: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns a signed JWT whose jti is registered in the token store.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PWord), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	jti := uuid.New().String()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(u.UserID), 10),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Put(ctx, jti, s.ttl); err != nil {
		return "", err
	}
	logger.Info("user logged in", zap.Uint("user_id", u.UserID))
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return ErrInvalidToken
	}
	return s.tokens.Delete(ctx, claims.ID)
}

// Authenticate verifies the signature, then session liveness, and
// returns the user id the token was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (uint, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	live, err := s.tokens.Exists(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if !live {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

func (s *AuthService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
