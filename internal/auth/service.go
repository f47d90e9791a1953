package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/response"
)

// UserFinder loads an active user with roles for credential checks
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service issues, introspects and revokes HS512 tokens. Each token
// carries a jti; logout persists the jti so the token stays dead until it
// expires on its own.
type Service struct {
	db     *gorm.DB
	users  UserFinder
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates an auth Service
func NewService(db *gorm.DB, users UserFinder, secret string, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// Login checks the credentials and returns a signed token. Bad username
// and bad password produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return LoginResponse{}, response.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, response.NewUnauthorized("invalid credentials")
	}

	token, err := s.sign(user)
	if err != nil {
		s.logger.Error("failed to sign token", zap.String("username", user.Username), zap.Error(err))
		return LoginResponse{}, response.NewInternal("failed to sign token", err)
	}

	return LoginResponse{Token: token, Authenticated: true}, nil
}

// Introspect reports whether the token is signed by us, unexpired and not
// revoked. Invalid tokens answer false, never an error.
func (s *Service) Introspect(ctx context.Context, token string) IntrospectResponse {
	_, err := s.Verify(ctx, token)
	return IntrospectResponse{Valid: err == nil}
}

// Logout records the token's jti so later requests carrying it are
// rejected. An already invalid token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.Verify(ctx, token)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	expiry := time.Now().Add(s.ttl)
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		expiry = exp.Time
	}

	record := InvalidatedToken{ID: jti, ExpiryTime: expiry}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		s.logger.Error("failed to persist invalidated token", zap.Error(err))
		return response.NewInternal("failed to invalidate token", err)
	}
	return nil
}

// Verify parses and validates a token, returning its claims. It checks
// the signature, the expiry and the revocation list.
func (s *Service) Verify(ctx context.Context, token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, response.NewUnauthorized("invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, response.NewUnauthorized("invalid token claims")
	}

	if jti, _ := claims["jti"].(string); jti != "" {
		var count int64
		err := s.db.WithContext(ctx).
			Model(&InvalidatedToken{}).
			Where("id = ?", jti).
			Count(&count).Error
		if err != nil {
			return nil, response.NewInternal("failed to check token revocation", err)
		}
		if count > 0 {
			return nil, response.NewUnauthorized("token has been revoked")
		}
	}

	return claims, nil
}

func (s *Service) sign(user *domain.User) (string, error) {
	now := time.Now()

	scopes := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		scopes = append(scopes, role.Name)
	}

	claims := jwt.MapClaims{
		"sub":   user.Username,
		"iss":   "furniture-admin-api",
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
		"jti":   uuid.NewString(),
		"scope": strings.Join(scopes, " "),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}
