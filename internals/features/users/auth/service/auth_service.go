package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"frontdesk_backend/internals/apperr"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
)

// Claims is the access token payload read by the auth middleware.
type Claims struct {
	UserID   string `json:"id"`
	Role     string `json:"role"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

type StaffLookup interface {
	FindByEmail(ctx context.Context, email string) (*staffModel.StaffUserModel, error)
}

type BlacklistStore interface {
	Add(ctx context.Context, hash string, expiresAt time.Time) error
	Contains(ctx context.Context, hash string) (bool, error)
}

type AuthService struct {
	staff     StaffLookup
	blacklist BlacklistStore
	secret    []byte
	ttl       time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewAuthService(staff StaffLookup, blacklist BlacklistStore, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		staff:     staff,
		blacklist: blacklist,
		secret:    []byte(secret),
		ttl:       ttl,
		log:       log.Named("auth"),
		now:       time.Now,
	}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        staffModel.StaffUserModel
}

// Login checks the password and issues an HS256 access token. Unknown email
// and wrong password get the same answer.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.staff.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if !CheckPassword(user.StaffUserPasswordHash, password) {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if !user.StaffUserIsActive {
		return nil, apperr.Forbidden("account is deactivated")
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := Claims{
		UserID:   user.StaffUserID.String(),
		Role:     user.StaffUserRole,
		UserName: user.StaffUserFullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.StaffUserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperr.Internal(err, "failed to sign token")
	}

	s.log.Info("login", zap.String("user_id", claims.UserID), zap.String("role", claims.Role))
	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: *user}, nil
}

// Parse verifies the signature and expiry of raw and rejects blacklisted
// tokens.
func (s *AuthService) Parse(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	tok, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, apperr.Unauthorized("token expired")
		}
		return nil, apperr.Unauthorized("invalid token")
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperr.Unauthorized("invalid token subject")
	}

	listed, err := s.blacklist.Contains(ctx, s.HashToken(raw))
	if err != nil {
		return nil, err
	}
	if listed {
		return nil, apperr.Unauthorized("token has been revoked")
	}
	return claims, nil
}

// Logout blacklists raw until its own expiry. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	claims, err := s.Parse(ctx, raw)
	if err != nil {
		if apperr.IsKind(err, apperr.KindUnauthorized) {
			// already unusable
			return nil
		}
		return err
	}
	expiresAt := s.now().Add(s.ttl)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.blacklist.Add(ctx, s.HashToken(raw), expiresAt); err != nil {
		return err
	}
	s.log.Info("logout", zap.String("user_id", claims.UserID))
	return nil
}

// HashToken is the blacklist key: HMAC-SHA256 of the token under the signing
// secret, hex encoded.
func (s *AuthService) HashToken(raw string) string {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}
